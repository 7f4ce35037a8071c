package offscreen

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/trimmonitor/pkg/adapters/ggrenderer"
	"github.com/user/trimmonitor/pkg/ports"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func fill(c color.Color) ports.Painter {
	return func(canvas ports.Canvas, width, height int) {
		canvas.DrawRect(0, 0, width, height, c)
	}
}

func newTrimToolkit(t *testing.T) *Toolkit {
	t.Helper()
	tk := New(1920, 1080, ggrenderer.New())
	tk.NewDrawingArea("top", fill(red)).SetPrefSize(1920, 270)
	tk.NewDrawingArea("left", fill(blue)).SetPrefSize(960, 540)
	tk.NewMonitorArea()
	tk.NewDrawingArea("right", fill(blue)).SetPrefSize(1, 1)
	tk.NewDrawingArea("bottom", fill(red)).SetPrefSize(1920, 270)
	return tk
}

func TestLayout_DefaultView(t *testing.T) {
	tk := New(1920, 1080, ggrenderer.New())
	for _, name := range []string{"top", "left", "right", "bottom"} {
		tk.NewDrawingArea(name, nil)
	}
	tk.NewMonitorArea()

	rects := tk.Layout()
	want := map[string]image.Rectangle{
		"top":       image.Rect(0, 0, 1920, 1),
		"left":      image.Rect(0, 1, 1, 1079),
		MonitorName: image.Rect(1, 1, 1919, 1079),
		"right":     image.Rect(1919, 1, 1920, 1079),
		"bottom":    image.Rect(0, 1079, 1920, 1080),
	}
	for name, r := range want {
		if rects[name] != r {
			t.Errorf("%s: got %v, want %v", name, rects[name], r)
		}
	}
}

func TestLayout_TrimView(t *testing.T) {
	rects := newTrimToolkit(t).Layout()

	want := map[string]image.Rectangle{
		"top":       image.Rect(0, 0, 1920, 270),
		"left":      image.Rect(0, 270, 960, 810),
		MonitorName: image.Rect(960, 270, 1919, 810),
		"right":     image.Rect(1919, 270, 1920, 810),
		"bottom":    image.Rect(0, 810, 1920, 1080),
	}
	for name, r := range want {
		if rects[name] != r {
			t.Errorf("%s: got %v, want %v", name, rects[name], r)
		}
	}
}

func TestCompose(t *testing.T) {
	tk := newTrimToolkit(t)

	preview := image.NewRGBA(image.Rect(0, 0, 160, 90))
	for y := 0; y < 90; y++ {
		for x := 0; x < 160; x++ {
			preview.Set(x, y, green)
		}
	}
	tk.SetPreview(preview)

	img := tk.Compose()
	if b := img.Bounds(); b.Dx() != 1920 || b.Dy() != 1080 {
		t.Fatalf("expected 1920x1080, got %v", b)
	}

	check := func(x, y int, want color.RGBA) {
		t.Helper()
		r, g, b, _ := img.At(x, y).RGBA()
		got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
		if got != want {
			t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
		}
	}

	check(100, 100, red)    // top
	check(100, 500, blue)   // left match-frame panel
	check(1400, 540, green) // monitor preview
	check(100, 1000, red)   // bottom
}

func TestRender_MonitorLetterboxes(t *testing.T) {
	tk := newTrimToolkit(t)

	// A square preview in a 959x540 monitor area leaves black bars on the sides.
	preview := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			preview.Set(x, y, green)
		}
	}
	tk.SetPreview(preview)

	img := tk.Render(MonitorName)
	if b := img.Bounds(); b.Dx() != 959 || b.Dy() != 540 {
		t.Fatalf("expected 959x540, got %v", b)
	}
	if r, g, b, _ := img.At(10, 270).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Error("expected a black bar at the left edge")
	}
	if _, g, _, _ := img.At(479, 270).RGBA(); g>>8 != 255 {
		t.Error("expected the preview in the center")
	}
}

func TestRender_UnknownSurface(t *testing.T) {
	if img := newTrimToolkit(t).Render("nope"); img != nil {
		t.Error("expected nil for an unknown surface")
	}
}

func TestSurfaceCountsDraws(t *testing.T) {
	tk := New(100, 100, ggrenderer.New())
	tk.NewDrawingArea("top", nil).QueueDraw()
	tk.QueueDraw()

	if tk.Surface("top").Draws() != 1 || tk.Draws() != 1 {
		t.Error("expected one queued draw each")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		src  image.Rectangle
		box  ports.Size
		want ports.Size
	}{
		{image.Rect(0, 0, 1920, 1080), ports.Size{Width: 960, Height: 540}, ports.Size{Width: 960, Height: 540}},
		{image.Rect(0, 0, 1920, 1080), ports.Size{Width: 960, Height: 1000}, ports.Size{Width: 960, Height: 540}},
		{image.Rect(0, 0, 100, 100), ports.Size{Width: 959, Height: 540}, ports.Size{Width: 540, Height: 540}},
		{image.Rect(0, 0, 0, 0), ports.Size{Width: 10, Height: 10}, ports.Size{Width: 10, Height: 10}},
	}

	for _, tt := range tests {
		if got := fit(tt.src, tt.box); got != tt.want {
			t.Errorf("fit(%v, %+v) = %+v, want %+v", tt.src, tt.box, got, tt.want)
		}
	}
}
