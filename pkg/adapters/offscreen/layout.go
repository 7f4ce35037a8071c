package offscreen

import (
	"image"

	"github.com/user/trimmonitor/pkg/ports"
)

// Surface names packed by the layout, in the order the host widget packs them.
const (
	nameTop    = "top"
	nameLeft   = "left"
	nameRight  = "right"
	nameBottom = "bottom"
)

// Layout returns the rectangle each surface occupies inside the allocation.
// The top and bottom rows take their preferred heights across the full width;
// the side panels take their preferred widths across the middle row and the
// monitor area fills what remains.
func (t *Toolkit) Layout() map[string]image.Rectangle {
	alloc := t.Allocation()

	topH := t.prefSize(nameTop).Height
	bottomH := t.prefSize(nameBottom).Height
	rowH := alloc.Height - topH - bottomH
	if rowH < 1 {
		rowH = 1
	}

	leftW := t.prefSize(nameLeft).Width
	rightW := t.prefSize(nameRight).Width
	monitorW := alloc.Width - leftW - rightW
	if monitorW < 1 {
		monitorW = 1
	}

	rowY := topH
	return map[string]image.Rectangle{
		nameTop:     image.Rect(0, 0, alloc.Width, topH),
		nameLeft:    image.Rect(0, rowY, leftW, rowY+rowH),
		MonitorName: image.Rect(leftW, rowY, leftW+monitorW, rowY+rowH),
		nameRight:   image.Rect(leftW+monitorW, rowY, leftW+monitorW+rightW, rowY+rowH),
		nameBottom:  image.Rect(0, rowY+rowH, alloc.Width, rowY+rowH+bottomH),
	}
}

func (t *Toolkit) prefSize(name string) ports.Size {
	if s := t.Surface(name); s != nil {
		return s.PrefSize()
	}
	return ports.Size{}
}

// fit returns the largest size with the aspect ratio of src that fits box.
func fit(src image.Rectangle, box ports.Size) ports.Size {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 {
		return box
	}
	if box.Width*sh <= box.Height*sw {
		return ports.Size{Width: box.Width, Height: max(1, box.Width*sh/sw)}
	}
	return ports.Size{Width: max(1, box.Height*sw/sh), Height: box.Height}
}

func sizeOf(r image.Rectangle) ports.Size {
	return ports.Size{Width: r.Dx(), Height: r.Dy()}
}
