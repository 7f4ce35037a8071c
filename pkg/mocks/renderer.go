package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/trimmonitor/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer whose canvases record
// every drawing call.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return NewCanvas(width, height)
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 1920, 1080)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// DrawOp is one recorded canvas call.
type DrawOp struct {
	Kind  string // "rect", "image" or "text"
	X, Y  int
	W, H  int
	Color color.Color
	Text  string
	Style ports.TextStyle
	Image image.Image
}

// Canvas records drawing calls.
type Canvas struct {
	mu     sync.Mutex
	width  int
	height int
	ops    []DrawOp
}

// NewCanvas creates a recording canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

func (m *Canvas) record(op DrawOp) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, op)
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	m.record(DrawOp{Kind: "image", X: x, Y: y, W: b.Dx(), H: b.Dy(), Image: img})
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.record(DrawOp{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.record(DrawOp{Kind: "text", X: x, Y: y, Text: text, Style: style, Color: style.Color})
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	return float64(len(text)) * style.FontSize * 0.6, style.FontSize
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

// Ops returns the recorded calls.
func (m *Canvas) Ops() []DrawOp {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]DrawOp(nil), m.ops...)
}

// OpsOfKind returns the recorded calls of one kind.
func (m *Canvas) OpsOfKind(kind string) []DrawOp {
	var out []DrawOp
	for _, op := range m.Ops() {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

var _ ports.Canvas = (*Canvas)(nil)
