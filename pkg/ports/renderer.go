package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image decoding, resampling and canvas creation.
type Renderer interface {
	// CreateCanvas creates a drawing canvas filled with bg.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage stretches img to exactly width x height.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas is the 2D drawing surface handed to panel painters.
type Canvas interface {
	// DrawImage draws an image with its top-left corner at x, y.
	DrawImage(img image.Image, x, y int)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawText draws text. With style.Baseline the y coordinate is the text
	// baseline, otherwise the vertical center.
	DrawText(text string, x, y int, style TextStyle)

	// MeasureText returns the width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize  float64
	FontPath  string // optional TTF file, overrides Monospace/Bold
	Monospace bool
	Bold      bool
	Baseline  bool
	Color     color.Color
	Align     TextAlign
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)
