package offscreen

import (
	"image"
)

// Render paints one surface at its laid-out size. The monitor area shows the
// preview frame letterboxed on black.
func (t *Toolkit) Render(name string) image.Image {
	rect, ok := t.Layout()[name]
	s := t.Surface(name)
	if !ok || s == nil {
		return nil
	}

	w, h := rect.Dx(), rect.Dy()
	canvas := t.renderer.CreateCanvas(w, h, t.background)

	if name == MonitorName {
		t.mu.Lock()
		preview := t.preview
		t.mu.Unlock()
		if preview != nil {
			size := fit(preview.Bounds(), sizeOf(rect))
			scaled := t.renderer.ResizeImage(preview, size.Width, size.Height)
			canvas.DrawImage(scaled, (w-size.Width)/2, (h-size.Height)/2)
		}
		return canvas.ToImage()
	}

	if s.paint != nil {
		s.paint(canvas, w, h)
	}
	return canvas.ToImage()
}

// Compose renders every surface and places it at its laid-out position.
func (t *Toolkit) Compose() image.Image {
	alloc := t.Allocation()
	canvas := t.renderer.CreateCanvas(alloc.Width, alloc.Height, t.background)

	for name, rect := range t.Layout() {
		if rect.Empty() {
			continue
		}
		if img := t.Render(name); img != nil {
			canvas.DrawImage(img, rect.Min.X, rect.Min.Y)
		}
	}

	return canvas.ToImage()
}
