package ports

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Painter draws a surface's content. It is called by the toolkit on the UI
// thread with the surface's current allocation and must not have side effects
// beyond drawing.
type Painter func(canvas Canvas, width, height int)

// Surface is a drawable area owned by the toolkit.
type Surface interface {
	// SetPrefSize requests a preferred size from the layout.
	SetPrefSize(width, height int)

	// QueueDraw schedules a repaint.
	QueueDraw()
}

// Toolkit is the host GUI toolkit seen from the monitor.
type Toolkit interface {
	// NewDrawingArea creates a surface repainted by paint.
	NewDrawingArea(name string, paint Painter) Surface

	// NewMonitorArea creates the black live-preview surface the player renders into.
	NewMonitorArea() Surface

	// Allocation returns the current size of the whole monitor widget.
	Allocation() Size

	// QueueDraw schedules a repaint of the whole monitor widget.
	QueueDraw()
}

// Dispatcher runs functions on the UI thread. Do is safe to call from any
// goroutine and never blocks on the UI thread.
type Dispatcher interface {
	Do(fn func())
}
