package mocks

import (
	"sync"

	"github.com/user/trimmonitor/pkg/ports"
)

// Surface is a mock ports.Surface that remembers its preferred size and
// counts redraw requests.
type Surface struct {
	mu    sync.Mutex
	Name  string
	Paint ports.Painter
	size  ports.Size
	draws int
}

func (m *Surface) SetPrefSize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.size = ports.Size{Width: width, Height: height}
}

func (m *Surface) QueueDraw() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws++
}

// PrefSize returns the last preferred size.
func (m *Surface) PrefSize() ports.Size {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

// Draws returns how many redraws were queued.
func (m *Surface) Draws() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draws
}

// Render paints the surface at its preferred size onto a recording canvas.
func (m *Surface) Render() *Canvas {
	size := m.PrefSize()
	canvas := NewCanvas(size.Width, size.Height)
	if m.Paint != nil {
		m.Paint(canvas, size.Width, size.Height)
	}
	return canvas
}

// Toolkit is a mock ports.Toolkit with a fixed allocation.
type Toolkit struct {
	mu       sync.Mutex
	Alloc    ports.Size
	Surfaces map[string]*Surface
	Monitor  *Surface
	draws    int
}

// NewToolkit creates a mock toolkit whose widget is width x height.
func NewToolkit(width, height int) *Toolkit {
	return &Toolkit{
		Alloc:    ports.Size{Width: width, Height: height},
		Surfaces: make(map[string]*Surface),
	}
}

func (m *Toolkit) NewDrawingArea(name string, paint ports.Painter) ports.Surface {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &Surface{Name: name, Paint: paint, size: ports.Size{Width: 1, Height: 1}}
	m.Surfaces[name] = s
	return s
}

func (m *Toolkit) NewMonitorArea() ports.Surface {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Monitor = &Surface{Name: "monitor"}
	return m.Monitor
}

func (m *Toolkit) Allocation() ports.Size {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Alloc
}

func (m *Toolkit) QueueDraw() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws++
}

// Draws returns how many whole-widget redraws were queued.
func (m *Toolkit) Draws() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draws
}

// Surface returns a drawing area by name.
func (m *Toolkit) Surface(name string) *Surface {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Surfaces[name]
}

var (
	_ ports.Surface = (*Surface)(nil)
	_ ports.Toolkit = (*Toolkit)(nil)
)
