// Package offscreen is a headless ports.Toolkit. It packs the monitor's
// surfaces the way the desktop widget does (top row; left, monitor and right
// in the middle row; bottom row) and paints them into a single image.
package offscreen

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/trimmonitor/pkg/ports"
)

// Surface is a drawing area or the monitor area of an offscreen Toolkit.
type Surface struct {
	mu    sync.Mutex
	name  string
	paint ports.Painter
	size  ports.Size
	draws int
}

// Name returns the surface name.
func (s *Surface) Name() string {
	return s.name
}

func (s *Surface) SetPrefSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size = ports.Size{Width: width, Height: height}
}

func (s *Surface) QueueDraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draws++
}

// PrefSize returns the preferred size last requested.
func (s *Surface) PrefSize() ports.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Draws returns how many repaints were queued.
func (s *Surface) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draws
}

// MonitorName is the name of the live-preview surface.
const MonitorName = "monitor"

// Toolkit hosts the monitor surfaces at a fixed allocation.
type Toolkit struct {
	mu         sync.Mutex
	alloc      ports.Size
	renderer   ports.Renderer
	background color.Color
	surfaces   map[string]*Surface
	preview    image.Image
	draws      int
}

// New creates a toolkit whose monitor widget is width x height.
func New(width, height int, renderer ports.Renderer) *Toolkit {
	return &Toolkit{
		alloc:      ports.Size{Width: width, Height: height},
		renderer:   renderer,
		background: color.Black,
		surfaces:   make(map[string]*Surface),
	}
}

func (t *Toolkit) NewDrawingArea(name string, paint ports.Painter) ports.Surface {
	return t.add(name, paint)
}

func (t *Toolkit) NewMonitorArea() ports.Surface {
	return t.add(MonitorName, nil)
}

func (t *Toolkit) add(name string, paint ports.Painter) *Surface {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := &Surface{name: name, paint: paint, size: ports.Size{Width: 1, Height: 1}}
	t.surfaces[name] = s
	return s
}

func (t *Toolkit) Allocation() ports.Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.alloc
}

func (t *Toolkit) QueueDraw() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.draws++
}

// Draws returns how many whole-widget repaints were queued.
func (t *Toolkit) Draws() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.draws
}

// Surface returns a surface by name, or nil.
func (t *Toolkit) Surface(name string) *Surface {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.surfaces[name]
}

// SetPreview sets the frame the player shows in the monitor area.
func (t *Toolkit) SetPreview(img image.Image) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.preview = img
}

var (
	_ ports.Surface = (*Surface)(nil)
	_ ports.Toolkit = (*Toolkit)(nil)
)
