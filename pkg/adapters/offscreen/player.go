package offscreen

import (
	"image"
	"sync"

	"github.com/user/trimmonitor/pkg/ports"
)

// Player is a ports.Player that shows a still frame in the toolkit's monitor
// area. It never renders.
type Player struct {
	mu        sync.Mutex
	toolkit   *Toolkit
	frame     image.Image
	refreshes int
}

// NewPlayer creates a player showing frame, which may be nil for black.
func NewPlayer(toolkit *Toolkit, frame image.Image) *Player {
	return &Player{toolkit: toolkit, frame: frame}
}

func (p *Player) IsRendering() bool {
	return false
}

// Refresh pushes the frame into the monitor area.
func (p *Player) Refresh() {
	p.mu.Lock()
	p.refreshes++
	frame := p.frame
	p.mu.Unlock()

	p.toolkit.SetPreview(frame)
}

// Refreshes returns how many times Refresh was called.
func (p *Player) Refreshes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshes
}

// Ensure Player implements ports.Player
var _ ports.Player = (*Player)(nil)
