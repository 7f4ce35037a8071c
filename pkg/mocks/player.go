package mocks

import (
	"sync"

	"github.com/user/trimmonitor/pkg/ports"
)

// Player is a mock ports.Player.
type Player struct {
	mu        sync.Mutex
	rendering bool
	refreshes int
}

func (m *Player) IsRendering() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rendering
}

func (m *Player) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshes++
}

// SetRendering toggles the render-in-progress flag.
func (m *Player) SetRendering(rendering bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rendering = rendering
}

// Refreshes returns how many times Refresh was called.
func (m *Player) Refreshes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshes
}

// Project is a mock ports.Project with a fixed profile.
type Project struct {
	P ports.Profile
}

func (m *Project) Profile() ports.Profile {
	return m.P
}

var (
	_ ports.Player  = (*Player)(nil)
	_ ports.Project = (*Project)(nil)
)
