package mocks

import (
	"image"
	"sync"

	"github.com/user/trimmonitor/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	MatchFrames map[uint64]image.Image
	Panels      map[string]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:     enabled,
		MatchFrames: make(map[uint64]image.Image),
		Panels:      make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveMatchFrame(generation uint64, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchFrames[generation] = img
	return nil
}

func (m *DebugSink) SavePanel(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Panels[name] = img
	return nil
}

// MatchFrameCount returns how many match frames were saved.
func (m *DebugSink) MatchFrameCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.MatchFrames)
}

var _ ports.DebugSink = (*DebugSink)(nil)
