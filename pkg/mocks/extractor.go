package mocks

import (
	"context"
	"sync"

	"github.com/user/trimmonitor/pkg/ports"
)

// FrameExtractor is a mock ports.FrameExtractor. By default it succeeds
// immediately; set ExtractFunc to block, fail or write files.
type FrameExtractor struct {
	mu       sync.Mutex
	requests []ports.FrameRequest

	ExtractFunc func(ctx context.Context, req ports.FrameRequest) (ports.FrameResult, error)
}

func (m *FrameExtractor) Extract(ctx context.Context, req ports.FrameRequest) (ports.FrameResult, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, req)
	}
	return ports.FrameResult{OutputName: req.OutputName, Path: req.OutputName}, nil
}

// Requests returns every request received, in order.
func (m *FrameExtractor) Requests() []ports.FrameRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.FrameRequest(nil), m.requests...)
}

var _ ports.FrameExtractor = (*FrameExtractor)(nil)
