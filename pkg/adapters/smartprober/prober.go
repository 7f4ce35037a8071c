// Package smartprober provides a profile prober that reads MP4 boxes when it
// can and falls back to ffprobe for everything else.
package smartprober

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/user/trimmonitor/pkg/adapters/ffprobe"
	"github.com/user/trimmonitor/pkg/adapters/mp4profile"
	"github.com/user/trimmonitor/pkg/ports"
)

// Backend represents the probing backend used.
type Backend string

const (
	// BackendMP4 represents reading the MP4 boxes directly.
	BackendMP4 Backend = "mp4"
	// BackendFFprobe represents running ffprobe.
	BackendFFprobe Backend = "ffprobe"
)

// ErrNoProberAvailable is returned when every backend failed.
var ErrNoProberAvailable = errors.New("smartprober: no prober could read the source")

// Options configures the smart prober behavior.
type Options struct {
	// MP4 and FFprobe override the backends; nil selects the defaults.
	MP4     ports.ProfileProber
	FFprobe ports.ProfileProber
}

// Prober tries the MP4 box reader for ISO-BMFF files, then ffprobe.
type Prober struct {
	mp4     ports.ProfileProber
	ffprobe ports.ProfileProber
	logger  ports.Logger
	last    Backend
}

// New creates a smart prober.
func New(opts Options, logger ports.Logger) *Prober {
	p := &Prober{
		mp4:     opts.MP4,
		ffprobe: opts.FFprobe,
		logger:  logger.WithComponent("probe"),
	}
	if p.mp4 == nil {
		p.mp4 = mp4profile.New()
	}
	if p.ffprobe == nil {
		p.ffprobe = ffprobe.New(ffprobe.Options{})
	}
	return p
}

// Probe returns the source's profile.
//
// The selection flow:
//   - .mp4/.m4v/.mov: read the boxes, then ffprobe on failure
//   - anything else: ffprobe
func (p *Prober) Probe(ctx context.Context, path string) (ports.Profile, error) {
	p.logger.Debug("Probing %s", path)

	if IsISOBMFF(path) {
		profile, err := p.mp4.Probe(ctx, path)
		if err == nil {
			p.last = BackendMP4
			return profile, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ports.Profile{}, ctxErr
		}
		p.logger.Warn("mp4 probe failed, falling back to ffprobe: %s", err.Error())
	}

	profile, err := p.ffprobe.Probe(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ports.Profile{}, ctxErr
		}
		return ports.Profile{}, errors.Join(ErrNoProberAvailable, err)
	}
	p.last = BackendFFprobe
	return profile, nil
}

// LastBackend returns the backend that answered the last successful probe.
func (p *Prober) LastBackend() Backend {
	return p.last
}

// IsISOBMFF reports whether path names an MP4-family file.
func IsISOBMFF(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v", ".mov":
		return true
	default:
		return false
	}
}

// Ensure Prober implements ports.ProfileProber
var _ ports.ProfileProber = (*Prober)(nil)
