// Package ffprobe reads a video's profile by running ffprobe, for containers
// the mp4 box reader cannot handle.
package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/user/trimmonitor/pkg/ports"
)

// DefaultTimeout bounds a single ffprobe run.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNoVideoStream is returned when ffprobe reports no video stream.
	ErrNoVideoStream = errors.New("ffprobe: no video stream found")
	// ErrProbeFailed is returned when ffprobe fails or its output is unreadable.
	ErrProbeFailed = errors.New("ffprobe: probe failed")
)

// RunFunc runs ffprobe on path and returns its JSON output.
type RunFunc func(ctx context.Context, path string, timeout time.Duration) (string, error)

// Options configures a Prober.
type Options struct {
	Timeout time.Duration
	Run     RunFunc // nil runs ffprobe from PATH
}

// Prober implements ports.ProfileProber with ffprobe.
type Prober struct {
	timeout time.Duration
	run     RunFunc
}

// New creates a new Prober.
func New(opts Options) *Prober {
	p := &Prober{timeout: opts.Timeout, run: opts.Run}
	if p.timeout <= 0 {
		p.timeout = DefaultTimeout
	}
	if p.run == nil {
		p.run = runFFprobe
	}
	return p
}

// Probe returns the profile of the first video stream of the file at path.
func (p *Prober) Probe(ctx context.Context, path string) (ports.Profile, error) {
	out, err := p.run(ctx, path, p.timeout)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ports.Profile{}, ctxErr
		}
		return ports.Profile{}, fmt.Errorf("%w: %v", ErrProbeFailed, err)
	}
	return ParseOutput(out)
}

func runFFprobe(ctx context.Context, path string, timeout time.Duration) (string, error) {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if timeout <= 0 {
		return "", context.DeadlineExceeded
	}
	return ffmpeg.ProbeWithTimeout(path, timeout, ffmpeg.KwArgs{"select_streams": "v:0"})
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	CodecType    string `json:"codec_type"`
	CodecName    string `json:"codec_name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	RFrameRate   string `json:"r_frame_rate"`
	AvgFrameRate string `json:"avg_frame_rate"`
}

// ParseOutput extracts the profile of the first video stream from ffprobe's
// JSON output.
func ParseOutput(out string) (ports.Profile, error) {
	var parsed probeOutput
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return ports.Profile{}, fmt.Errorf("%w: %v", ErrProbeFailed, err)
	}

	for _, s := range parsed.Streams {
		if s.CodecType != "video" {
			continue
		}
		profile := ports.Profile{Width: s.Width, Height: s.Height}
		num, den, ok := ParseRate(s.RFrameRate)
		if !ok {
			num, den, ok = ParseRate(s.AvgFrameRate)
		}
		if ok {
			profile.FrameRateNum, profile.FrameRateDen = num, den
		}
		return profile, nil
	}

	return ports.Profile{}, ErrNoVideoStream
}

// ParseRate parses an ffprobe rate such as "30000/1001" or "25". Zero rates
// like "0/0" are rejected.
func ParseRate(s string) (num, den int, ok bool) {
	numStr, denStr, found := strings.Cut(s, "/")
	if !found {
		denStr = "1"
	}
	n, err := strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil {
		return 0, 0, false
	}
	d, err := strconv.Atoi(strings.TrimSpace(denStr))
	if err != nil {
		return 0, 0, false
	}
	if n <= 0 || d <= 0 {
		return 0, 0, false
	}
	return n, d, true
}

// Ensure Prober implements ports.ProfileProber
var _ ports.ProfileProber = (*Prober)(nil)
