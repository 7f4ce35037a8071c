// Package matchframe extracts single still frames from media files for the
// trim monitor's match-frame panel.
package matchframe

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/user/trimmonitor/pkg/ports"
)

const (
	// DefaultPollInterval is how often the output file is checked for.
	DefaultPollInterval = 100 * time.Millisecond

	// DefaultTimeout bounds the wait for the output file.
	DefaultTimeout = 10 * time.Second
)

// CommandRunner runs an external command and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Options configures a Writer.
type Options struct {
	// Dir is the scratch directory output names are resolved against.
	Dir string

	// FFmpegPath overrides ffmpeg discovery.
	FFmpegPath string

	// PollInterval and Timeout control the wait for the output file.
	PollInterval time.Duration
	Timeout      time.Duration

	// Runner replaces process execution, mainly for tests.
	Runner CommandRunner
}

// Writer implements ports.FrameExtractor with an ffmpeg process. Extractions
// are serialized because every request overwrites the same scratch file.
type Writer struct {
	opts   Options
	fs     ports.FileSystem
	logger ports.Logger

	mu sync.Mutex
}

// NewWriter creates a Writer.
func NewWriter(opts Options, fs ports.FileSystem, logger ports.Logger) *Writer {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Runner == nil {
		opts.Runner = execRunner
	}
	return &Writer{
		opts:   opts,
		fs:     fs,
		logger: logger.WithComponent("matchframe"),
	}
}

// OutputPath returns where a request's frame is written.
func (w *Writer) OutputPath(outputName string) string {
	return filepath.Join(w.opts.Dir, outputName)
}

// Extract writes req.FrameIndex of req.SourcePath as a PNG and returns once the
// file is visible on disk.
func (w *Writer) Extract(ctx context.Context, req ports.FrameRequest) (ports.FrameResult, error) {
	if err := validate(req); err != nil {
		return ports.FrameResult{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// A newer request may have cancelled us while we waited for the lock.
	if err := ctx.Err(); err != nil {
		return ports.FrameResult{}, err
	}

	path := w.OutputPath(req.OutputName)

	if err := w.fs.MkdirAll(w.opts.Dir); err != nil {
		return ports.FrameResult{}, fmt.Errorf("create scratch dir: %w", err)
	}
	if _, err := RemoveStale(w.fs, path); err != nil {
		return ports.FrameResult{}, fmt.Errorf("remove stale frame: %w", err)
	}

	ffmpegPath, err := FindFFmpeg(w.opts.FFmpegPath)
	if err != nil {
		return ports.FrameResult{}, err
	}

	w.logger.Debug("Extracting frame %d from %s", req.FrameIndex, req.SourcePath)

	args := BuildArgs(req.SourcePath, req.FrameIndex, path)
	if out, err := w.opts.Runner(ctx, ffmpegPath, args...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ports.FrameResult{}, ctxErr
		}
		return ports.FrameResult{}, fmt.Errorf("%w: ffmpeg: %v\n%s", ErrPipelineFailed, err, strings.TrimSpace(string(out)))
	}

	if err := w.waitForFile(ctx, path); err != nil {
		return ports.FrameResult{}, err
	}

	w.logger.Debug("Frame written to %s", path)
	return ports.FrameResult{OutputName: req.OutputName, Path: path}, nil
}

// waitForFile polls until path exists, guarding against write-visibility lag.
func (w *Writer) waitForFile(ctx context.Context, path string) error {
	deadline := time.NewTimer(w.opts.Timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		exists, err := w.fs.Exists(path)
		if err != nil {
			return fmt.Errorf("stat output: %w", err)
		}
		if exists {
			return nil
		}

		w.logger.Debug("Waiting for %s to become visible", path)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return fmt.Errorf("%w: %s not written within %s", ErrPipelineFailed, path, w.opts.Timeout)
		case <-ticker.C:
		}
	}
}

func validate(req ports.FrameRequest) error {
	switch {
	case req.SourcePath == "":
		return fmt.Errorf("%w: empty source path", ErrInvalidRequest)
	case req.FrameIndex < 0:
		return fmt.Errorf("%w: negative frame %d", ErrInvalidRequest, req.FrameIndex)
	case req.OutputName == "" || filepath.Base(req.OutputName) != req.OutputName:
		return fmt.Errorf("%w: output name %q", ErrInvalidRequest, req.OutputName)
	}
	return nil
}

var _ ports.FrameExtractor = (*Writer)(nil)
