package matchframe

import (
	"context"

	"github.com/user/trimmonitor/pkg/ports"
)

// Job is a future for one extraction running on its own goroutine.
type Job struct {
	Request    ports.FrameRequest
	Generation uint64

	cancel context.CancelFunc
	done   chan struct{}
	result ports.FrameResult
	err    error
}

// Submit starts extracting req and returns immediately. generation tags the job
// so a caller can tell whether its result is still wanted.
func Submit(ctx context.Context, ex ports.FrameExtractor, req ports.FrameRequest, generation uint64) *Job {
	ctx, cancel := context.WithCancel(ctx)
	j := &Job{
		Request:    req,
		Generation: generation,
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	go func() {
		defer close(j.done)
		defer cancel()
		j.result, j.err = ex.Extract(ctx, req)
	}()

	return j
}

// Done is closed when the extraction has finished.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the extraction finishes and returns its outcome.
func (j *Job) Wait() (ports.FrameResult, error) {
	<-j.done
	return j.result, j.err
}

// Cancel asks the extraction to stop. It does not wait.
func (j *Job) Cancel() {
	j.cancel()
}
