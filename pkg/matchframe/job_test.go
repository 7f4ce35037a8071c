package matchframe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/user/trimmonitor/pkg/mocks"
	"github.com/user/trimmonitor/pkg/ports"
)

func TestSubmit_Wait(t *testing.T) {
	ex := &mocks.FrameExtractor{}
	req := ports.FrameRequest{SourcePath: "/media/a.mp4", FrameIndex: 7, OutputName: "match_frame.png"}

	job := Submit(context.Background(), ex, req, 3)
	res, err := job.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if res.OutputName != "match_frame.png" {
		t.Errorf("unexpected result %+v", res)
	}
	if job.Generation != 3 || job.Request != req {
		t.Errorf("job lost its tag: %+v", job)
	}

	select {
	case <-job.Done():
	default:
		t.Error("Done should be closed after Wait returns")
	}
}

func TestJob_Cancel(t *testing.T) {
	started := make(chan struct{})
	ex := &mocks.FrameExtractor{
		ExtractFunc: func(ctx context.Context, req ports.FrameRequest) (ports.FrameResult, error) {
			close(started)
			<-ctx.Done()
			return ports.FrameResult{}, ctx.Err()
		},
	}

	job := Submit(context.Background(), ex, ports.FrameRequest{SourcePath: "a", OutputName: "b"}, 1)
	<-started
	job.Cancel()

	select {
	case <-job.Done():
	case <-time.After(time.Second):
		t.Fatal("job did not stop after Cancel")
	}

	if _, err := job.Wait(); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
