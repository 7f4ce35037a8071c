package summarizer

import (
	"errors"
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithSource(t *testing.T) {
	summary := NewBuilder().
		WithSource(SourceInfo{Path: "/media/a.mp4", Width: 1280, Height: 720, FPS: 50}).
		Build()

	if summary.Source.Path != "/media/a.mp4" || summary.Source.FPS != 50 {
		t.Errorf("unexpected source %+v", summary.Source)
	}
}

func TestBuilder_WithView(t *testing.T) {
	summary := NewBuilder().
		WithView("end-trim", 12, 90, 100).
		Build()

	want := ViewInfo{Mode: "end-trim", MatchFrame: 12, EditTimelineFrame: 90, EditClipStart: 100}
	if summary.View != want {
		t.Errorf("got %+v, want %+v", summary.View, want)
	}
}

func TestBuilder_WithExtraction(t *testing.T) {
	ok := NewBuilder().WithExtraction(42, 1500*time.Millisecond, nil).Build()
	if ok.Extraction.FrameIndex != 42 || ok.Extraction.DurationMs != 1500 || ok.Extraction.Error != "" {
		t.Errorf("unexpected extraction %+v", ok.Extraction)
	}

	failed := NewBuilder().WithExtraction(42, time.Second, errors.New("timed out")).Build()
	if failed.Extraction.Error != "timed out" {
		t.Errorf("expected the error recorded, got %+v", failed.Extraction)
	}
}

func TestBuilder_Chaining(t *testing.T) {
	summary := NewBuilder().
		WithSettings(Settings{ScratchDir: "/tmp/trim", TrimView: true}).
		WithOutput(OutputInfo{Path: "out.png", Width: 1920, Height: 1080, FileSize: 2048}).
		Build()

	if !summary.Settings.TrimView || summary.Settings.ScratchDir != "/tmp/trim" {
		t.Errorf("unexpected settings %+v", summary.Settings)
	}
	if summary.Output.FileSize != 2048 {
		t.Errorf("unexpected output %+v", summary.Output)
	}
}
