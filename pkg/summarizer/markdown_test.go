package summarizer

import (
	"strings"
	"testing"
	"time"
)

func sampleSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Source: SourceInfo{
			Path:    "/media/a.mp4",
			Width:   1920,
			Height:  1080,
			FPS:     25,
			Codec:   "h264",
			Backend: "mp4",
		},
		View: ViewInfo{
			Mode:              "start-trim",
			MatchFrame:        90,
			EditTimelineFrame: 150,
			EditClipStart:     100,
		},
		Extraction: ExtractionInfo{
			FrameIndex: 90,
			DurationMs: 420,
		},
		Settings: Settings{
			ScratchDir:     "/home/user/.trimmonitor/trim",
			TrimView:       true,
			PollIntervalMs: 100,
			TimeoutMs:      10000,
		},
		Output: OutputInfo{
			Path:     "monitor.png",
			Width:    1920,
			Height:   1080,
			FileSize: 1024 * 1024,
		},
	}
}

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	result := NewMarkdownFormatter().Format(sampleSummary())

	checks := []string{
		"# Snapshot Summary",
		"/media/a.mp4",
		"1920x1080",
		"25.000 fps",
		"h264",
		"start-trim",
		"90 (00:00:03:15)", // match frame
		"00:00:02:00",      // edit position
		"420 ms",
		"| Status | OK |",
		"| Trim View | Enabled |",
		"1.00 MB",
		"2024-01-15 10:30:00 UTC",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_Format_Failure(t *testing.T) {
	summary := sampleSummary()
	summary.Extraction.Error = "matchframe: decode pipeline failed"
	summary.View.MatchFrame = -1
	summary.View.EditClipStart = -1
	summary.Output = OutputInfo{}

	result := NewMarkdownFormatter().Format(summary)

	if !strings.Contains(result, "Failed: matchframe: decode pipeline failed") {
		t.Error("expected the extraction error")
	}
	if strings.Count(result, "N/A") != 2 {
		t.Errorf("expected N/A for match frame and edit position:\n%s", result)
	}
	if strings.Contains(result, "## Output") {
		t.Error("expected no output section without an output file")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Snapshot Summary": "スナップショットサマリー",
			"Match Frame":      "マッチフレーム",
			"Enabled":          "有効",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	result := NewMarkdownFormatter(WithTranslator(translator)).Format(sampleSummary())

	for _, want := range []string{"スナップショットサマリー", "マッチフレーム", "有効"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected translated %q", want)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	result := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(sampleSummary())

	if !strings.Contains(result, "v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(s *Summary) string { return s.Source.Path })
	if got := f.Format(sampleSummary()); got != "/media/a.mp4" {
		t.Errorf("got %q", got)
	}
}
