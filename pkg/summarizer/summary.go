// Package summarizer provides summary generation for monitor snapshot sessions.
package summarizer

import "time"

// Summary contains all data collected during a snapshot session.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source clip information
	Source SourceInfo

	// View state at snapshot time
	View ViewInfo

	// Match frame extraction results
	Extraction ExtractionInfo

	// Session settings
	Settings Settings

	// Snapshot output details
	Output OutputInfo
}

// SourceInfo describes the match clip's media.
type SourceInfo struct {
	Path    string
	Width   int
	Height  int
	FPS     float64
	Codec   string
	Backend string // prober that read the profile
}

// ViewInfo describes what the monitor showed.
type ViewInfo struct {
	Mode              string
	MatchFrame        int
	EditTimelineFrame int
	EditClipStart     int
}

// ExtractionInfo describes the match frame extraction.
type ExtractionInfo struct {
	FrameIndex int
	DurationMs int
	Error      string
}

// Settings contains the session configuration.
type Settings struct {
	ScratchDir     string
	TrimView       bool
	PollIntervalMs int
	TimeoutMs      int
}

// OutputInfo contains information about the composed snapshot.
type OutputInfo struct {
	Path     string
	Width    int
	Height   int
	FileSize int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets source information.
func (b *Builder) WithSource(source SourceInfo) *Builder {
	b.summary.Source = source
	return b
}

// WithView sets the view state.
func (b *Builder) WithView(mode string, matchFrame, editTimelineFrame, editClipStart int) *Builder {
	b.summary.View = ViewInfo{
		Mode:              mode,
		MatchFrame:        matchFrame,
		EditTimelineFrame: editTimelineFrame,
		EditClipStart:     editClipStart,
	}
	return b
}

// WithExtraction sets extraction results. A nil err records success.
func (b *Builder) WithExtraction(frameIndex int, elapsed time.Duration, err error) *Builder {
	b.summary.Extraction = ExtractionInfo{
		FrameIndex: frameIndex,
		DurationMs: int(elapsed / time.Millisecond),
	}
	if err != nil {
		b.summary.Extraction.Error = err.Error()
	}
	return b
}

// WithSettings sets session settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets snapshot output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
