package ports

import "context"

// FrameRequest asks for a single source frame written as PNG.
type FrameRequest struct {
	SourcePath string
	FrameIndex int
	OutputName string // file name inside the extractor's scratch directory
}

// FrameResult describes a written frame.
type FrameResult struct {
	OutputName string
	Path       string
}

// FrameExtractor writes one frame of a media file to disk.
type FrameExtractor interface {
	Extract(ctx context.Context, req FrameRequest) (FrameResult, error)
}

// ProfileProber reads the video format of a media file.
type ProfileProber interface {
	Probe(ctx context.Context, path string) (Profile, error)
}
