package matchframe

import "errors"

var (
	// ErrPipelineFailed is returned when ffmpeg fails or its output never appears.
	ErrPipelineFailed = errors.New("matchframe: decode pipeline failed")

	// ErrFFmpegNotFound is returned when no ffmpeg binary can be located.
	ErrFFmpegNotFound = errors.New("matchframe: ffmpeg not found")

	// ErrInvalidRequest is returned for requests without a source, a negative
	// frame or an output name that is not a plain file name.
	ErrInvalidRequest = errors.New("matchframe: invalid request")
)
