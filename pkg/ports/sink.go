package ports

import (
	"image"
)

// DebugSink receives intermediate images for debugging.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveMatchFrame saves a decoded, panel-sized match frame.
	SaveMatchFrame(generation uint64, img image.Image) error

	// SavePanel saves the rendered content of one named panel.
	SavePanel(name string, img image.Image) error
}
