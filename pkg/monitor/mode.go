// Package monitor implements the trim monitor: a view-state controller that
// switches between the live preview and a split trim view showing a match
// frame beside the preview, plus the layout and paint rules for its panels.
package monitor

import (
	"image/color"
)

// ViewMode is the monitor's display mode.
type ViewMode int

const (
	ViewDefault ViewMode = iota
	ViewStartTrim
	ViewEndTrim
)

// String returns the mode name.
func (m ViewMode) String() string {
	switch m {
	case ViewDefault:
		return "default"
	case ViewStartTrim:
		return "start-trim"
	case ViewEndTrim:
		return "end-trim"
	default:
		return "unknown"
	}
}

// ParseViewMode parses "default", "start"/"start-trim" or "end"/"end-trim".
func ParseViewMode(s string) (ViewMode, bool) {
	switch s {
	case "default":
		return ViewDefault, true
	case "start", "start-trim":
		return ViewStartTrim, true
	case "end", "end-trim":
		return ViewEndTrim, true
	default:
		return ViewDefault, false
	}
}

// Clip is the clip a match frame is taken from.
type Clip struct {
	Path    string
	ClipIn  int // first source frame included by the trim
	ClipOut int // last source frame included by the trim
}

// Unset marks an absent frame index.
const Unset = -1

// DefaultMatchFrameName is the scratch file name for the match frame.
const DefaultMatchFrameName = "match_frame.png"

// Theme holds the panel colors and timecode font.
type Theme struct {
	Background color.Color
	Indicator  color.Color
	Text       color.Color
	FontSize   float64
	FontPath   string // empty selects the built-in monospace bold face
}

// DefaultTheme returns black panels, a blue active-side indicator and white
// 21pt timecodes.
func DefaultTheme() Theme {
	return Theme{
		Background: color.Black,
		Indicator:  color.RGBA{R: 71, G: 131, B: 169, A: 255},
		Text:       color.White,
		FontSize:   21,
	}
}
