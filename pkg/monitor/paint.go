package monitor

import (
	"image"

	"github.com/user/trimmonitor/pkg/ports"
	"github.com/user/trimmonitor/pkg/timecode"
)

const (
	// IndicatorThickness is the height of the active-side bar.
	IndicatorThickness = 4

	// Timecode placement in the bottom panel, relative to its horizontal center.
	timecodeBaseline  = 50
	timecodeLeftSide  = -220
	timecodeRightSide = 20
)

// PaintMatchFrame fills the panel black, or blits img at the origin when a
// match frame is available.
func PaintMatchFrame(canvas ports.Canvas, width, height int, img image.Image, theme Theme) {
	if img == nil {
		canvas.DrawRect(0, 0, width, height, theme.Background)
		return
	}
	canvas.DrawImage(img, 0, 0)
}

// PaintTopPanel draws the top strip with the active-side bar flush to its
// bottom edge: right half for start trim, left half for end trim.
func PaintTopPanel(canvas ports.Canvas, width, height int, mode ViewMode, theme Theme) {
	canvas.DrawRect(0, 0, width, height, theme.Background)

	switch mode {
	case ViewStartTrim:
		canvas.DrawRect(width/2, height-IndicatorThickness, width/2, IndicatorThickness, theme.Indicator)
	case ViewEndTrim:
		canvas.DrawRect(0, height-IndicatorThickness, width/2, IndicatorThickness, theme.Indicator)
	}
}

// BottomPanel is the state the bottom strip displays.
type BottomPanel struct {
	Mode              ViewMode
	MatchFrame        int
	EditTimelineFrame int
	EditClipStart     int
	FPS               float64
}

// PaintBottomPanel draws the bottom strip: the active-side bar flush to its top
// edge, the match frame timecode on the match side and the edit position,
// relative to the clip start, on the active side.
func PaintBottomPanel(canvas ports.Canvas, width, height int, p BottomPanel, theme Theme) {
	canvas.DrawRect(0, 0, width, height, theme.Background)

	// Minimized.
	if width == 1 {
		return
	}

	mid := width / 2
	var matchX, editX int
	switch p.Mode {
	case ViewStartTrim:
		canvas.DrawRect(mid, 0, mid, IndicatorThickness, theme.Indicator)
		matchX = mid + timecodeLeftSide
		editX = mid + timecodeRightSide
	case ViewEndTrim:
		canvas.DrawRect(0, 0, mid, IndicatorThickness, theme.Indicator)
		matchX = mid + timecodeRightSide
		editX = mid + timecodeLeftSide
	default:
		return
	}

	style := ports.TextStyle{
		FontSize:  theme.FontSize,
		FontPath:  theme.FontPath,
		Monospace: true,
		Bold:      true,
		Baseline:  true,
		Color:     theme.Text,
	}

	if p.MatchFrame != Unset {
		canvas.DrawText(timecode.FromFrame(p.MatchFrame, p.FPS), matchX, timecodeBaseline, style)
	}

	if p.EditTimelineFrame != Unset && p.EditClipStart != Unset {
		clipFrame := p.EditTimelineFrame - p.EditClipStart
		canvas.DrawText(timecode.FromFrame(clipFrame, p.FPS), editX, timecodeBaseline, style)
	}
}
