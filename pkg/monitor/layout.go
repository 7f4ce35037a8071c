package monitor

import (
	"math"

	"github.com/user/trimmonitor/pkg/ports"
)

// MinimizedSize is the preferred size of a hidden panel.
var MinimizedSize = ports.Size{Width: 1, Height: 1}

// Layout holds the panel sizes of the split trim view.
type Layout struct {
	// MatchFrame is the size of the match-frame panel beside the live preview.
	MatchFrame ports.Size

	// EdgeRow is the size of each of the top and bottom indicator panels.
	EdgeRow ports.Size
}

// ComputeLayout derives the trim-view panel sizes from the widget allocation
// and the project profile.
func ComputeLayout(alloc ports.Size, profile ports.Profile) Layout {
	return Layout{
		MatchFrame: MatchFramePanelSize(alloc, profile),
		EdgeRow:    EdgeRowPanelSize(alloc, profile),
	}
}

// MatchFramePanelSize returns a half-width box with the source aspect ratio:
// (W/2, floor(r*W/2)) with r = source height / source width.
func MatchFramePanelSize(alloc ports.Size, profile ports.Profile) ports.Size {
	return atLeastOne(ports.Size{
		Width:  alloc.Width / 2,
		Height: matchFrameHeight(alloc, profile),
	})
}

// EdgeRowPanelSize returns (W, (H - matchFrameHeight)/2): the top and bottom
// strips share the height the match frame leaves over.
func EdgeRowPanelSize(alloc ports.Size, profile ports.Profile) ports.Size {
	return atLeastOne(ports.Size{
		Width:  alloc.Width,
		Height: (alloc.Height - matchFrameHeight(alloc, profile)) / 2,
	})
}

func matchFrameHeight(alloc ports.Size, profile ports.Profile) int {
	return int(math.Floor(profile.AspectRatio() * float64(alloc.Width) / 2))
}

func atLeastOne(s ports.Size) ports.Size {
	if s.Width < 1 {
		s.Width = 1
	}
	if s.Height < 1 {
		s.Height = 1
	}
	return s
}
