package monitor

import (
	"testing"

	"github.com/user/trimmonitor/pkg/ports"
)

func TestComputeLayout(t *testing.T) {
	hd := ports.Profile{Width: 1920, Height: 1080, FrameRateNum: 25, FrameRateDen: 1}
	sd := ports.Profile{Width: 720, Height: 576, FrameRateNum: 25, FrameRateDen: 1}

	tests := []struct {
		name       string
		alloc      ports.Size
		profile    ports.Profile
		matchFrame ports.Size
		edgeRow    ports.Size
	}{
		{"full hd", ports.Size{Width: 1920, Height: 1080}, hd, ports.Size{Width: 960, Height: 540}, ports.Size{Width: 1920, Height: 270}},
		{"odd width floors", ports.Size{Width: 1001, Height: 700}, hd, ports.Size{Width: 500, Height: 281}, ports.Size{Width: 1001, Height: 209}},
		{"pal", ports.Size{Width: 800, Height: 600}, sd, ports.Size{Width: 400, Height: 320}, ports.Size{Width: 800, Height: 140}},
		{"empty profile uses 16:9", ports.Size{Width: 640, Height: 480}, ports.Profile{}, ports.Size{Width: 320, Height: 180}, ports.Size{Width: 640, Height: 150}},
		{"too short clamps edge rows", ports.Size{Width: 1920, Height: 500}, hd, ports.Size{Width: 960, Height: 540}, ports.Size{Width: 1920, Height: 1}},
		{"zero allocation", ports.Size{}, hd, ports.Size{Width: 1, Height: 1}, ports.Size{Width: 1, Height: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLayout(tt.alloc, tt.profile)
			if got.MatchFrame != tt.matchFrame {
				t.Errorf("match frame: got %+v, want %+v", got.MatchFrame, tt.matchFrame)
			}
			if got.EdgeRow != tt.edgeRow {
				t.Errorf("edge row: got %+v, want %+v", got.EdgeRow, tt.edgeRow)
			}
		})
	}
}

func TestParseViewMode(t *testing.T) {
	for _, s := range []string{"default", "start", "start-trim", "end", "end-trim"} {
		if _, ok := ParseViewMode(s); !ok {
			t.Errorf("ParseViewMode(%q) failed", s)
		}
	}
	if m, _ := ParseViewMode("end"); m != ViewEndTrim {
		t.Errorf("expected end-trim, got %s", m)
	}
	if _, ok := ParseViewMode("sideways"); ok {
		t.Error("expected unknown mode to fail")
	}
}
