package timecode

import "testing"

func TestFromFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame int
		fps   float64
		want  string
	}{
		{"zero", 0, 25, "00:00:00:00"},
		{"frames only", 24, 25, "00:00:00:24"},
		{"one second", 25, 25, "00:00:01:00"},
		{"minute wrap", 25 * 61, 25, "00:01:01:00"},
		{"hour", 30 * 3600, 30, "01:00:00:00"},
		{"ntsc rounds to 30", 45, 29.97, "00:00:01:15"},
		{"negative", -26, 25, "-00:00:01:01"},
		{"no rate falls back to 25", 50, 0, "00:00:02:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFrame(tt.frame, tt.fps); got != tt.want {
				t.Errorf("FromFrame(%d, %v) = %q, want %q", tt.frame, tt.fps, got, tt.want)
			}
		})
	}
}

func TestToFrame(t *testing.T) {
	got, err := ToFrame("00:01:01:05", 25)
	if err != nil {
		t.Fatalf("ToFrame failed: %v", err)
	}
	if got != 25*61+5 {
		t.Errorf("expected %d, got %d", 25*61+5, got)
	}

	if _, err := ToFrame("00:00:00:30", 25); err == nil {
		t.Error("expected error for frame field beyond rate")
	}
	if _, err := ToFrame("garbage", 25); err == nil {
		t.Error("expected parse error")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, frame := range []int{0, 1, 29, 30, 1799, 1800, 108000} {
		tc := FromFrame(frame, 30)
		back, err := ToFrame(tc, 30)
		if err != nil {
			t.Fatalf("ToFrame(%q) failed: %v", tc, err)
		}
		if back != frame {
			t.Errorf("round trip %d -> %q -> %d", frame, tc, back)
		}
	}
}
