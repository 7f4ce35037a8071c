// Package timecode formats frame counts as non-drop-frame HH:MM:SS:FF strings.
package timecode

import (
	"fmt"
	"math"
)

// FromFrame formats frame at the given frame rate. Fractional rates are rounded
// to the nearest whole frame base (29.97 counts 30 frames per second). Negative
// frames get a leading "-".
func FromFrame(frame int, fps float64) string {
	if frame < 0 {
		return "-" + FromFrame(-frame, fps)
	}

	base := int(math.Round(fps))
	if base <= 0 {
		base = 25
	}

	ff := frame % base
	totalSec := frame / base
	ss := totalSec % 60
	mm := (totalSec / 60) % 60
	hh := totalSec / 3600

	return fmt.Sprintf("%02d:%02d:%02d:%02d", hh, mm, ss, ff)
}

// ToFrame is the inverse of FromFrame for well-formed, non-negative timecodes.
func ToFrame(tc string, fps float64) (int, error) {
	var hh, mm, ss, ff int
	if _, err := fmt.Sscanf(tc, "%d:%d:%d:%d", &hh, &mm, &ss, &ff); err != nil {
		return 0, fmt.Errorf("parse timecode %q: %w", tc, err)
	}

	base := int(math.Round(fps))
	if base <= 0 {
		base = 25
	}
	if ff >= base || ss >= 60 || mm >= 60 {
		return 0, fmt.Errorf("timecode %q out of range for %d fps", tc, base)
	}

	return ((hh*60+mm)*60+ss)*base + ff, nil
}
