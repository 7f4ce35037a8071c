package ports

// Player is the live preview player.
type Player interface {
	// IsRendering reports whether a render to file is in progress.
	IsRendering() bool

	// Refresh asks for a redraw of the live preview.
	Refresh()
}

// Profile describes the project's video format.
type Profile struct {
	Width        int
	Height       int
	FrameRateNum int
	FrameRateDen int
}

// FPS returns the frame rate, or 25 when the profile carries none.
func (p Profile) FPS() float64 {
	if p.FrameRateNum <= 0 || p.FrameRateDen <= 0 {
		return 25
	}
	return float64(p.FrameRateNum) / float64(p.FrameRateDen)
}

// AspectRatio returns height/width, or 9/16 for an empty profile.
func (p Profile) AspectRatio() float64 {
	if p.Width <= 0 || p.Height <= 0 {
		return 9.0 / 16.0
	}
	return float64(p.Height) / float64(p.Width)
}

// Project is the open project.
type Project interface {
	Profile() Profile
}
