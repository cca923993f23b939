package viz

// TrailMode selects how recorded positions render.
type TrailMode int

const (
	// TrailFade draws a fading afterimage of the most recent positions.
	TrailFade TrailMode = iota
	// TrailLine draws the full recorded path as a connected line.
	TrailLine
)

func (m TrailMode) String() string {
	if m == TrailLine {
		return "line"
	}
	return "fade"
}

func (m TrailMode) Toggle() TrailMode {
	if m == TrailFade {
		return TrailLine
	}
	return TrailFade
}
