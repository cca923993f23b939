package sim

import "github.com/kalder/gravlab/internal/gravity"

// TrailCap is the maximum number of past positions kept per body.
const TrailCap = 500

// Trail is a bounded FIFO of past positions for one body, used only for
// rendering. Once full, the oldest sample is evicted on append.
type Trail struct {
	points []gravity.Vec2
	max    int
}

func NewTrail(max int) *Trail {
	if max <= 0 {
		max = TrailCap
	}
	return &Trail{points: make([]gravity.Vec2, 0, max), max: max}
}

func (t *Trail) Append(p gravity.Vec2) {
	t.points = append(t.points, p)
	if len(t.points) > t.max {
		t.points = t.points[1:]
	}
}

func (t *Trail) Len() int { return len(t.points) }

// Points returns a copy of the recorded positions, oldest first.
func (t *Trail) Points() []gravity.Vec2 {
	c := make([]gravity.Vec2, len(t.points))
	copy(c, t.points)
	return c
}

func (t *Trail) Clear() {
	t.points = t.points[:0]
}
