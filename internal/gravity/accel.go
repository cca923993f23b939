package gravity

import "math"

// Simulation units, tuned for stable orbits at screen-scale coordinates.
const (
	DefaultG         = 1.0
	DefaultDt        = 0.1
	DefaultSoftening = 0.5
)

// Accel returns the net gravitational acceleration on target from every
// other body in the list. A body never attracts itself (matched by ID),
// and a zero-mass body contributes nothing. The softening length eps
// bounds the force when bodies coincide, so the result is finite for any
// finite input. Accumulation follows slice order: the sum is not
// bit-identical under reordering, but is deterministic for identical
// input order.
func Accel(target Body, bodies []Body, g, eps float64) Vec2 {
	var a Vec2
	eps2 := eps * eps

	for _, other := range bodies {
		if other.ID == target.ID {
			continue
		}
		d := other.Pos.Sub(target.Pos)
		r2 := d.X*d.X + d.Y*d.Y + eps2
		r := math.Sqrt(r2)
		mag := g * other.Mass / (r2 * r)
		a.X += mag * d.X
		a.Y += mag * d.Y
	}

	return a
}
