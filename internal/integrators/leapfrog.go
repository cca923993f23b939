package integrators

import "github.com/kalder/gravlab/internal/gravity"

// Leapfrog is kick-drift-kick: half velocity kick, full position drift,
// then a second half kick from the drifted positions.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Name() string { return "leapfrog" }

func (l *Leapfrog) Step(bodies []gravity.Body, dt, g, eps float64) []gravity.Body {
	half := make([]gravity.Body, len(bodies))
	for i, b := range bodies {
		a := gravity.Accel(b, bodies, g, eps)
		b.Vel = b.Vel.Add(a.Scale(dt / 2))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		half[i] = b
	}

	next := make([]gravity.Body, len(half))
	for i, b := range half {
		a := gravity.Accel(b, half, g, eps)
		b.Vel = b.Vel.Add(a.Scale(dt / 2))
		next[i] = b
	}

	return next
}
