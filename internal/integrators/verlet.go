package integrators

import "github.com/kalder/gravlab/internal/gravity"

// Verlet is velocity Verlet: positions advance with the current
// acceleration, velocities with the average of the accelerations before
// and after the move.
type Verlet struct{}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Name() string { return "verlet" }

func (v *Verlet) Step(bodies []gravity.Body, dt, g, eps float64) []gravity.Body {
	acc := make([]gravity.Vec2, len(bodies))
	moved := make([]gravity.Body, len(bodies))
	for i, b := range bodies {
		a := gravity.Accel(b, bodies, g, eps)
		acc[i] = a
		b.Pos = b.Pos.Add(b.Vel.Scale(dt)).Add(a.Scale(0.5 * dt * dt))
		moved[i] = b
	}

	next := make([]gravity.Body, len(moved))
	for i, b := range moved {
		a := gravity.Accel(b, moved, g, eps)
		b.Vel = b.Vel.Add(acc[i].Add(a).Scale(0.5 * dt))
		next[i] = b
	}

	return next
}
