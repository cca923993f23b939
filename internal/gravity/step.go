package gravity

// Step advances all bodies by one fixed time step dt under mutual
// gravitation using semi-implicit Euler: velocity updates first, then
// position moves with the new velocity. Accelerations are evaluated
// against the input list only, so no body sees another body's update
// from the same step. The input is left untouched and a new list is
// returned; ID, Mass, Radius and Color pass through unchanged.
func Step(bodies []Body, dt, g, eps float64) []Body {
	next := make([]Body, len(bodies))

	for i, b := range bodies {
		a := Accel(b, bodies, g, eps)
		b.Vel = b.Vel.Add(a.Scale(dt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		next[i] = b
	}

	return next
}
