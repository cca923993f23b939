package gravity

import "math"

// TotalEnergy returns kinetic plus softened potential energy of the
// system. The potential uses the same softened distance as Accel, so a
// coincident pair has finite energy.
func TotalEnergy(bodies []Body, g, eps float64) float64 {
	ke := 0.0
	pe := 0.0
	eps2 := eps * eps

	for i := range bodies {
		v := bodies[i].Vel
		ke += 0.5 * bodies[i].Mass * v.Dot(v)

		for j := i + 1; j < len(bodies); j++ {
			d := bodies[j].Pos.Sub(bodies[i].Pos)
			r := math.Sqrt(d.X*d.X + d.Y*d.Y + eps2)
			pe -= g * bodies[i].Mass * bodies[j].Mass / r
		}
	}

	return ke + pe
}

// Momentum returns the total linear momentum of the system.
func Momentum(bodies []Body) Vec2 {
	var p Vec2
	for _, b := range bodies {
		p = p.Add(b.Vel.Scale(b.Mass))
	}
	return p
}

// CenterOfMass returns the mass-weighted mean position. A system with
// zero total mass has no center of mass; the origin is returned.
func CenterOfMass(bodies []Body) Vec2 {
	var c Vec2
	total := 0.0
	for _, b := range bodies {
		c = c.Add(b.Pos.Scale(b.Mass))
		total += b.Mass
	}
	if total == 0 {
		return Vec2{}
	}
	return c.Scale(1 / total)
}

// AngularMomentum returns the total angular momentum about the origin.
func AngularMomentum(bodies []Body) float64 {
	l := 0.0
	for _, b := range bodies {
		l += b.Mass * (b.Pos.X*b.Vel.Y - b.Pos.Y*b.Vel.X)
	}
	return l
}
