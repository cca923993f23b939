package gravity

// Body is a point mass. Radius and Color are display attributes and take
// no part in the physics.
type Body struct {
	ID     int
	Pos    Vec2
	Vel    Vec2
	Mass   float64
	Radius float64
	Color  string
}

func (b Body) Finite() bool {
	return b.Pos.Finite() && b.Vel.Finite()
}

// Clone returns a deep copy of a body list. Body is a value type, so a
// slice copy is sufficient.
func Clone(bodies []Body) []Body {
	c := make([]Body, len(bodies))
	copy(c, bodies)
	return c
}

// Finite reports whether every body in the list has finite position and
// velocity.
func Finite(bodies []Body) bool {
	for _, b := range bodies {
		if !b.Finite() {
			return false
		}
	}
	return true
}
