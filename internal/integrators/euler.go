package integrators

import "github.com/kalder/gravlab/internal/gravity"

// SymplecticEuler is semi-implicit Euler: velocity first, then position
// with the new velocity. One force evaluation per body per step.
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (e *SymplecticEuler) Name() string { return "euler" }

func (e *SymplecticEuler) Step(bodies []gravity.Body, dt, g, eps float64) []gravity.Body {
	return gravity.Step(bodies, dt, g, eps)
}
