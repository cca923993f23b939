// Package integrators provides fixed-step schemes for advancing a body
// list under mutual gravitation. Semi-implicit Euler is the default and
// defines the reference semantics; leapfrog and velocity Verlet are
// higher-order symplectic alternatives for long runs.
package integrators

import (
	"fmt"

	"github.com/kalder/gravlab/internal/gravity"
)

// Integrator advances a body list by one fixed time step and returns a
// new list, leaving the input untouched.
type Integrator interface {
	Name() string
	Step(bodies []gravity.Body, dt, g, eps float64) []gravity.Body
}

// New returns the integrator registered under name. The empty string
// selects the default scheme.
func New(name string) (Integrator, error) {
	switch name {
	case "", "euler":
		return NewSymplecticEuler(), nil
	case "leapfrog":
		return NewLeapfrog(), nil
	case "verlet":
		return NewVerlet(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

// Names lists the registered integrator names.
func Names() []string {
	return []string{"euler", "leapfrog", "verlet"}
}
