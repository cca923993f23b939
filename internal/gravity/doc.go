// Package gravity implements the Newtonian N-body kernel.
//
// [Accel] computes the softened pairwise acceleration on one body,
// [Step] advances a full body list by one fixed time step with
// semi-implicit Euler. Step is a pure function: it never mutates its
// input and returns a fresh list, so a frame is either fully applied
// or not at all.
//
// Observables over a body list:
//
//	e := gravity.TotalEnergy(bodies, g, eps)
//	p := gravity.Momentum(bodies)
//	c := gravity.CenterOfMass(bodies)
//
// The constants here are simulation units, not SI: G and the softening
// length are chosen for visually stable orbits at screen scale.
package gravity
