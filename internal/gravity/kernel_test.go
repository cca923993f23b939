package gravity_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kalder/gravlab/internal/gravity"
)

const (
	g   = gravity.DefaultG
	dt  = gravity.DefaultDt
	eps = gravity.DefaultSoftening
)

func binary() []gravity.Body {
	// Equal masses placed symmetrically about the origin with opposite
	// velocities, so the center of mass sits at the origin.
	v := math.Sqrt(g * 500.0 / 400.0)
	return []gravity.Body{
		{ID: 0, Pos: gravity.Vec2{X: 100}, Vel: gravity.Vec2{Y: v}, Mass: 500, Radius: 4},
		{ID: 1, Pos: gravity.Vec2{X: -100}, Vel: gravity.Vec2{Y: -v}, Mass: 500, Radius: 4},
	}
}

var _ = Describe("Accel", func() {
	It("accepts no force from a massless body", func() {
		bodies := []gravity.Body{
			{ID: 0, Pos: gravity.Vec2{}, Mass: 1000},
			{ID: 1, Pos: gravity.Vec2{X: 50}, Mass: 0},
		}

		a := gravity.Accel(bodies[0], bodies, g, eps)
		Expect(a).To(Equal(gravity.Vec2{}))
	})

	It("still accelerates a massless body under others' gravity", func() {
		bodies := []gravity.Body{
			{ID: 0, Pos: gravity.Vec2{}, Mass: 1000},
			{ID: 1, Pos: gravity.Vec2{X: 50}, Mass: 0},
		}

		a := gravity.Accel(bodies[1], bodies, g, eps)
		Expect(a.X).To(BeNumerically("<", 0))
		Expect(a.Finite()).To(BeTrue())
	})

	It("stays finite for coincident bodies", func() {
		bodies := []gravity.Body{
			{ID: 0, Pos: gravity.Vec2{X: 3, Y: -2}, Mass: 100},
			{ID: 1, Pos: gravity.Vec2{X: 3, Y: -2}, Mass: 100},
		}

		for _, b := range bodies {
			a := gravity.Accel(b, bodies, g, eps)
			Expect(a.Finite()).To(BeTrue())
		}
	})

	It("stays finite for near-coincident bodies", func() {
		bodies := []gravity.Body{
			{ID: 0, Pos: gravity.Vec2{}, Mass: 1e6},
			{ID: 1, Pos: gravity.Vec2{X: 1e-12}, Mass: 1e6},
		}

		for _, b := range bodies {
			a := gravity.Accel(b, bodies, g, eps)
			Expect(a.Finite()).To(BeTrue())
		}
	})

	It("never lets a body attract itself", func() {
		bodies := []gravity.Body{{ID: 7, Pos: gravity.Vec2{X: 1}, Mass: 1e9}}
		Expect(gravity.Accel(bodies[0], bodies, g, eps)).To(Equal(gravity.Vec2{}))
	})

	It("is deterministic for identical input order", func() {
		bodies := []gravity.Body{
			{ID: 0, Pos: gravity.Vec2{X: 1, Y: 2}, Mass: 10},
			{ID: 1, Pos: gravity.Vec2{X: -3, Y: 0.5}, Mass: 20},
			{ID: 2, Pos: gravity.Vec2{X: 0.1, Y: -7}, Mass: 30},
		}

		first := gravity.Accel(bodies[0], bodies, g, eps)
		second := gravity.Accel(bodies[0], bodies, g, eps)
		Expect(second).To(Equal(first))
	})
})

var _ = Describe("Step", func() {
	It("matches the closed-form semi-implicit Euler update", func() {
		bodies := []gravity.Body{
			{ID: 0, Pos: gravity.Vec2{}, Vel: gravity.Vec2{}, Mass: 1000},
			{ID: 1, Pos: gravity.Vec2{X: 150}, Vel: gravity.Vec2{Y: 3}, Mass: 1},
		}

		next := gravity.Step(bodies, dt, g, eps)

		r2 := 150.0*150.0 + eps*eps
		ax := -g * 1000.0 * 150.0 / math.Pow(r2, 1.5)
		wantVx := ax * dt
		wantX := 150.0 + wantVx*dt
		wantY := 3.0 * dt

		Expect(next[1].Vel.X).To(BeNumerically("~", wantVx, 1e-12))
		Expect(next[1].Vel.Y).To(Equal(3.0))
		Expect(next[1].Pos.X).To(BeNumerically("~", wantX, 1e-12))
		Expect(next[1].Pos.Y).To(BeNumerically("~", wantY, 1e-12))
	})

	It("does not mutate the input list", func() {
		bodies := binary()
		before := gravity.Clone(bodies)

		gravity.Step(bodies, dt, g, eps)
		Expect(bodies).To(Equal(before))
	})

	It("passes id, mass, radius and color through unchanged", func() {
		bodies := []gravity.Body{
			{ID: 5, Pos: gravity.Vec2{X: 1}, Mass: 42, Radius: 7, Color: "#ffcc00"},
			{ID: 9, Pos: gravity.Vec2{X: -1}, Mass: 13, Radius: 2, Color: "#00ccff"},
		}

		next := gravity.Step(bodies, dt, g, eps)
		for i := range bodies {
			Expect(next[i].ID).To(Equal(bodies[i].ID))
			Expect(next[i].Mass).To(Equal(bodies[i].Mass))
			Expect(next[i].Radius).To(Equal(bodies[i].Radius))
			Expect(next[i].Color).To(Equal(bodies[i].Color))
		}
	})

	It("integrates a zero-mass system with zero acceleration", func() {
		bodies := []gravity.Body{
			{ID: 0, Pos: gravity.Vec2{}, Vel: gravity.Vec2{X: 1}, Mass: 0},
			{ID: 1, Pos: gravity.Vec2{X: 10}, Vel: gravity.Vec2{X: -1}, Mass: 0},
		}

		next := gravity.Step(bodies, dt, g, eps)
		Expect(next[0].Vel).To(Equal(bodies[0].Vel))
		Expect(next[0].Pos).To(Equal(gravity.Vec2{X: dt}))
		Expect(next[1].Pos.X).To(BeNumerically("~", 10-dt, 1e-12))
	})

	It("keeps a symmetric binary's center of mass at the origin", func() {
		bodies := binary()
		for i := 0; i < 500; i++ {
			bodies = gravity.Step(bodies, dt, g, eps)
		}

		com := gravity.CenterOfMass(bodies)
		Expect(com.X).To(BeNumerically("~", 0, 1e-9))
		Expect(com.Y).To(BeNumerically("~", 0, 1e-9))
	})
})

var _ = Describe("Observables", func() {
	It("reports zero momentum for a symmetric binary", func() {
		p := gravity.Momentum(binary())
		Expect(p.X).To(BeNumerically("~", 0, 1e-12))
		Expect(p.Y).To(BeNumerically("~", 0, 1e-12))
	})

	It("reports negative total energy for a bound pair", func() {
		Expect(gravity.TotalEnergy(binary(), g, eps)).To(BeNumerically("<", 0))
	})

	It("keeps energy finite for coincident bodies", func() {
		bodies := []gravity.Body{
			{ID: 0, Mass: 100},
			{ID: 1, Mass: 100},
		}
		e := gravity.TotalEnergy(bodies, g, eps)
		Expect(math.IsInf(e, 0)).To(BeFalse())
		Expect(math.IsNaN(e)).To(BeFalse())
	})

	It("returns the origin as center of mass for a massless system", func() {
		bodies := []gravity.Body{
			{ID: 0, Pos: gravity.Vec2{X: 5}},
			{ID: 1, Pos: gravity.Vec2{X: 9}},
		}
		Expect(gravity.CenterOfMass(bodies)).To(Equal(gravity.Vec2{}))
	})
})
