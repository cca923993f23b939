package sim

import (
	"context"

	"github.com/kalder/gravlab/internal/gravity"
	"github.com/kalder/gravlab/internal/integrators"
	"github.com/kalder/gravlab/internal/scene"
)

// Runner owns the mutable simulation state: the current body list,
// per-body trails, and the clock. It is single-goroutine by design: one
// Step runs to completion before the next is scheduled, pause and
// resume happen only between steps, and the body list is replaced as a
// whole each step so no partially-updated state is ever observable.
// Frontends read through Snapshot and Trail, which copy.
type Runner struct {
	sc     *scene.Scene
	integ  integrators.Integrator
	bodies []gravity.Body
	trails map[int]*Trail

	dt      float64
	g       float64
	eps     float64
	time    float64
	steps   int
	running bool

	metrics   []Metric
	observers []Observer
}

func NewRunner(sc *scene.Scene, integ integrators.Integrator) *Runner {
	r := &Runner{sc: sc, integ: integ}
	r.Reset()
	return r
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Reset rebuilds the body list from the edited scene, clears all trails
// and rewinds the clock. Resetting twice against an unchanged scene
// yields identical state.
func (r *Runner) Reset() {
	r.sc.Normalize()
	r.dt = r.sc.Dt
	r.g = r.sc.G
	r.eps = r.sc.Softening
	r.bodies = r.sc.Build()
	r.trails = make(map[int]*Trail, len(r.bodies))
	for _, b := range r.bodies {
		r.trails[b.ID] = NewTrail(TrailCap)
	}
	r.time = 0
	r.steps = 0
	r.running = false
}

// SetScene replaces the edited initial conditions (e.g. on body-count
// selection) and resets.
func (r *Runner) SetScene(sc *scene.Scene) {
	r.sc = sc
	r.Reset()
}

// Step advances the simulation by exactly one fixed time step and
// records the new positions in the trails.
func (r *Runner) Step() {
	r.bodies = r.integ.Step(r.bodies, r.dt, r.g, r.eps)
	r.time += r.dt
	r.steps++
	for _, b := range r.bodies {
		r.trails[b.ID].Append(b.Pos)
	}
}

func (r *Runner) Start()        { r.running = true }
func (r *Runner) Pause()        { r.running = false }
func (r *Runner) Toggle()       { r.running = !r.running }
func (r *Runner) Running() bool { return r.running }

func (r *Runner) Time() float64       { return r.time }
func (r *Runner) Steps() int          { return r.steps }
func (r *Runner) Dt() float64         { return r.dt }
func (r *Runner) G() float64          { return r.g }
func (r *Runner) Softening() float64  { return r.eps }
func (r *Runner) Scene() *scene.Scene { return r.sc }

// Snapshot returns a read-only deep copy of the current body list.
func (r *Runner) Snapshot() []gravity.Body {
	return gravity.Clone(r.bodies)
}

// Trail returns a copy of the recorded trail for a body, oldest first.
func (r *Runner) Trail(id int) []gravity.Vec2 {
	t, ok := r.trails[id]
	if !ok {
		return nil
	}
	return t.Points()
}

// Energy returns the current total energy of the system.
func (r *Runner) Energy() float64 {
	return gravity.TotalEnergy(r.bodies, r.g, r.eps)
}

// Run drives cfg.Steps steps from the current state, checking ctx
// between steps, feeding metrics and observers, and recording frames
// when asked. Used by the headless run command; the interactive
// frontends call Step directly.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Dt != 0 {
		r.dt = cfg.Dt
	}
	if cfg.G != 0 {
		r.g = cfg.G
	}
	if cfg.Softening != 0 {
		r.eps = cfg.Softening
	}
	if r.dt <= 0 {
		return nil, ErrInvalidTimestep
	}
	if cfg.Steps <= 0 {
		return nil, ErrInvalidSteps
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}
	if cfg.RecordFrames {
		result.Frames = make([][]gravity.Body, 0, cfg.Steps+1)
		result.Times = make([]float64, 0, cfg.Steps+1)
		result.Frames = append(result.Frames, r.Snapshot())
		result.Times = append(result.Times, r.time)
	}

	for _, m := range r.metrics {
		m.Observe(r.bodies, r.time)
	}

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.Step()
		result.StepsTaken++

		if cfg.ValidateState && !gravity.Finite(r.bodies) {
			return result, &StepError{Step: i, Time: r.time, Wrapped: ErrInvalidState}
		}

		for _, m := range r.metrics {
			m.Observe(r.bodies, r.time)
		}
		for _, o := range r.observers {
			o.OnStep(r.bodies, r.time)
		}
		if cfg.RecordFrames {
			result.Frames = append(result.Frames, r.Snapshot())
			result.Times = append(result.Times, r.time)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
