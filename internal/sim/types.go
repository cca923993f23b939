package sim

import "github.com/kalder/gravlab/internal/gravity"

// Observer receives every committed frame of a batch run.
type Observer interface {
	OnStep(bodies []gravity.Body, t float64)
}

// Metric accumulates a scalar over a batch run.
type Metric interface {
	Name() string
	Observe(bodies []gravity.Body, t float64)
	Value() float64
	Reset()
}

// Config drives a batch run. Dt, G and Softening are fixed for the
// whole run; there is no adaptive stepping.
type Config struct {
	Dt            float64
	G             float64
	Softening     float64
	Steps         int
	RecordFrames  bool
	ValidateState bool
}

type Result struct {
	Frames     [][]gravity.Body
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}
