package metrics

import (
	"math"

	"github.com/kalder/gravlab/internal/gravity"
)

// EnergyDrift tracks the maximum relative deviation of total energy
// from its value at the first observation.
type EnergyDrift struct {
	g, eps   float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(g, eps float64) *EnergyDrift {
	return &EnergyDrift{g: g, eps: eps}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(bodies []gravity.Body, t float64) {
	energy := gravity.TotalEnergy(bodies, e.g, e.eps)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
