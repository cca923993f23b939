package metrics

import (
	"github.com/kalder/gravlab/internal/gravity"
)

// MomentumDrift tracks the maximum distance of total linear momentum
// from its value at the first observation. Mutual gravitation conserves
// momentum, so growth here means integration error.
type MomentumDrift struct {
	initial  gravity.Vec2
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(bodies []gravity.Body, t float64) {
	p := gravity.Momentum(bodies)
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	if drift := p.Sub(m.initial).Len(); drift > m.maxDrift {
		m.maxDrift = drift
	}
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.initial = gravity.Vec2{}
	m.maxDrift = 0
	m.samples = 0
}
