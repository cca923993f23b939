package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/kalder/gravlab/internal/gravity"
	"github.com/kalder/gravlab/internal/integrators"
	"github.com/kalder/gravlab/internal/scene"
)

func newTestRunner(t *testing.T, n int) *Runner {
	t.Helper()
	integ, err := integrators.New("euler")
	if err != nil {
		t.Fatalf("integrator: %v", err)
	}
	return NewRunner(scene.ByCount(n), integ)
}

func TestResetIdempotent(t *testing.T) {
	r := newTestRunner(t, 3)

	r.Reset()
	first := r.Snapshot()
	r.Reset()
	second := r.Snapshot()

	if len(first) != len(second) {
		t.Fatalf("snapshot lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("body %d differs after double reset: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestResetClearsTrailsAndClock(t *testing.T) {
	r := newTestRunner(t, 2)

	for i := 0; i < 10; i++ {
		r.Step()
	}
	if r.Trail(0) == nil || len(r.Trail(0)) != 10 {
		t.Fatalf("expected 10 trail points, got %d", len(r.Trail(0)))
	}

	r.Reset()
	if len(r.Trail(0)) != 0 {
		t.Error("trail not cleared on reset")
	}
	if r.Time() != 0 || r.Steps() != 0 {
		t.Error("clock not rewound on reset")
	}
	if r.Running() {
		t.Error("runner should be paused after reset")
	}
}

func TestTrailCap(t *testing.T) {
	r := newTestRunner(t, 2)

	for i := 0; i < TrailCap+137; i++ {
		r.Step()
	}
	for _, b := range r.Snapshot() {
		if got := len(r.Trail(b.ID)); got != TrailCap {
			t.Errorf("body %d: trail length %d, want %d", b.ID, got, TrailCap)
		}
	}
}

func TestTrailEvictsOldest(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Append(gravity.Vec2{X: float64(i)})
	}

	pts := tr.Points()
	if len(pts) != 3 {
		t.Fatalf("len = %d, want 3", len(pts))
	}
	for i, want := range []float64{2, 3, 4} {
		if pts[i].X != want {
			t.Errorf("pts[%d].X = %v, want %v", i, pts[i].X, want)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	r := newTestRunner(t, 2)

	snap := r.Snapshot()
	snap[0].Pos.X = 1e9

	if r.Snapshot()[0].Pos.X == 1e9 {
		t.Error("mutating a snapshot leaked into runner state")
	}
}

func TestRunRecordsFramesAndMetrics(t *testing.T) {
	r := newTestRunner(t, 2)
	m := &countMetric{}
	r.AddMetric(m)

	result, err := r.Run(context.Background(), Config{Steps: 50, RecordFrames: true, ValidateState: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.StepsTaken != 50 {
		t.Errorf("steps taken = %d, want 50", result.StepsTaken)
	}
	if len(result.Frames) != 51 || len(result.Times) != 51 {
		t.Errorf("frames/times = %d/%d, want 51/51", len(result.Frames), len(result.Times))
	}
	if _, ok := result.Metrics["count"]; !ok {
		t.Error("metric missing from result")
	}
	// Initial observation plus one per step.
	if m.n != 51 {
		t.Errorf("metric observed %d times, want 51", m.n)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	r := newTestRunner(t, 2)

	if _, err := r.Run(context.Background(), Config{Steps: 0}); !errors.Is(err, ErrInvalidSteps) {
		t.Errorf("expected ErrInvalidSteps, got %v", err)
	}
	if _, err := r.Run(context.Background(), Config{Steps: 10, Dt: -1}); !errors.Is(err, ErrInvalidTimestep) {
		t.Errorf("expected ErrInvalidTimestep, got %v", err)
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	r := newTestRunner(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, Config{Steps: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result.StepsTaken != 0 {
		t.Errorf("steps after immediate cancel = %d, want 0", result.StepsTaken)
	}
}

func TestBodyCountSelectionReplacesWholeSet(t *testing.T) {
	r := newTestRunner(t, 2)
	for i := 0; i < 5; i++ {
		r.Step()
	}

	r.SetScene(scene.ByCount(3))
	if got := len(r.Snapshot()); got != 3 {
		t.Fatalf("body count = %d, want 3", got)
	}
	if r.Time() != 0 {
		t.Error("clock not rewound on scene replacement")
	}
	if len(r.Trail(0)) != 0 {
		t.Error("trails not cleared on scene replacement")
	}
}

type countMetric struct{ n int }

func (m *countMetric) Name() string { return "count" }

func (m *countMetric) Observe(bodies []gravity.Body, _ float64) { m.n++ }

func (m *countMetric) Value() float64 { return float64(m.n) }

func (m *countMetric) Reset() { m.n = 0 }
