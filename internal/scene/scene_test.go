package scene

import (
	"math"
	"path/filepath"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"-.", 0, false},
		{"1e", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"0", 0, true},
		{"-0.5", -0.5, true},
		{"150", 150, true},
		{" 3.25 ", 3.25, true},
		{"1e3", 1000, true},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseNumber(%q): ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampMass(t *testing.T) {
	if got := ClampMass(-5); got != 0 {
		t.Errorf("ClampMass(-5) = %v, want 0", got)
	}
	if got := ClampMass(42); got != 42 {
		t.Errorf("ClampMass(42) = %v, want 42", got)
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#ff8000")
	if r != 0xff || g != 0x80 || b != 0x00 {
		t.Errorf("ParseHexColor(#ff8000) = %d,%d,%d", r, g, b)
	}

	r, g, b = ParseHexColor("not-a-color")
	if r != 0xc8 || g != 0xc8 || b != 0xff {
		t.Errorf("expected fallback color, got %d,%d,%d", r, g, b)
	}
}

func TestBuildClampsNegativeMass(t *testing.T) {
	s := &Scene{Bodies: []BodyConfig{{Mass: -10, Pos: [2]float64{1, 2}}}}
	bodies := s.Build()

	if bodies[0].Mass != 0 {
		t.Errorf("negative mass not clamped: %v", bodies[0].Mass)
	}
	if bodies[0].Radius != DefaultRadius || bodies[0].Color != DefaultColor {
		t.Error("display defaults not applied")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	s := ByCount(3)
	a := s.Build()
	b := s.Build()

	if len(a) != len(b) {
		t.Fatalf("builds differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("body %d differs between builds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestByCount(t *testing.T) {
	if got := len(ByCount(2).Bodies); got != 2 {
		t.Errorf("ByCount(2): %d bodies", got)
	}
	if got := len(ByCount(3).Bodies); got != 3 {
		t.Errorf("ByCount(3): %d bodies", got)
	}

	// Preset copies must be independent.
	s := ByCount(2)
	s.Bodies[0].Mass = 1
	if Presets["binary"].Bodies[0].Mass == 1 {
		t.Error("editing a ByCount scene mutated the preset table")
	}
}

func TestOrbitalVelocitySeeding(t *testing.T) {
	s := ByCount(3)

	for i := 1; i < len(s.Bodies); i++ {
		b := s.Bodies[i]
		r := math.Hypot(b.Pos[0], b.Pos[1])
		want := math.Sqrt(s.G * s.Bodies[0].Mass / r)
		got := math.Hypot(b.Vel[0], b.Vel[1])
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("body %d: orbital speed %.6f, want %.6f", i, got, want)
		}
		// Velocity must be perpendicular to the radius vector.
		dot := b.Pos[0]*b.Vel[0] + b.Pos[1]*b.Vel[1]
		if math.Abs(dot) > 1e-9 {
			t.Errorf("body %d: velocity not tangential (dot=%.6f)", i, dot)
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	orig := ByCount(2)
	orig.Name = "roundtrip"
	if err := Save(path, orig); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Name != "roundtrip" {
		t.Errorf("name = %q", loaded.Name)
	}
	if loaded.Dt != orig.Dt || loaded.G != orig.G || loaded.Softening != orig.Softening {
		t.Error("simulation constants did not round-trip")
	}
	if len(loaded.Bodies) != len(orig.Bodies) {
		t.Fatalf("body count = %d, want %d", len(loaded.Bodies), len(orig.Bodies))
	}
	for i := range orig.Bodies {
		if loaded.Bodies[i] != orig.Bodies[i] {
			t.Errorf("body %d differs: %+v vs %+v", i, loaded.Bodies[i], orig.Bodies[i])
		}
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.yaml")
	s := &Scene{Name: "sparse", Bodies: []BodyConfig{{Mass: -3, Pos: [2]float64{10, 0}}}}
	if err := Save(path, s); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Dt <= 0 || loaded.G <= 0 || loaded.Softening <= 0 {
		t.Error("constants not defaulted on load")
	}
	if loaded.Bodies[0].Mass != 0 {
		t.Errorf("mass not clamped on load: %v", loaded.Bodies[0].Mass)
	}
}
