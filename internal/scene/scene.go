// Package scene holds user-editable initial conditions: per-body mass,
// position, velocity and display attributes, plus the simulation
// constants a scene runs with. A scene is the input boundary; values are
// validated and clamped here, never inside the physics kernel.
package scene

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kalder/gravlab/internal/gravity"
)

const (
	DefaultRadius = 4.0
	DefaultColor  = "#c8c8ff"
)

type BodyConfig struct {
	Mass   float64    `yaml:"mass"`
	Pos    [2]float64 `yaml:"pos"`
	Vel    [2]float64 `yaml:"vel"`
	Radius float64    `yaml:"radius,omitempty"`
	Color  string     `yaml:"color,omitempty"`
}

type Scene struct {
	Name      string       `yaml:"name"`
	Dt        float64      `yaml:"dt"`
	G         float64      `yaml:"g"`
	Softening float64      `yaml:"softening"`
	AutoOrbit bool         `yaml:"auto_orbit,omitempty"`
	Bodies    []BodyConfig `yaml:"bodies"`
}

// Normalize fills zero-valued simulation constants and display
// attributes with package defaults and clamps negative masses to zero.
func (s *Scene) Normalize() {
	if s.Dt <= 0 {
		s.Dt = gravity.DefaultDt
	}
	if s.G <= 0 {
		s.G = gravity.DefaultG
	}
	if s.Softening <= 0 {
		s.Softening = gravity.DefaultSoftening
	}
	for i := range s.Bodies {
		s.Bodies[i].Mass = ClampMass(s.Bodies[i].Mass)
		if s.Bodies[i].Radius <= 0 {
			s.Bodies[i].Radius = DefaultRadius
		}
		if s.Bodies[i].Color == "" {
			s.Bodies[i].Color = DefaultColor
		}
	}
}

// Build materializes the edited configuration into a fresh body list.
// Body IDs are assigned from slice order, so building twice from an
// unchanged scene yields identical lists.
func (s *Scene) Build() []gravity.Body {
	bodies := make([]gravity.Body, len(s.Bodies))
	for i, b := range s.Bodies {
		bodies[i] = gravity.Body{
			ID:     i,
			Pos:    gravity.Vec2{X: b.Pos[0], Y: b.Pos[1]},
			Vel:    gravity.Vec2{X: b.Vel[0], Y: b.Vel[1]},
			Mass:   ClampMass(b.Mass),
			Radius: b.Radius,
			Color:  b.Color,
		}
		if bodies[i].Radius <= 0 {
			bodies[i].Radius = DefaultRadius
		}
		if bodies[i].Color == "" {
			bodies[i].Color = DefaultColor
		}
	}
	return bodies
}

// SetOrbitalVelocities seeds every body after the first with a circular
// orbital velocity about the first body, leaving bodies with an explicit
// velocity alone. The first body is treated as the primary.
func SetOrbitalVelocities(bodies []BodyConfig, g float64) {
	if len(bodies) == 0 {
		return
	}
	primary := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Vel[0] != 0 || bodies[i].Vel[1] != 0 {
			continue
		}
		dx := bodies[i].Pos[0] - primary.Pos[0]
		dy := bodies[i].Pos[1] - primary.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(g * primary.Mass / r)
		bodies[i].Vel[0] = -dy / r * v
		bodies[i].Vel[1] = dx / r * v
	}
}

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	s.Normalize()
	if s.AutoOrbit {
		SetOrbitalVelocities(s.Bodies, s.G)
	}
	return &s, nil
}

func Save(path string, s *Scene) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
