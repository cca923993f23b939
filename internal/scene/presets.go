package scene

// Presets are the built-in scenes, keyed by name. Body-count selection
// in the frontends maps through ByCount.
var Presets = map[string]*Scene{
	"binary": {
		Name:      "binary",
		Dt:        0.1,
		G:         1.0,
		Softening: 0.5,
		Bodies: []BodyConfig{
			{Mass: 500, Pos: [2]float64{100, 0}, Vel: [2]float64{0, 1.118}, Radius: 6, Color: "#78c8ff"},
			{Mass: 500, Pos: [2]float64{-100, 0}, Vel: [2]float64{0, -1.118}, Radius: 6, Color: "#ff9664"},
		},
	},
	"orbit": {
		Name:      "orbit",
		Dt:        0.1,
		G:         1.0,
		Softening: 0.5,
		AutoOrbit: true,
		Bodies: []BodyConfig{
			{Mass: 1000, Pos: [2]float64{0, 0}, Radius: 9, Color: "#ffd24b"},
			{Mass: 1, Pos: [2]float64{150, 0}, Radius: 4, Color: "#78c8ff"},
			{Mass: 1, Pos: [2]float64{-220, 0}, Radius: 4, Color: "#b478ff"},
		},
	},
}

// ByCount returns a fresh copy of the preset appropriate for n bodies.
// Unknown counts fall back to the three-body preset. The copy is deep,
// so edits to the returned scene never leak into the preset table.
func ByCount(n int) *Scene {
	name := "orbit"
	if n == 2 {
		name = "binary"
	}
	return Get(name)
}

// Get returns a deep copy of a named preset, or nil if it does not
// exist.
func Get(name string) *Scene {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Bodies = make([]BodyConfig, len(p.Bodies))
	copy(c.Bodies, p.Bodies)
	c.Normalize()
	if c.AutoOrbit {
		SetOrbitalVelocities(c.Bodies, c.G)
	}
	return &c
}

// Names lists the preset names in a stable order.
func Names() []string {
	return []string{"binary", "orbit"}
}
