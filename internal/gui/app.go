// Package gui is the windowed frontend: a 2D canvas with the origin at
// the screen center and the world Y axis pointing up.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/kalder/gravlab/internal/gravity"
	"github.com/kalder/gravlab/internal/integrators"
	"github.com/kalder/gravlab/internal/scene"
	"github.com/kalder/gravlab/internal/sim"
	"github.com/kalder/gravlab/internal/viz"
)

const (
	screenWidth  = 1280
	screenHeight = 800
	fadeLen      = 120
)

var (
	colBg      = rl.NewColor(10, 10, 14, 255)
	colText    = rl.NewColor(140, 140, 150, 255)
	colTextDim = rl.NewColor(70, 70, 80, 255)
	colSelect  = rl.NewColor(255, 255, 255, 255)
)

type App struct {
	runner    *sim.Runner
	sc        *scene.Scene
	trailMode viz.TrailMode
	selected  int
}

func New(sc *scene.Scene, integ integrators.Integrator) *App {
	return &App{
		runner:   sim.NewRunner(sc, integ),
		sc:       sc,
		selected: -1,
	}
}

// Run opens the window and drives the frame loop: one fixed simulation
// step per frame while running, input handled between steps.
func (a *App) Run() {
	rl.InitWindow(screenWidth, screenHeight, "gravlab")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyQ)

	a.runner.Start()

	for !rl.WindowShouldClose() {
		a.handleInput()

		if a.runner.Running() {
			a.runner.Step()
		}

		rl.BeginDrawing()
		rl.ClearBackground(colBg)
		a.drawTrails()
		a.drawBodies()
		a.drawHUD()
		rl.EndDrawing()
	}
}

func (a *App) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.runner.Toggle()
	case rl.IsKeyPressed(rl.KeyN):
		if !a.runner.Running() {
			a.runner.Step()
		}
	case rl.IsKeyPressed(rl.KeyT):
		a.trailMode = a.trailMode.Toggle()
	case rl.IsKeyPressed(rl.KeyR):
		a.runner.Reset()
		a.runner.Start()
	case rl.IsKeyPressed(rl.KeyTwo):
		a.setBodyCount(2)
	case rl.IsKeyPressed(rl.KeyThree):
		a.setBodyCount(3)
	case rl.IsKeyPressed(rl.KeyK):
		a.scaleSelectedMass(1.1)
	case rl.IsKeyPressed(rl.KeyJ):
		a.scaleSelectedMass(0.9)
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.selected = a.pickBody(rl.GetMousePosition())
	}
}

func (a *App) setBodyCount(n int) {
	a.sc = scene.ByCount(n)
	a.runner.SetScene(a.sc)
	a.runner.Start()
	a.selected = -1
}

// scaleSelectedMass edits the scene's initial conditions, so the change
// survives reset; the running body list is rebuilt immediately.
func (a *App) scaleSelectedMass(factor float64) {
	if a.selected < 0 || a.selected >= len(a.sc.Bodies) {
		return
	}
	wasRunning := a.runner.Running()
	a.sc.Bodies[a.selected].Mass = scene.ClampMass(a.sc.Bodies[a.selected].Mass * factor)
	a.runner.Reset()
	if wasRunning {
		a.runner.Start()
	}
}

func (a *App) pickBody(mouse rl.Vector2) int {
	const pickRadius = 20.0 // screen pixels
	best := -1
	bestDist := float32(pickRadius * pickRadius)
	for _, b := range a.runner.Snapshot() {
		p := toScreen(b.Pos)
		dx := p.X - mouse.X
		dy := p.Y - mouse.Y
		if d := dx*dx + dy*dy; d < bestDist {
			bestDist = d
			best = b.ID
		}
	}
	return best
}

// toScreen maps world coordinates to screen pixels: origin centered,
// Y flipped.
func toScreen(p gravity.Vec2) rl.Vector2 {
	return rl.NewVector2(
		float32(screenWidth)/2+float32(p.X),
		float32(screenHeight)/2-float32(p.Y),
	)
}

func bodyColor(hex string) rl.Color {
	r, g, b := scene.ParseHexColor(hex)
	return rl.NewColor(r, g, b, 255)
}

// Run builds a preset scene for n bodies and opens the window.
func Run(n int, integName string) error {
	integ, err := integrators.New(integName)
	if err != nil {
		return err
	}
	New(scene.ByCount(n), integ).Run()
	return nil
}

func (a *App) statusLine() string {
	state := "running"
	if !a.runner.Running() {
		state = "paused"
	}
	return fmt.Sprintf("%s  t=%.1f  steps=%d  trail:%s", state, a.runner.Time(), a.runner.Steps(), a.trailMode)
}
