package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/kalder/gravlab/internal/viz"
)

func (a *App) drawTrails() {
	for _, b := range a.runner.Snapshot() {
		pts := a.runner.Trail(b.ID)
		if len(pts) < 2 {
			continue
		}
		col := bodyColor(b.Color)

		switch a.trailMode {
		case viz.TrailLine:
			faded := rl.ColorAlpha(col, 0.55)
			for i := 1; i < len(pts); i++ {
				rl.DrawLineV(toScreen(pts[i-1]), toScreen(pts[i]), faded)
			}
		default:
			start := len(pts) - fadeLen
			if start < 0 {
				start = 0
			}
			window := pts[start:]
			for i, p := range window {
				alpha := float32(i+1) / float32(len(window))
				rl.DrawCircleV(toScreen(p), 1.5, rl.ColorAlpha(col, alpha*0.7))
			}
		}
	}
}

func (a *App) drawBodies() {
	for _, b := range a.runner.Snapshot() {
		p := toScreen(b.Pos)
		rl.DrawCircleV(p, float32(b.Radius), bodyColor(b.Color))
		if b.ID == a.selected {
			rl.DrawCircleLines(int32(p.X), int32(p.Y), float32(b.Radius)+5, colSelect)
		}
	}
}

func (a *App) drawHUD() {
	rl.DrawText(a.statusLine(), 16, 14, 20, colText)
	rl.DrawText("space pause  n step  t trail  r reset  2/3 bodies  click select  j/k mass  q quit",
		16, screenHeight-30, 16, colTextDim)

	y := int32(44)
	for _, b := range a.runner.Snapshot() {
		col := colTextDim
		if b.ID == a.selected {
			col = colText
		}
		rl.DrawText(fmt.Sprintf("body %d  m=%.0f  p=(%.0f, %.0f)  v=(%.2f, %.2f)",
			b.ID, b.Mass, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y), 16, y, 16, col)
		y += 20
	}

	rl.DrawText(fmt.Sprintf("%d fps", rl.GetFPS()), screenWidth-80, 14, 16, colTextDim)
}
