// Package tui is the interactive terminal frontend: a body editor for
// initial conditions and a live braille viewport for the running
// simulation.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kalder/gravlab/internal/integrators"
	"github.com/kalder/gravlab/internal/scene"
	"github.com/kalder/gravlab/internal/sim"
	"github.com/kalder/gravlab/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// Editable fields per body, in display order.
var fieldNames = []string{"mass", "pos.x", "pos.y", "vel.x", "vel.y"}

// fadeLen is how many recent trail points the afterimage mode shows.
const fadeLen = 60

type state int

const (
	stateEdit state = iota
	stateSim
)

type model struct {
	runner *sim.Runner
	sc     *scene.Scene

	state       state
	bodyCursor  int
	fieldCursor int
	editing     bool
	editBuf     string

	trailMode viz.TrailMode
	speed     float64

	energyHist []float64
	lastFrame  time.Time
	fps        float64

	width  int
	height int
}

func newModel(sc *scene.Scene, integ integrators.Integrator) *model {
	return &model{
		runner:     sim.NewRunner(sc, integ),
		sc:         sc,
		speed:      1.0,
		energyHist: make([]float64, 0, 120),
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim {
			return m, nil
		}
		if m.runner.Running() {
			now := time.Now()
			if !m.lastFrame.IsZero() {
				if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
					m.fps = 1.0 / dt
				}
			}
			m.lastFrame = now

			steps := int(m.speed)
			if steps < 1 {
				steps = 1
			}
			for i := 0; i < steps; i++ {
				m.runner.Step()
			}

			m.energyHist = append(m.energyHist, m.runner.Energy())
			if len(m.energyHist) > 120 {
				m.energyHist = m.energyHist[1:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.state == stateEdit {
		return m.editKey(msg)
	}
	return m.simKey(msg)
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			// Commit only once the buffer parses; partial input like
			// "-" or "" leaves the previous value in place.
			if v, ok := scene.ParseNumber(m.editBuf); ok {
				m.setField(v)
			}
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(fieldNames)-1 {
			m.fieldCursor++
		}
	case "tab", "right", "l":
		m.bodyCursor = (m.bodyCursor + 1) % len(m.sc.Bodies)
	case "shift+tab", "left", "h":
		m.bodyCursor = (m.bodyCursor + len(m.sc.Bodies) - 1) % len(m.sc.Bodies)
	case "enter", " ":
		m.editing = true
		m.editBuf = trimFloat(m.fieldValue(m.bodyCursor, m.fieldCursor))
	case "b":
		m.toggleBodyCount()
	case "t":
		m.trailMode = m.trailMode.Toggle()
	case "s":
		m.runner.Reset()
		m.runner.Start()
		m.energyHist = m.energyHist[:0]
		m.lastFrame = time.Time{}
		m.state = stateSim
		return m, tea.Batch(tea.ClearScreen, tick())
	}
	return m, nil
}

func (m model) simKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "p":
		m.runner.Toggle()
		m.lastFrame = time.Time{}
	case "t":
		m.trailMode = m.trailMode.Toggle()
	case "r":
		m.runner.Reset()
		m.runner.Start()
		m.energyHist = m.energyHist[:0]
	case "b":
		m.toggleBodyCount()
		m.runner.Start()
	case "e", "escape":
		m.runner.Pause()
		m.state = stateEdit
		return m, tea.ClearScreen
	case "+", "=":
		m.speed = math.Min(m.speed*2, 16)
	case "-", "_":
		m.speed = math.Max(m.speed/2, 0.25)
	case "0":
		m.speed = 1.0
	}
	return m, nil
}

// toggleBodyCount swaps the whole body set for the other preset, per
// the body-count control.
func (m *model) toggleBodyCount() {
	n := 3
	if len(m.sc.Bodies) == 3 {
		n = 2
	}
	m.sc = scene.ByCount(n)
	m.runner.SetScene(m.sc)
	m.energyHist = m.energyHist[:0]
	if m.bodyCursor >= len(m.sc.Bodies) {
		m.bodyCursor = 0
	}
}

func (m *model) setField(v float64) {
	b := &m.sc.Bodies[m.bodyCursor]
	switch fieldNames[m.fieldCursor] {
	case "mass":
		b.Mass = scene.ClampMass(v)
	case "pos.x":
		b.Pos[0] = v
	case "pos.y":
		b.Pos[1] = v
	case "vel.x":
		b.Vel[0] = v
	default:
		b.Vel[1] = v
	}
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func (m model) View() string {
	if m.state == stateEdit {
		return m.viewEdit()
	}
	return m.viewSim()
}

func (m model) viewEdit() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("g r a v l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	b.WriteString("      " + dim.Render(fmt.Sprintf("scene %s   %d bodies", m.sc.Name, len(m.sc.Bodies))) + "\n\n")

	for bi := range m.sc.Bodies {
		swatch := bodyStyle(m.sc.Bodies[bi].Color).Render("●")
		label := fmt.Sprintf("body %d", bi)
		if bi == m.bodyCursor {
			b.WriteString("      " + swatch + " " + white.Render(label) + "\n")
		} else {
			b.WriteString("      " + swatch + " " + dim.Render(label) + "\n")
			continue
		}

		for fi, name := range fieldNames {
			val := fmt.Sprintf("%10.3f", m.fieldValue(bi, fi))
			if m.editing && fi == m.fieldCursor {
				val = fmt.Sprintf("%10s", m.editBuf+"▋")
			}
			if fi == m.fieldCursor {
				b.WriteString("        " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-8s", name)) + magenta.Render(val) + "\n")
			} else {
				b.WriteString("          " + dim.Render(fmt.Sprintf("%-8s", name)) + dim.Render(val) + "\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ field  ←→ body  enter edit  b bodies  t trail  s start  q quit") + "\n")

	return b.String()
}

func (m model) fieldValue(bodyIdx, fieldIdx int) float64 {
	b := m.sc.Bodies[bodyIdx]
	switch fieldNames[fieldIdx] {
	case "mass":
		return b.Mass
	case "pos.x":
		return b.Pos[0]
	case "pos.y":
		return b.Pos[1]
	case "vel.x":
		return b.Vel[0]
	default:
		return b.Vel[1]
	}
}

func (m model) viewSim() string {
	cw := m.width - 6
	ch := m.height - 12
	if cw < 50 {
		cw = 50
	}
	if ch < 10 {
		ch = 10
	}

	canvas := viz.NewCanvas(cw, ch)
	// Fit roughly ±300 world units across the canvas width.
	scale := float64(canvas.PixelWidth()) / 600.0

	bodies := m.runner.Snapshot()
	for _, body := range bodies {
		pts := m.runner.Trail(body.ID)
		switch m.trailMode {
		case viz.TrailLine:
			for i := 1; i < len(pts); i++ {
				canvas.DrawWorldLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, scale)
			}
		default:
			start := len(pts) - fadeLen
			if start < 0 {
				start = 0
			}
			for _, p := range pts[start:] {
				canvas.SetWorld(p.X, p.Y, scale)
			}
		}
	}
	for _, body := range bodies {
		canvas.FillWorldCircle(body.Pos.X, body.Pos.Y, body.Radius, scale)
	}

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if !m.runner.Running() {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n",
		statusIcon, cyan.Render(m.sc.Name), statusText,
		dim.Render(fmt.Sprintf("t=%.1f  steps=%d  %.0ffps  ×%.2g  trail:%s",
			m.runner.Time(), m.runner.Steps(), m.fps, m.speed, m.trailMode))))

	b.WriteString("\n")
	for _, row := range canvas.Grid {
		b.WriteString("   " + string(row) + "\n")
	}

	var stats strings.Builder
	stats.WriteString("   ")
	for _, body := range bodies {
		stats.WriteString(bodyStyle(body.Color).Render("●"))
		stats.WriteString(dim.Render(fmt.Sprintf(" m=%.0f p=(%.0f,%.0f) v=(%.1f,%.1f)  ",
			body.Mass, body.Pos.X, body.Pos.Y, body.Vel.X, body.Vel.Y)))
	}
	b.WriteString(stats.String() + "\n")

	if len(m.energyHist) > 1 {
		w := cw - 10
		if w > 60 {
			w = 60
		}
		plot := asciigraph.Plot(m.energyHist,
			asciigraph.Height(3),
			asciigraph.Width(w),
			asciigraph.Precision(1))
		b.WriteString("\n" + dim.Render("   energy") + "\n")
		for _, line := range strings.Split(plot, "\n") {
			b.WriteString("   " + dimmer.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + dim.Render("   space pause  t trail  r reset  b bodies  ±speed  e edit  q quit") + "\n")

	return b.String()
}

func bodyStyle(hex string) lipgloss.Style {
	if len(hex) == 7 && hex[0] == '#' {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return white
}

// RunInteractive launches the TUI on the given scene.
func RunInteractive(sc *scene.Scene, integ integrators.Integrator) error {
	p := tea.NewProgram(newModel(sc, integ), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
