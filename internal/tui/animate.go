// Package tui drives the animated oscillator view: a bubbletea program
// ticking at a fixed cadence, advancing the engine phase and regenerating
// the wave each frame. The engine owns the phase; this loop only schedules
// the advance, so quitting simply stops scheduling further ticks.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/qwave/internal/engine"
	"github.com/san-kum/qwave/internal/viz"
)

const (
	canvasWidth  = 80
	canvasHeight = 16
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	waveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	statLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Model struct {
	eng      *engine.Engine
	canvas   *viz.Canvas
	delta    float64
	interval time.Duration
	paused   bool
	frames   int
	showSq   bool
}

func NewModel(eng *engine.Engine, frameRate int, delta float64) Model {
	if frameRate <= 0 {
		frameRate = 60
	}
	eng.CalculateBesselLikeWave()
	return Model{
		eng:      eng,
		canvas:   viz.NewCanvas(canvasWidth, canvasHeight),
		delta:    delta,
		interval: time.Second / time.Duration(frameRate),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.paused {
			m.eng.AdvancePhase(m.delta)
			m.eng.CalculateBesselLikeWave()
			if m.showSq {
				m.eng.CalculateProbabilityDensity()
			}
			m.frames++
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "d":
			m.showSq = !m.showSq
			if m.showSq {
				m.eng.CalculateProbabilityDensity()
			}
		case "+", "=":
			m.delta *= 1.25
		case "-":
			m.delta /= 1.25
		}
	}
	return m, nil
}

func (m Model) View() string {
	wave := m.eng.Wave()
	peak := 200.0
	title := "bessel-like oscillator  psi(x)"
	if m.showSq {
		wave = m.eng.Density()
		peak = 200.0 * 200.0
		title = "bessel-like oscillator  |psi(x)|^2"
	}

	m.canvas.Clear()
	m.canvas.DrawWave(wave, peak)

	var b strings.Builder
	b.WriteString(headerStyle.Render(title) + "\n")
	b.WriteString(waveStyle.Render(m.canvas.String()))

	stats := fmt.Sprintf("%s %s   %s %s   %s %s",
		statLabel.Render("phase"), statValue.Render(fmt.Sprintf("%.2f", m.eng.Phase())),
		statLabel.Render("delta"), statValue.Render(fmt.Sprintf("%.3f", m.delta)),
		statLabel.Render("frames"), statValue.Render(fmt.Sprintf("%d", m.frames)),
	)
	if m.paused {
		stats += "   " + statLabel.Render("[paused]")
	}
	b.WriteString(stats)
	b.WriteString(helpStyle.Render("\nspace pause · d density · +/- speed · q quit"))

	return b.String()
}

// Run starts the animation and blocks until the user quits.
func Run(eng *engine.Engine, frameRate int, delta float64) error {
	p := tea.NewProgram(NewModel(eng, frameRate, delta))
	_, err := p.Run()
	return err
}
