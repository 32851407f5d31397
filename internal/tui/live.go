// Package tui renders a propagation run live in the terminal.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/propagate"
	"github.com/ahertz/qwave/internal/qm"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	name   string
	g      *grid.Grid
	cn     *propagate.CrankNicolson
	psi    qm.Wavefunction
	simT   float64
	steps  int // steps per frame
	paused bool
	failed error
	width  int
	height int
}

// NewLive builds a live view that steps the given state under cn.
func NewLive(name string, g *grid.Grid, cn *propagate.CrankNicolson, psi0 qm.Wavefunction) *model {
	return &model{
		name:   name,
		g:      g,
		cn:     cn,
		psi:    psi0.Clone(),
		steps:  4,
		width:  80,
		height: 24,
	}
}

func (m *model) Init() tea.Cmd { return tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "+", "=":
			if m.steps < 64 {
				m.steps *= 2
			}
		case "-":
			if m.steps > 1 {
				m.steps /= 2
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.failed != nil {
			return m, nil
		}
		if !m.paused {
			for i := 0; i < m.steps; i++ {
				if err := m.cn.Step(m.psi, m.psi); err != nil {
					m.failed = err
					break
				}
				m.simT += m.cn.Dt()
			}
			if m.failed == nil && !m.psi.IsValid() {
				m.failed = fmt.Errorf("state diverged (NaN/Inf) at t=%.4f", m.simT)
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) View() string {
	header := cyan.Render(fmt.Sprintf(" %s ", m.name)) +
		white.Render(fmt.Sprintf(" t=%.3f ", m.simT)) +
		dim.Render(fmt.Sprintf(" %d steps/frame ", m.steps))

	if m.failed != nil {
		return header + "\n\n" + yellow.Render("  propagation failed: "+m.failed.Error()) +
			"\n\n" + dim.Render("  q: quit")
	}

	plotW := m.width - 12
	if plotW < 20 {
		plotW = 20
	}
	plotH := m.height - 8
	if plotH < 6 {
		plotH = 6
	}
	if plotH > 20 {
		plotH = 20
	}

	density := downsample(m.psi.Density(), plotW)
	graph := asciigraph.Plot(density,
		asciigraph.Height(plotH),
		asciigraph.Width(plotW),
		asciigraph.Caption(fmt.Sprintf("|psi|^2 over [%.1f, %.1f]", m.g.Min, m.g.Max)),
	)

	footer := green.Render(fmt.Sprintf("  norm=%.6f", m.psi.Norm(m.g.Dx))) +
		dim.Render("   space: pause  +/-: speed  q: quit")
	state := ""
	if m.paused {
		state = yellow.Render("  [paused]")
	}

	return header + state + "\n\n" + graph + "\n\n" + footer + "\n"
}

func downsample(data []float64, width int) []float64 {
	if len(data) <= width {
		return data
	}
	out := make([]float64, width)
	for i := range out {
		// Keep the bucket maximum so narrow peaks survive.
		lo := i * len(data) / width
		hi := (i + 1) * len(data) / width
		if hi <= lo {
			hi = lo + 1
		}
		max := data[lo]
		for j := lo + 1; j < hi && j < len(data); j++ {
			if data[j] > max {
				max = data[j]
			}
		}
		out[i] = max
	}
	return out
}

// Run starts the live view and blocks until the user quits.
func Run(name string, g *grid.Grid, cn *propagate.CrankNicolson, psi0 qm.Wavefunction) error {
	p := tea.NewProgram(NewLive(name, g, cn, psi0), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
