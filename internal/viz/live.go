// Package viz renders a neutral trajectory interactively in the
// terminal: a cross-section of the casts with the seafloor, stepped
// cast by cast as connections are made.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okean-lab/ntraj/internal/ntp"
	"github.com/okean-lab/ntraj/internal/ocean"
)

const (
	canvasWidth  = 72
	canvasHeight = 22
)

type TickMsg time.Time

// Model steps a trajectory across a section one cast per tick.
type Model struct {
	casts []ocean.Cast
	opt   ntp.Options
	tr    ocean.Trajectory

	next    int // index of the next cast to connect
	broken  bool
	running bool

	maxP float64
}

// NewModel prepares the viewer. The trajectory is seeded on the first
// cast at p0; connections happen live, one per animation tick.
func NewModel(casts []ocean.Cast, p0 float64, opt ntp.Options) Model {
	tr := make(ocean.Trajectory, len(casts))
	for i := range tr {
		tr[i] = ocean.MissingBottle()
	}

	maxP := 0.0
	for _, c := range casts {
		if b := c.Bottom(); !math.IsNaN(b) && b > maxP {
			maxP = b
		}
	}

	m := Model{
		casts:   casts,
		opt:     opt,
		tr:      tr,
		next:    1,
		running: true,
		maxP:    maxP,
	}

	if len(casts) > 0 {
		seed := ntp.Trajectory(casts[:1], p0, opt)
		m.tr[0] = seed[0]
		if !m.tr[0].Valid() {
			m.broken = true
			m.running = false
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			if m.running {
				return m, tick()
			}
			return m, nil
		case "n":
			m.step()
			return m, nil
		}
	case TickMsg:
		if !m.running {
			return m, nil
		}
		m.step()
		if m.done() {
			m.running = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	if m.done() {
		return
	}
	b := ntp.BottleToCast(m.tr[m.next-1], m.casts[m.next], m.opt)
	m.tr[m.next] = b
	if !b.Valid() {
		m.broken = true
	}
	m.next++
}

func (m Model) done() bool {
	return m.broken || m.next >= len(m.casts)
}

func (m Model) View() string {
	canvas := m.renderSection()
	stats := m.renderStats()
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(canvas), statsStyle.Render(stats))
	help := helpStyle.Render("space pause/resume · n step · q quit")
	return body + "\n" + help
}

func (m Model) renderSection() string {
	grid := make([][]rune, canvasHeight)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", canvasWidth))
	}

	colOf := func(cast int) int {
		if len(m.casts) <= 1 {
			return 0
		}
		return cast * (canvasWidth - 1) / (len(m.casts) - 1)
	}
	rowOf := func(p float64) int {
		if m.maxP == 0 {
			return 0
		}
		r := int(p / m.maxP * float64(canvasHeight-1))
		if r < 0 {
			r = 0
		}
		if r >= canvasHeight {
			r = canvasHeight - 1
		}
		return r
	}

	// Seafloor.
	for j, c := range m.casts {
		bottom := c.Bottom()
		x := colOf(j)
		if math.IsNaN(bottom) {
			grid[0][x] = '≬'
			continue
		}
		for y := rowOf(bottom) + 1; y < canvasHeight; y++ {
			grid[y][x] = '░'
		}
	}

	// Trajectory.
	for j, b := range m.tr {
		if !b.Valid() {
			continue
		}
		grid[rowOf(b.P)][colOf(j)] = '●'
	}

	var sb strings.Builder
	for y, row := range grid {
		line := string(row)
		line = strings.ReplaceAll(line, "░", floorStyle.Render("░"))
		line = strings.ReplaceAll(line, "●", pathStyle.Render("●"))
		sb.WriteString(line)
		if y < canvasHeight-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m Model) renderStats() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("neutral trajectory"))
	sb.WriteByte('\n')

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(valueStyle.Render(value))
		sb.WriteByte('\n')
	}

	connected := m.tr.NConnected()
	row("casts", fmt.Sprintf("%d / %d", connected, len(m.casts)))

	if connected > 0 {
		last := m.tr[connected-1]
		row("pressure", fmt.Sprintf("%.2f", last.P))
		row("salinity", fmt.Sprintf("%.4f", last.S))
		row("temp", fmt.Sprintf("%.4f", last.T))
	}

	sb.WriteByte('\n')
	switch {
	case m.broken:
		sb.WriteString(brokenStyle.Render("chain broken (incrop/outcrop)"))
	case m.done():
		sb.WriteString(valueStyle.Render("complete"))
	case m.running:
		sb.WriteString(valueStyle.Render("running"))
	default:
		sb.WriteString(valueStyle.Render("paused"))
	}
	return sb.String()
}

// Run starts the viewer and blocks until it exits.
func Run(casts []ocean.Cast, p0 float64, opt ntp.Options) error {
	p := tea.NewProgram(NewModel(casts, p0, opt))
	_, err := p.Run()
	return err
}
