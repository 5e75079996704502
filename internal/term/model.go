// Package term is a terminal host for the session: every character cell of
// the terminal is one pixel of the display.
package term

import (
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lucasb-eyer/go-colorful"

	"mad-life/internal/core"
	"mad-life/internal/input"
	"mad-life/internal/render"
	"mad-life/internal/session"
)

const (
	liveGlyph   = "█"
	deadGlyph   = " "
	chartHeight = 5
	helpText    = "space run/pause · n step · c clear · r reseed · f alt screen · h chart · esc quit"
)

// Options configures the terminal host.
type Options struct {
	// Interval is the delay between frames.
	Interval time.Duration
	// LogFile receives log output while the program runs; empty discards it.
	LogFile string
}

type tickMsg time.Time

// Model is the bubbletea model driving a session.
type Model struct {
	state    *session.State
	raster   *render.Raster
	pointer  pointer
	interval time.Duration

	width, height int
	gridHeight    int
	showChart     bool
	altScreen     bool

	live   lipgloss.Style
	dead   lipgloss.Style
	status lipgloss.Style
	chart  lipgloss.Style
}

// NewModel builds a model for the provided state.
func NewModel(state *session.State, opts Options) *Model {
	interval := opts.Interval
	if interval <= 0 {
		interval = 30 * time.Millisecond
	}
	bg := lipgloss.Color(hex(state.Background))
	fg := lipgloss.Color(hex(state.Foreground))
	return &Model{
		state:     state,
		raster:    render.NewRaster(core.Rect{}),
		interval:  interval,
		showChart: true,
		altScreen: true,
		live:      lipgloss.NewStyle().Foreground(fg).Background(bg),
		dead:      lipgloss.NewStyle().Background(bg),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dcdce6")).
			Background(lipgloss.Color("#101014")),
		chart: lipgloss.NewStyle().Foreground(fg),
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the frame clock.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		m.state.Update()
		return m, m.tick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.apply(input.Quit{})
		}
		if k, ok := keyOf(msg); ok {
			return m, m.apply(input.KeyPress{Key: k})
		}
	case tea.MouseMsg:
		var cmds []tea.Cmd
		for _, ev := range m.pointer.events(msg, m.inGrid) {
			if cmd := m.apply(ev); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m *Model) apply(ev input.Event) tea.Cmd {
	switch m.state.Apply(ev) {
	case session.ActionQuit:
		return tea.Quit
	case session.ActionToggleFullscreen:
		m.altScreen = !m.altScreen
		if m.altScreen {
			return tea.EnterAltScreen
		}
		return tea.ExitAltScreen
	case session.ActionToggleHUD:
		m.showChart = !m.showChart
	}
	return nil
}

func (m *Model) inGrid(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.gridHeight
}

// View renders the grid, the status bar and the optional population chart.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var footer []string
	if m.showChart {
		if c := m.renderChart(); c != "" {
			footer = append(footer, c)
		}
	}
	footer = append(footer, m.renderStatus())
	bottom := strings.Join(footer, "\n")

	m.gridHeight = m.height - lipgloss.Height(bottom)
	if m.gridHeight < 0 {
		m.gridHeight = 0
	}
	if m.gridHeight == 0 {
		return bottom
	}
	return m.renderGrid() + "\n" + bottom
}

func (m *Model) renderGrid() string {
	v := m.state.View
	render.Rasterize(m.raster, v, m.state.Cells, m.width, m.gridHeight)

	var b strings.Builder
	var run strings.Builder
	for y := 0; y < m.gridHeight; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		runAlive := false
		run.Reset()
		for x := 0; x < m.width; x++ {
			alive := m.raster.At(v.CellAt(x, y)) != 0
			if x > 0 && alive != runAlive {
				b.WriteString(m.styleFor(runAlive).Render(run.String()))
				run.Reset()
			}
			runAlive = alive
			if alive {
				run.WriteString(liveGlyph)
			} else {
				run.WriteString(deadGlyph)
			}
		}
		b.WriteString(m.styleFor(runAlive).Render(run.String()))
	}
	return b.String()
}

func (m *Model) styleFor(alive bool) lipgloss.Style {
	if alive {
		return m.live
	}
	return m.dead
}

func (m *Model) renderStatus() string {
	line := m.state.Snapshot().Inline("  ") + "  │  " + helpText
	return m.status.Width(m.width).MaxHeight(1).Render(line)
}

func (m *Model) renderChart() string {
	data := m.state.History()
	if len(data) == 0 {
		return ""
	}
	width := m.width - 12
	if width < 8 {
		return ""
	}
	plot := asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(width),
		asciigraph.Caption("population"),
	)
	return m.chart.Render(plot)
}

// hex formats an opaque colour as #rrggbb for lipgloss.
func hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	return cf.Hex()
}
