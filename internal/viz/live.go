package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/present"
	"github.com/san-kum/orrery/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 240
	ellipseSamples  = 72
)

type TickMsg time.Time

// Model is the live terminal view. The simulator is stepped only from
// Update, so the view never races the frame loop.
type Model struct {
	sim      *sim.Simulator
	state    *sim.State
	fps      int
	offset   Vec3
	canvas   *Canvas
	camera   *Camera
	running  bool
	selected int
	history  [][]float64
	err      error
}

func NewModel(s *sim.Simulator, fps int, offset present.Vec3) Model {
	if fps <= 0 {
		fps = 60
	}
	state := s.Snapshot()

	extent := 1.0
	for _, a := range state.MajorRadii {
		extent = math.Max(extent, a)
	}

	m := Model{
		sim:     s,
		state:   state,
		fps:     fps,
		offset:  Vec3{offset.X, offset.Y, offset.Z},
		canvas:  NewCanvas(width, height),
		camera:  NewCamera(extent),
		running: true,
		history: make([][]float64, len(state.Positions)),
	}
	m.record()
	return m
}

// Run starts the live view and blocks until the user quits.
func Run(s *sim.Simulator, fps int, offset present.Vec3) error {
	final, err := tea.NewProgram(NewModel(s, fps, offset), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "tab":
			m.selected = (m.selected + 1) % len(m.state.Bodies)
		case "shift+tab":
			m.selected = (m.selected - 1 + len(m.state.Bodies)) % len(m.state.Bodies)
		case "r":
			m.reset()
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case TickMsg:
		if m.running {
			if err := m.sim.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.state = m.sim.Snapshot()
			m.record()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) record() {
	for i, p := range m.state.Positions {
		h := append(m.history[i], p.X)
		if len(h) > historyCapacity {
			h = h[len(h)-historyCapacity:]
		}
		m.history[i] = h
	}
}

func (m *Model) reset() {
	m.sim.Reset()
	m.state = m.sim.Snapshot()
	for i := range m.history {
		m.history[i] = m.history[i][:0]
	}
	m.record()
}

// Selected returns the highlighted body.
func (m Model) Selected() catalog.Body { return m.state.Bodies[m.selected] }

func (m Model) Frame() int { return m.state.Frame }

func (m Model) Running() bool { return m.running }

func (m *Model) draw() {
	m.canvas.Clear()
	sw, sh := m.canvas.SubSize()
	k := m.camera.Scale(sw, sh)

	for _, a := range m.state.MajorRadii {
		m.drawOrbit(a, sw, sh)
	}

	central := m.state.Bodies[0]
	if x, y, ok := m.camera.Project(m.offset, sw, sh); ok {
		m.canvas.DrawDisc(x, y, int(central.DisplayRadius*k))
	}

	for i, body := range m.state.Orbiting() {
		p := m.state.Positions[i]
		if x, y, ok := m.camera.Project(Vec3{X: p.X, Z: p.Z}, sw, sh); ok {
			m.canvas.DrawDisc(x, y, int(math.Max(1, body.DisplayRadius*k)))
		}
	}
}

// drawOrbit traces both halves of the ellipse by sampling x.
func (m *Model) drawOrbit(a float64, sw, sh int) {
	for _, negative := range []bool{false, true} {
		px, py, started := 0, 0, false
		for s := 0; s <= ellipseSamples; s++ {
			x := -a + 2*a*float64(s)/ellipseSamples
			z := orbit.ZFromX(x, a, negative)
			sx, sy, _ := m.camera.Project(Vec3{X: x, Z: z}, sw, sh)
			if started {
				m.canvas.DrawLine(px, py, sx, sy)
			}
			px, py, started = sx, sy, true
		}
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORRERY") + "\n")
	if m.running {
		s.WriteString(runningStyle.Render("RUNNING"))
	} else {
		s.WriteString(pausedStyle.Render("PAUSED"))
	}
	s.WriteString("\n\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.state.Frame)) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.2fx", m.camera.Zoom)) + "\n\n")

	names := make([]string, len(m.state.Bodies))
	for i, b := range m.state.Bodies {
		if i == m.selected {
			names[i] = bodyStyle(b.Name).Render(b.Name)
		} else {
			names[i] = unselectStyle.Render(b.Name)
		}
	}
	s.WriteString(strings.Join(names, " ") + "\n\n")

	if i := m.selected - 1; i >= 0 && i < len(m.history) && len(m.history[i]) > 1 {
		chart := asciigraph.Plot(m.history[i], asciigraph.Height(4), asciigraph.Width(36), asciigraph.Caption("x"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	for _, row := range present.PropertyTable(m.Selected()) {
		s.WriteString(labelStyle.Render(row.Label) + valueStyle.Render(row.Text()) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause Tab:Body R:Reset\n+/-:Zoom  Q:Quit"))
	panelView := panelStyle.Render(s.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelView)
}
