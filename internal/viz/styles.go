package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orrery/internal/catalog"
)

var (
	canvasStyle   = lipgloss.NewStyle().Padding(1, 2)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(48)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	runningStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	pausedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	unselectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
)

// bodyStyle renders a body name in its display colour.
func bodyStyle(name string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if d, ok := catalog.Lookup(name); ok && d.Color != "" {
		s = s.Foreground(lipgloss.Color(d.Color))
	}
	return s
}
