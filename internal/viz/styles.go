package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles bundles the lipgloss styles derived from a theme.
type Styles struct {
	Header    lipgloss.Style
	Status    lipgloss.Style
	Paused    lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Accent    lipgloss.Style
	Panel     lipgloss.Style
	SidePanel lipgloss.Style
	Graph     lipgloss.Style
	Help      lipgloss.Style
	Good      lipgloss.Style
	Warn      lipgloss.Style
	Bad       lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		Status:    lipgloss.NewStyle().Foreground(t.Good).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(t.Warn).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(t.Muted).Width(16),
		Value:     lipgloss.NewStyle().Foreground(t.Text),
		Accent:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Panel:     lipgloss.NewStyle().Padding(1, 2),
		SidePanel: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(46),
		Graph:     lipgloss.NewStyle().Foreground(t.Primary).Padding(1, 0),
		Help:      lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		Good:      lipgloss.NewStyle().Foreground(t.Good),
		Warn:      lipgloss.NewStyle().Foreground(t.Warn),
		Bad:       lipgloss.NewStyle().Foreground(t.Bad),
	}
}

// Spinner returns one frame of the braille spinner.
func Spinner(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return frames[frame%len(frames)]
}

// ProgressBar renders a colored bar for percent in [0,1].
func (s Styles) ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case percent > 0.8:
		return s.Good.Render(bar)
	case percent > 0.4:
		return s.Warn.Render(bar)
	default:
		return s.Bad.Render(bar)
	}
}

// LevelBar renders a labeled 0-100 level as a compact bar plus value.
func (s Styles) LevelBar(label string, value float64, width int) string {
	ratio := value / 100.0
	if ratio > 1 {
		ratio = 1
	} else if ratio < 0 {
		ratio = 0
	}
	filled := int(ratio * float64(width))
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
	return s.Label.Render(label) + s.Value.Render(fmt.Sprintf("%s %5.1f", bar, value))
}
