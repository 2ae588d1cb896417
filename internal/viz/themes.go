package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the dashboard color scheme.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Good    lipgloss.Color
	Warn    lipgloss.Color
	Bad     lipgloss.Color
}

var (
	ThemeClinic = Theme{
		Name:    "clinic",
		Primary: lipgloss.Color("86"),
		Accent:  lipgloss.Color("205"),
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("245"),
		Good:    lipgloss.Color("#00ff88"),
		Warn:    lipgloss.Color("#ffcc00"),
		Bad:     lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Good:    lipgloss.Color("#88ff88"),
		Warn:    lipgloss.Color("#ffff00"),
		Bad:     lipgloss.Color("#ff0000"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"),
		Accent:  lipgloss.Color("#feca57"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Good:    lipgloss.Color("#5fd068"),
		Warn:    lipgloss.Color("#ffc048"),
		Bad:     lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{ThemeClinic, ThemeRetroGreen, ThemeSunset}
)

// GetTheme returns a theme by name, defaulting to clinic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClinic
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, cand := range Themes {
		if cand.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClinic
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
