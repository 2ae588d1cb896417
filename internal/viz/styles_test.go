package viz

import (
	"strings"
	"testing"
)

func TestProgressBarFill(t *testing.T) {
	s := NewStyles(ThemeClinic)

	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{0.5, 10},
		{1, 20},
		{1.7, 20}, // over-range input stays bounded
		{-0.3, 0},
	}

	for _, tt := range tests {
		bar := s.ProgressBar(tt.percent, 20)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("percent %.1f: expected %d filled cells, got %d", tt.percent, tt.filled, got)
		}
	}
}

func TestLevelBarClampsDisplay(t *testing.T) {
	s := NewStyles(ThemeClinic)
	over := s.LevelBar("x", 250, 10)
	if strings.Count(over, "=") != 10 {
		t.Error("over-range level should render a full bar")
	}
	under := s.LevelBar("x", -5, 10)
	if strings.Contains(under, "=") {
		t.Error("under-range level should render an empty bar")
	}
}

func TestSpinnerCycles(t *testing.T) {
	if Spinner(0) != Spinner(10) {
		t.Error("spinner should cycle with period 10")
	}
	if Spinner(0) == Spinner(1) {
		t.Error("adjacent frames should differ")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "clinic" {
		t.Error("unknown theme should fall back to clinic")
	}
	seen := map[string]bool{}
	cur := ThemeClinic
	for range Themes {
		seen[cur.Name] = true
		cur = NextTheme(cur)
	}
	if len(seen) != len(Themes) {
		t.Errorf("theme cycle did not visit every theme: %v", seen)
	}
	if cur.Name != ThemeClinic.Name {
		t.Error("theme cycle should wrap around")
	}
}
