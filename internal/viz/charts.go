package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/lloydlewis/gutflow/internal/engine"
)

// SummaryCharts plots the recorded series of a finished run.
func SummaryCharts(rec *engine.Recorder) string {
	if rec.Len() < 2 {
		return "not enough samples to chart"
	}

	series := []struct {
		name string
		data []float64
	}{
		{"energy (kcal)", rec.Energy},
		{"insulin", rec.Insulin},
		{"gastrin", rec.Gastrin},
		{"ghrelin", rec.Ghrelin},
		{"good bacteria %", rec.GoodBacteria},
	}

	var b strings.Builder
	for _, s := range series {
		chart := asciigraph.Plot(s.data,
			asciigraph.Height(8), asciigraph.Width(70), asciigraph.Caption(s.name))
		b.WriteString(chart)
		b.WriteString("\n\n")
	}
	return b.String()
}
