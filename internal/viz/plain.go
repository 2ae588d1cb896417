package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/lloydlewis/gutflow/internal/engine"
)

// ANSI sequences for the line-based fallback view.
const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var plainSpinner = []string{"|", "/", "-", "\\"}

// RenderPlain returns a sequential text dump of the same information
// the dashboard panels show. It never mutates the engine state.
func RenderPlain(e *engine.Engine, frame int) string {
	s := e.State()
	var b strings.Builder

	stageName := "complete"
	stageDesc := "Digestion complete"
	if cur := e.Current(); cur != nil {
		stageName = cur.Name
		stageDesc = cur.Desc
	}

	fmt.Fprintf(&b, "Stage: %s %s\n", stageName, plainSpinner[frame%len(plainSpinner)])
	fmt.Fprintf(&b, "  %s\n", stageDesc)
	fmt.Fprintf(&b, "Progress: %.0f%% (tick %d/%d, total %d)\n",
		e.Progress()*100, e.StageTicks(), e.StageDuration(), e.TotalTicks())
	if e.Paused() {
		b.WriteString("Status: paused\n")
	}
	fmt.Fprintf(&b, "Env: temp=%.1fC stress=%d/10\n", s.Env.TemperatureC, s.Env.StressLevel)
	cond := strings.Join(s.Cond.Active(), ", ")
	if cond == "" {
		cond = "none"
	}
	fmt.Fprintf(&b, "Conditions: %s\n", cond)
	fmt.Fprintf(&b, "Hormones: ghrelin=%.1f gastrin=%.1f insulin=%.1f leptin=%.1f parasympathetic=%.1f\n",
		s.Hormones.Ghrelin, s.Hormones.Gastrin, s.Hormones.Insulin,
		s.Hormones.Leptin, s.Hormones.Parasympathetic)
	fmt.Fprintf(&b, "Energy: %.2f kcal  Discomfort: %.1f  Hunger: %d/10\n",
		s.Energy, s.Discomfort, s.Hunger)
	fmt.Fprintf(&b, "Microbiome: good=%.1f%% bad=%.1f%% fiber=%.1fg gas=%.2f",
		s.Microbiome.Good, s.Microbiome.Bad, s.Microbiome.FiberIntake,
		s.Microbiome.GasProduction())
	if s.Microbiome.Antibiotic {
		b.WriteString(" [antibiotic]")
	}
	b.WriteString("\n")
	if s.Food != nil {
		fmt.Fprintf(&b, "Food: %s carbs=%.1f proteins=%.1f fats=%.1f fiber=%.1f\n",
			s.Food.Name, s.Food.Carbs, s.Food.Proteins, s.Food.Fats, s.Food.Fiber)
	}
	if s.Metabolism != nil {
		m := s.Metabolism
		fmt.Fprintf(&b, "Metabolism: glycogen=%.1f fat=%.1f protein=%.1f added=%.1f\n",
			m.Glycogen, m.FatStorage, m.ProteinUse, m.EnergyAdded)
	}
	return b.String()
}

// PlainRenderer is the fallback presentation adapter: an engine
// observer that writes the line-based view after every tick. With ANSI
// enabled it redraws in place; otherwise frames append sequentially,
// which suits non-interactive terminals and logs.
type PlainRenderer struct {
	w     io.Writer
	ansi  bool
	frame int
}

func NewPlainRenderer(w io.Writer, ansi bool) *PlainRenderer {
	return &PlainRenderer{w: w, ansi: ansi}
}

func (r *PlainRenderer) Start() {
	if r.ansi {
		fmt.Fprint(r.w, hideCursor)
	}
}

// Stop restores the cursor; must run before process exit when Start
// hid it.
func (r *PlainRenderer) Stop() {
	if r.ansi {
		fmt.Fprint(r.w, showCursor)
	}
}

func (r *PlainRenderer) OnTick(e *engine.Engine) {
	if r.ansi {
		fmt.Fprint(r.w, clearScreen)
	}
	fmt.Fprintln(r.w, RenderPlain(e, r.frame))
	r.frame++
}
