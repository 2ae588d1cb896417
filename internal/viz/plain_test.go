package viz

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lloydlewis/gutflow/internal/body"
	"github.com/lloydlewis/gutflow/internal/engine"
	"github.com/lloydlewis/gutflow/internal/stage"
)

func newTestEngine() *engine.Engine {
	s := body.New(body.Environment{TemperatureC: 37.0, StressLevel: 2}, body.Conditions{GERD: true})
	s.Eat(body.Food{Name: "Pasta", Carbs: 70, Proteins: 20, Fats: 10, Fiber: 3})
	return engine.New(s, stage.Pipeline())
}

func TestRenderPlainContainsState(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	s := e.State()

	out := RenderPlain(e, 0)

	wants := []string{
		e.Current().Name,
		fmt.Sprintf("ghrelin=%.1f", s.Hormones.Ghrelin),
		fmt.Sprintf("gastrin=%.1f", s.Hormones.Gastrin),
		fmt.Sprintf("insulin=%.1f", s.Hormones.Insulin),
		fmt.Sprintf("good=%.1f%%", s.Microbiome.Good),
		fmt.Sprintf("temp=%.1fC", s.Env.TemperatureC),
		fmt.Sprintf("stress=%d", s.Env.StressLevel),
		"gerd",
		s.Food.Name,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("plain output missing %q\n%s", want, out)
		}
	}
}

func TestRenderPlainIdempotent(t *testing.T) {
	e := newTestEngine()
	e.Tick()

	before := e.State().Clone()
	first := RenderPlain(e, 3)
	second := RenderPlain(e, 3)

	if first != second {
		t.Error("same state should render identically")
	}
	if !reflect.DeepEqual(before, e.State().Clone()) {
		t.Error("render mutated the state")
	}
}

func TestRenderPlainAfterCompletion(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 500 && !e.Done(); i++ {
		e.Tick()
	}
	out := RenderPlain(e, 0)
	if !strings.Contains(out, "complete") {
		t.Errorf("expected completion notice, got:\n%s", out)
	}
}

func TestPlainRendererModes(t *testing.T) {
	e := newTestEngine()
	e.Tick()

	var seq bytes.Buffer
	r := NewPlainRenderer(&seq, false)
	r.Start()
	r.OnTick(e)
	r.OnTick(e)
	r.Stop()
	if strings.Contains(seq.String(), "\033") {
		t.Error("sequential mode must not emit ANSI sequences")
	}

	var ansi bytes.Buffer
	ra := NewPlainRenderer(&ansi, true)
	ra.Start()
	ra.OnTick(e)
	ra.Stop()
	got := ansi.String()
	if !strings.Contains(got, clearScreen) {
		t.Error("ansi mode should clear between frames")
	}
	if !strings.HasPrefix(got, hideCursor) || !strings.HasSuffix(got, showCursor) {
		t.Error("ansi mode should hide and restore the cursor")
	}
}

// The fallback must show the same values as the dashboard panels.
func TestPlainMatchesDashboardValues(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 8; i++ {
		e.Tick()
	}
	s := e.State()

	m := NewModel(e, 250*time.Millisecond, "clinic")
	dashboard := m.View()
	plain := RenderPlain(e, 0)

	shared := []string{
		fmt.Sprintf("%.1f / %.1f", s.Microbiome.Good, s.Microbiome.Bad),
		fmt.Sprintf("%.2f", s.Microbiome.GasProduction()),
		fmt.Sprintf("%.1f", s.Hormones.Gastrin),
		fmt.Sprintf("%.2f kcal", s.Energy),
		e.Current().Name,
	}
	for _, want := range shared {
		if !strings.Contains(dashboard, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
	for _, want := range []string{
		fmt.Sprintf("gastrin=%.1f", s.Hormones.Gastrin),
		fmt.Sprintf("%.2f kcal", s.Energy),
		e.Current().Name,
	} {
		if !strings.Contains(plain, want) {
			t.Errorf("plain view missing %q", want)
		}
	}
}
