package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lloydlewis/gutflow/internal/body"
	"github.com/lloydlewis/gutflow/internal/stage"
)

// Engine sequences the state through the stage list. It is the only
// writer of the body.State it owns; renderers read and never mutate.
type Engine struct {
	state  *body.State
	stages []stage.Stage

	idx      int
	ticksIn  int
	duration int
	entered  bool

	paused     bool
	done       bool
	totalTicks int
}

func New(st *body.State, stages []stage.Stage) *Engine {
	return &Engine{state: st, stages: stages}
}

func (e *Engine) State() *body.State { return e.state }
func (e *Engine) Paused() bool       { return e.paused }
func (e *Engine) Done() bool         { return e.done }
func (e *Engine) TotalTicks() int    { return e.totalTicks }
func (e *Engine) StageTicks() int    { return e.ticksIn }
func (e *Engine) StageIndex() int    { return e.idx }
func (e *Engine) StageCount() int    { return len(e.stages) }

// Stages exposes the static stage list for display. Callers must not
// mutate it.
func (e *Engine) Stages() []stage.Stage { return e.stages }

// Current returns the active stage, or nil once the pipeline finished.
func (e *Engine) Current() *stage.Stage {
	if e.done {
		return nil
	}
	return &e.stages[e.idx]
}

// StageDuration is the effective tick count of the active stage. Before
// the stage has been entered it reports the base duration.
func (e *Engine) StageDuration() int {
	if e.done {
		return 0
	}
	if !e.entered {
		return e.stages[e.idx].Ticks
	}
	return e.duration
}

// Progress is the elapsed fraction of the active stage in [0,1].
func (e *Engine) Progress() float64 {
	if e.done {
		return 1
	}
	d := e.StageDuration()
	if d <= 0 {
		return 1
	}
	f := float64(e.ticksIn) / float64(d)
	if f > 1 {
		f = 1
	}
	return f
}

// Tick advances the simulation by one step. While paused (or after the
// pipeline finishes) it mutates nothing.
func (e *Engine) Tick() {
	if e.paused || e.done {
		return
	}
	st := &e.stages[e.idx]
	if !e.entered {
		for _, d := range st.Enter {
			stage.Apply(e.state, d)
		}
		e.duration = st.Ticks
		if st.Duration != nil {
			e.duration = st.Duration(e.state, st.Ticks)
		}
		e.ticksIn = 0
		e.entered = true
	}
	for _, d := range st.Active {
		stage.Apply(e.state, d)
	}
	if e.state.Food != nil {
		e.state.Microbiome.FiberIntake = e.state.Food.Fiber
	} else {
		e.state.Microbiome.FiberIntake = 0
	}
	e.state.Microbiome.Tick()
	e.state.RelaxInsulin()
	e.ticksIn++
	e.totalTicks++
	if e.ticksIn >= e.duration {
		e.completeStage()
	}
}

func (e *Engine) completeStage() {
	st := &e.stages[e.idx]
	if st.Exit != nil {
		st.Exit(e.state)
	}
	e.idx++
	e.ticksIn = 0
	e.entered = false
	if e.idx >= len(e.stages) {
		e.done = true
	}
}

// Skip marks the active stage complete and advances exactly one stage,
// running its exit hook so downstream stages see consistent food state.
func (e *Engine) Skip() {
	if e.done {
		return
	}
	e.completeStage()
}

// Run drives the engine to completion on a fixed tick interval,
// fanning each tick out to the observers. The per-tick sleep is the
// only suspension point; ctx cancellation stops the loop.
func (e *Engine) Run(ctx context.Context, interval time.Duration, observers ...Observer) error {
	return e.RunWithSignals(ctx, interval, nil, observers...)
}

// RunWithSignals is Run with a control channel: signals arriving on
// sigs are applied between ticks, so pause, skip and the adjustment
// keys work without the interactive dashboard. A nil channel is valid
// and never fires.
func (e *Engine) RunWithSignals(ctx context.Context, interval time.Duration, sigs <-chan Signal, observers ...Observer) error {
	if interval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !e.done {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-sigs:
			e.Handle(sig)
		case <-ticker.C:
			e.Tick()
			for _, o := range observers {
				o.OnTick(e)
			}
		}
	}
	return nil
}
