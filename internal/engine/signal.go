package engine

// SignalKind identifies a user control signal.
type SignalKind int

const (
	SignalTogglePause SignalKind = iota
	SignalPause
	SignalResume
	SignalSkip
	SignalToggleCondition
	SignalToggleAntibiotic
	SignalAdjustStress
	SignalAdjustTemperature
)

// Signal is a transient control event from input polling. Signals are
// consumed immediately and never stored.
type Signal struct {
	Kind      SignalKind
	Condition string  // SignalToggleCondition
	Amount    float64 // SignalAdjustStress / SignalAdjustTemperature
}

// Handle applies a control signal. Adjustments and toggles take effect
// even while paused; only Tick is gated by the pause flag.
func (e *Engine) Handle(sig Signal) {
	switch sig.Kind {
	case SignalTogglePause:
		e.paused = !e.paused
	case SignalPause:
		e.paused = true
	case SignalResume:
		e.paused = false
	case SignalSkip:
		e.Skip()
	case SignalToggleCondition:
		e.state.Cond.Toggle(sig.Condition)
	case SignalToggleAntibiotic:
		e.state.Microbiome.Antibiotic = !e.state.Microbiome.Antibiotic
	case SignalAdjustStress:
		e.state.AdjustStress(int(sig.Amount))
	case SignalAdjustTemperature:
		e.state.AdjustTemperature(sig.Amount)
	}
}
