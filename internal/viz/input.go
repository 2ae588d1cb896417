package viz

import (
	"github.com/lloydlewis/gutflow/internal/body"
	"github.com/lloydlewis/gutflow/internal/engine"
)

// SignalForKey maps a fallback-mode key to its control signal. The
// bindings mirror the dashboard, with p as a pause alias for line
// input. Quit is the caller's concern; unknown keys map to nothing.
func SignalForKey(key byte) (engine.Signal, bool) {
	switch key {
	case 'p', ' ':
		return engine.Signal{Kind: engine.SignalTogglePause}, true
	case 'n':
		return engine.Signal{Kind: engine.SignalSkip}, true
	case '+', '=':
		return engine.Signal{Kind: engine.SignalAdjustStress, Amount: 1}, true
	case '-', '_':
		return engine.Signal{Kind: engine.SignalAdjustStress, Amount: -1}, true
	case 't':
		return engine.Signal{Kind: engine.SignalAdjustTemperature, Amount: 0.5}, true
	case 'g':
		return engine.Signal{Kind: engine.SignalAdjustTemperature, Amount: -0.5}, true
	case 'o':
		return engine.Signal{Kind: engine.SignalToggleCondition, Condition: body.CondObesity}, true
	case 'm':
		return engine.Signal{Kind: engine.SignalToggleCondition, Condition: body.CondMalabsorption}, true
	case 'd':
		return engine.Signal{Kind: engine.SignalToggleCondition, Condition: body.CondDiabetes}, true
	case 'e':
		return engine.Signal{Kind: engine.SignalToggleCondition, Condition: body.CondGERD}, true
	case 's':
		return engine.Signal{Kind: engine.SignalToggleCondition, Condition: body.CondGastroparesis}, true
	case 'a':
		return engine.Signal{Kind: engine.SignalToggleAntibiotic}, true
	}
	return engine.Signal{}, false
}
