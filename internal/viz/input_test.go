package viz

import (
	"testing"
)

func TestSignalForKeyControlsEngine(t *testing.T) {
	e := newTestEngine()
	apply := func(key byte) {
		t.Helper()
		sig, ok := SignalForKey(key)
		if !ok {
			t.Fatalf("key %q should map to a signal", key)
		}
		e.Handle(sig)
	}

	apply('p')
	if !e.Paused() {
		t.Error("p should pause")
	}
	apply(' ')
	if e.Paused() {
		t.Error("space should resume")
	}

	apply('n')
	if e.StageIndex() != 1 {
		t.Errorf("n should skip one stage, index %d", e.StageIndex())
	}

	stress := e.State().Env.StressLevel
	apply('+')
	if e.State().Env.StressLevel != stress+1 {
		t.Error("+ should raise stress")
	}
	apply('-')
	if e.State().Env.StressLevel != stress {
		t.Error("- should lower stress")
	}

	temp := e.State().Env.TemperatureC
	apply('t')
	if e.State().Env.TemperatureC != temp+0.5 {
		t.Error("t should raise temperature")
	}
	apply('g')
	if e.State().Env.TemperatureC != temp {
		t.Error("g should lower temperature")
	}

	apply('d')
	if !e.State().Cond.Diabetes {
		t.Error("d should toggle diabetes")
	}
	apply('a')
	if !e.State().Microbiome.Antibiotic {
		t.Error("a should toggle antibiotic")
	}
}

func TestSignalForKeyIgnoresUnknown(t *testing.T) {
	for _, key := range []byte{'q', 'z', '\n', '7'} {
		if _, ok := SignalForKey(key); ok {
			t.Errorf("key %q should not map to a signal", key)
		}
	}
}
