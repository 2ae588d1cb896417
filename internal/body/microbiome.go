package body

// Microbiome tracks the good/bad bacteria balance as percentages that
// always renormalize to 100.
type Microbiome struct {
	Good        float64
	Bad         float64
	FiberIntake float64
	Antibiotic  bool
}

func NewMicrobiome() Microbiome {
	return Microbiome{Good: 70, Bad: 30}
}

// Tick applies one step of fiber fermentation and antibiotic pressure,
// then renormalizes the balance.
func (m *Microbiome) Tick() {
	if m.FiberIntake > 0 {
		m.Good = ClampF(m.Good+1.2, LevelMin, LevelMax)
		m.Bad = ClampF(m.Bad-0.6, LevelMin, LevelMax)
	}
	if m.Antibiotic {
		m.Good = ClampF(m.Good-5.0, LevelMin, LevelMax)
		m.Bad = ClampF(m.Bad-2.0, LevelMin, LevelMax)
	}
	total := m.Good + m.Bad
	if total > 0 {
		m.Good = m.Good / total * 100
		m.Bad = m.Bad / total * 100
	}
}

// GasProduction is a rough heuristic: more bad bacteria and more fiber
// both raise fermentation output.
func (m *Microbiome) GasProduction() float64 {
	return m.Bad*0.08 + m.FiberIntake*0.05
}
