package engine

// Observer receives the engine after every completed tick.
type Observer interface {
	OnTick(e *Engine)
}

// Recorder keeps in-memory per-tick series for post-run charts.
// Nothing is persisted; the buffers die with the process.
type Recorder struct {
	Energy       []float64
	Ghrelin      []float64
	Gastrin      []float64
	Insulin      []float64
	GoodBacteria []float64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnTick(e *Engine) {
	s := e.State()
	r.Energy = append(r.Energy, s.Energy)
	r.Ghrelin = append(r.Ghrelin, s.Hormones.Ghrelin)
	r.Gastrin = append(r.Gastrin, s.Hormones.Gastrin)
	r.Insulin = append(r.Insulin, s.Hormones.Insulin)
	r.GoodBacteria = append(r.GoodBacteria, s.Microbiome.Good)
}

// Len is the number of recorded ticks.
func (r *Recorder) Len() int { return len(r.Energy) }
