package body

// Hormone levels, bacteria counts and discomfort are tracked as
// percentages so every panel can render them on the same 0-100 bar.
const (
	LevelMin = 0.0
	LevelMax = 100.0

	StressMin = 0
	StressMax = 10

	TempMin = 34.0
	TempMax = 42.0

	HungerMin = 0
	HungerMax = 10
)

// Default resting levels before a meal enters the pipeline.
const (
	DefaultGhrelin         = 50.0
	DefaultGastrin         = 10.0
	DefaultInsulin         = 20.0
	DefaultLeptin          = 30.0
	DefaultParasympathetic = 50.0
)

// InsulinBaseline is the level insulin relaxes toward between spikes.
const InsulinBaseline = DefaultInsulin

// Hormones holds the tracked endocrine levels.
type Hormones struct {
	Ghrelin         float64
	Gastrin         float64
	Insulin         float64
	Leptin          float64
	Parasympathetic float64
}

// Environment holds the external factors the user can adjust at runtime.
type Environment struct {
	TemperatureC float64
	StressLevel  int
}

// Stressed reports whether stress is high enough to inhibit digestion.
func (e Environment) Stressed() bool { return e.StressLevel >= 6 }

// Food is one meal moving through the pipeline, in grams per macro.
type Food struct {
	Name     string  `yaml:"name"`
	Carbs    float64 `yaml:"carbs"`
	Proteins float64 `yaml:"proteins"`
	Fats     float64 `yaml:"fats"`
	Fiber    float64 `yaml:"fiber"`
}

// Nutrients is the absorbed share of a food after the small intestine.
type Nutrients struct {
	Carbs    float64
	Proteins float64
	Fats     float64
}

// Metabolism is the partition report produced once absorption finishes.
type Metabolism struct {
	Glycogen    float64
	FatStorage  float64
	ProteinUse  float64
	EnergyAdded float64
}

// State is the single mutable record the driver loop owns. The
// presentation layer reads it on every frame and never writes it.
type State struct {
	Hormones   Hormones
	Microbiome Microbiome
	Env        Environment
	Cond       Conditions

	Food       *Food
	Energy     float64 // kcal gained so far
	Discomfort float64
	Hunger     int

	Metabolism *Metabolism
}

// New returns a resting state with no meal in transit.
func New(env Environment, cond Conditions) *State {
	s := &State{
		Hormones: Hormones{
			Ghrelin:         DefaultGhrelin,
			Gastrin:         DefaultGastrin,
			Insulin:         DefaultInsulin,
			Leptin:          DefaultLeptin,
			Parasympathetic: DefaultParasympathetic,
		},
		Microbiome: NewMicrobiome(),
		Env:        env,
		Cond:       cond,
		Hunger:     5,
	}
	s.Env.TemperatureC = ClampF(s.Env.TemperatureC, TempMin, TempMax)
	s.Env.StressLevel = ClampI(s.Env.StressLevel, StressMin, StressMax)
	if cond.Obesity {
		// adiposity: high leptin, blunted hunger signal
		s.Hormones.Leptin = 80
		s.Hormones.Ghrelin = 30
		s.Hunger = 3
	}
	return s
}

// Eat places a copy of the food at the head of the pipeline and fires
// the satiety and anticipatory-insulin signals.
func (s *State) Eat(f Food) {
	meal := f
	s.Food = &meal
	s.Hormones.Ghrelin = ClampF(s.Hormones.Ghrelin-25, LevelMin, LevelMax)
	s.Hormones.Insulin = ClampF(s.Hormones.Insulin+10, LevelMin, LevelMax)
	s.Hunger = ClampI(s.Hunger-3, HungerMin, HungerMax)
	s.Metabolism = nil
}

// Metabolize partitions absorbed nutrients into glycogen, fat storage
// and protein use, credits the energy balance, and records the report.
func (s *State) Metabolize(n Nutrients) Metabolism {
	glycogen := n.Carbs * 0.6
	if glycogen > 100 {
		glycogen = 100
	}
	fat := n.Fats * 0.7
	protein := n.Proteins * 0.8
	added := glycogen*4 + protein*4 + fat*9
	s.Energy += added
	m := Metabolism{
		Glycogen:    glycogen,
		FatStorage:  fat,
		ProteinUse:  protein,
		EnergyAdded: added,
	}
	s.Metabolism = &m
	return m
}

// RelaxInsulin moves insulin a small step toward baseline. Called once
// per tick so stage-driven spikes decay instead of latching.
func (s *State) RelaxInsulin() {
	s.Hormones.Insulin += (InsulinBaseline - s.Hormones.Insulin) * 0.02
	s.Hormones.Insulin = ClampF(s.Hormones.Insulin, LevelMin, LevelMax)
}

// AdjustStress shifts stress by delta steps, clamped to [0,10].
func (s *State) AdjustStress(delta int) {
	s.Env.StressLevel = ClampI(s.Env.StressLevel+delta, StressMin, StressMax)
}

// AdjustTemperature shifts body temperature by delta degrees, clamped.
func (s *State) AdjustTemperature(delta float64) {
	s.Env.TemperatureC = ClampF(s.Env.TemperatureC+delta, TempMin, TempMax)
}

// Clone returns a deep copy, used for pause and render snapshots.
func (s *State) Clone() *State {
	c := *s
	if s.Food != nil {
		f := *s.Food
		c.Food = &f
	}
	if s.Metabolism != nil {
		m := *s.Metabolism
		c.Metabolism = &m
	}
	return &c
}

// ClampF bounds v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampI bounds v to [lo, hi].
func ClampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
