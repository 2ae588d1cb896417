package stage

import "github.com/lloydlewis/gutflow/internal/body"

// Field names a clamped state variable a delta rule may adjust.
type Field int

const (
	Ghrelin Field = iota
	Gastrin
	Insulin
	Leptin
	Parasympathetic
	Discomfort
)

func (f Field) String() string {
	switch f {
	case Ghrelin:
		return "ghrelin"
	case Gastrin:
		return "gastrin"
	case Insulin:
		return "insulin"
	case Leptin:
		return "leptin"
	case Parasympathetic:
		return "parasympathetic"
	case Discomfort:
		return "discomfort"
	}
	return "unknown"
}

// Level bands used by rate modulation, on the 0-100 scale.
const (
	LevelHigh = 66.0
	LevelLow  = 33.0
)

// Delta is one state-delta rule: a per-tick (Active) or one-shot
// (Enter) adjustment of a single field.
type Delta struct {
	Field Field
	Rate  float64
}

// Stage is one step of the digestive pipeline. The stage list is static
// configuration; nothing mutates a Stage after Pipeline builds it.
type Stage struct {
	Name  string
	Desc  string
	Ticks int

	Enter  []Delta // applied once on entry
	Active []Delta // applied every tick while the stage runs

	// Duration, when set, computes the effective tick count from the
	// state at entry. Nil means the base Ticks value.
	Duration func(s *body.State, base int) int

	// Exit runs once when the stage completes (or is skipped).
	Exit func(s *body.State)
}

// Rate returns the effective per-tick rate of d under the active
// conditions and environment.
func Rate(s *body.State, d Delta) float64 {
	r := d.Rate
	switch d.Field {
	case Insulin:
		if r > 0 && s.Cond.Diabetes {
			// impaired insulin response
			r *= 0.4
		}
	case Parasympathetic:
		if r > 0 && s.Env.Stressed() {
			r = 0
		}
	case Discomfort:
		if r > 0 && !s.Cond.GERD {
			r = 0
		}
	}
	return r
}

// Apply applies one delta rule to the state, clamped into range.
func Apply(s *body.State, d Delta) {
	r := Rate(s, d)
	if r == 0 {
		return
	}
	h := &s.Hormones
	switch d.Field {
	case Ghrelin:
		h.Ghrelin = body.ClampF(h.Ghrelin+r, body.LevelMin, body.LevelMax)
	case Gastrin:
		h.Gastrin = body.ClampF(h.Gastrin+r, body.LevelMin, body.LevelMax)
	case Insulin:
		h.Insulin = body.ClampF(h.Insulin+r, body.LevelMin, body.LevelMax)
	case Leptin:
		h.Leptin = body.ClampF(h.Leptin+r, body.LevelMin, body.LevelMax)
	case Parasympathetic:
		h.Parasympathetic = body.ClampF(h.Parasympathetic+r, body.LevelMin, body.LevelMax)
	case Discomfort:
		s.Discomfort = body.ClampF(s.Discomfort+r, body.LevelMin, body.LevelMax)
	}
}

func gastrinFactor(level float64) float64 {
	switch {
	case level >= LevelHigh:
		return 1.3
	case level <= LevelLow:
		return 0.75
	default:
		return 1.0
	}
}

// stomachDuration scales the base gastric timer by secretion, autonomic
// and disease factors. Minimum two ticks so the progress bar is visible.
func stomachDuration(s *body.State, base int) int {
	gf := gastrinFactor(s.Hormones.Gastrin)
	tf := 1.0
	if s.Env.TemperatureC < 36.0 {
		tf = 0.9
	} else if s.Env.TemperatureC > 38.0 {
		tf = 1.05
	}
	hf := 1.0
	if s.Hormones.Ghrelin >= LevelHigh {
		hf = 0.9
	}
	df := 1.0
	if s.Cond.Gastroparesis {
		df *= 1.8
	}
	if s.Cond.GERD {
		df *= 1.05
	}
	sf := 1.0
	if s.Env.Stressed() {
		sf = 0.85
	}
	ticks := int(float64(base) / (gf * tf * hf) * df / sf)
	if ticks < 2 {
		ticks = 2
	}
	return ticks
}

// salivate performs the initial carb breakdown at the end of the mouth
// stage; vagal tone raises amylase output, stress suppresses it.
func salivate(s *body.State) {
	if s.Food == nil {
		return
	}
	factor := 1.0
	switch {
	case s.Hormones.Parasympathetic >= LevelHigh && !s.Env.Stressed():
		factor = 1.15
	case s.Hormones.Parasympathetic <= LevelLow || s.Env.Stressed():
		factor = 0.75
	}
	s.Food.Carbs = body.ClampF(s.Food.Carbs*(1.0-0.05*factor), 0, s.Food.Carbs)
}

// hydrolyzeProteins finishes partial gastric protein digestion.
func hydrolyzeProteins(s *body.State) {
	if s.Food == nil {
		return
	}
	s.Food.Proteins = body.ClampF(s.Food.Proteins*0.5*gastrinFactor(s.Hormones.Gastrin), 0, s.Food.Proteins)
}

// absorb moves nutrients out of the chyme and runs metabolism, leaving
// only the unabsorbed residue and fiber for the colon.
func absorb(s *body.State) {
	if s.Food == nil {
		return
	}
	malabs := 1.0
	if s.Cond.Malabsorption {
		malabs = 0.65
	}
	conversion := 1.0
	if s.Cond.Diabetes || s.Cond.Obesity {
		// insulin resistance slows energy conversion
		conversion = 0.75
	}
	n := body.Nutrients{
		Carbs:    s.Food.Carbs * 0.95 * malabs * conversion,
		Proteins: s.Food.Proteins * 0.9 * malabs * conversion,
		Fats:     s.Food.Fats * 0.85 * malabs * conversion,
	}
	s.Metabolize(n)
	s.Food.Carbs *= 0.05
	s.Food.Proteins *= 0.10
	s.Food.Fats *= 0.15
}

// eliminate ends the pipeline: the meal leaves the body and short-term
// hunger signalling rebounds.
func eliminate(s *body.State) {
	s.Food = nil
	s.Hunger = body.ClampI(s.Hunger+4, body.HungerMin, body.HungerMax)
	s.Hormones.Ghrelin = body.ClampF(s.Hormones.Ghrelin+20, body.LevelMin, body.LevelMax)
	s.Hormones.Parasympathetic = body.DefaultParasympathetic
}

// Pipeline returns the digestive stage list in order. Durations are in
// ticks and come from the timer table of the simulation this models.
func Pipeline() []Stage {
	return []Stage{
		{
			Name:  "mouth",
			Desc:  "Chewing and salivary amylase",
			Ticks: 2,
			Enter: []Delta{
				{Parasympathetic, 15},
				{Insulin, 5},
			},
			Exit: salivate,
		},
		{
			Name:  "esophagus",
			Desc:  "Peristalsis moves bolus to stomach",
			Ticks: 2,
			Active: []Delta{
				{Parasympathetic, -3},
				{Discomfort, 1.5}, // reflux irritation, GERD only
			},
		},
		{
			Name:  "stomach",
			Desc:  "Stomach acid and pepsin",
			Ticks: 6,
			Enter: []Delta{
				{Parasympathetic, 10},
			},
			Active: []Delta{
				{Gastrin, 6},
				{Ghrelin, -6},
				{Discomfort, 2},
			},
			Duration: stomachDuration,
			Exit:     hydrolyzeProteins,
		},
		{
			Name:  "duodenum",
			Desc:  "Bile and pancreatic enzymes mix in",
			Ticks: 2,
			Active: []Delta{
				{Gastrin, -8},
				{Insulin, 3},
			},
		},
		{
			Name:  "small_intestine",
			Desc:  "Brush border enzymes active",
			Ticks: 18,
			Active: []Delta{
				{Insulin, 1.5},
				{Ghrelin, -0.5},
			},
			Exit: absorb,
		},
		{
			Name:  "large_intestine",
			Desc:  "Water reclaimed, microbiome fermenting",
			Ticks: 36,
			Active: []Delta{
				{Insulin, -0.5},
				{Gastrin, -0.5},
				{Discomfort, -0.5},
			},
		},
		{
			Name:  "rectum",
			Desc:  "Stores feces until voluntary release",
			Ticks: 2,
			Exit:  eliminate,
		},
	}
}
