package body

// Condition names usable with Toggle and the --condition flag.
const (
	CondGastroparesis = "gastroparesis"
	CondGERD          = "gerd"
	CondMalabsorption = "malabsorption"
	CondDiabetes      = "diabetes"
	CondObesity       = "obesity"
)

// Conditions holds the health-condition flags that modulate stage rules.
type Conditions struct {
	Gastroparesis bool `yaml:"gastroparesis"`
	GERD          bool `yaml:"gerd"`
	Malabsorption bool `yaml:"malabsorption"`
	Diabetes      bool `yaml:"diabetes"`
	Obesity       bool `yaml:"obesity"`
}

// Active returns the names of the enabled conditions, in a fixed order.
func (c Conditions) Active() []string {
	var names []string
	if c.Gastroparesis {
		names = append(names, CondGastroparesis)
	}
	if c.GERD {
		names = append(names, CondGERD)
	}
	if c.Malabsorption {
		names = append(names, CondMalabsorption)
	}
	if c.Diabetes {
		names = append(names, CondDiabetes)
	}
	if c.Obesity {
		names = append(names, CondObesity)
	}
	return names
}

// Toggle flips the named flag and reports whether the name was known.
func (c *Conditions) Toggle(name string) bool {
	switch name {
	case CondGastroparesis:
		c.Gastroparesis = !c.Gastroparesis
	case CondGERD:
		c.GERD = !c.GERD
	case CondMalabsorption:
		c.Malabsorption = !c.Malabsorption
	case CondDiabetes:
		c.Diabetes = !c.Diabetes
	case CondObesity:
		c.Obesity = !c.Obesity
	default:
		return false
	}
	return true
}
