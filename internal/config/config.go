package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lloydlewis/gutflow/internal/body"
)

const (
	DefaultMeal         = "burger"
	DefaultTickMillis   = 250
	DefaultStress       = 2
	DefaultTemperatureC = 37.0
	DefaultTheme        = "clinic"
)

type Config struct {
	Meal         string   `yaml:"meal"`
	TickMillis   int      `yaml:"tick_ms"`
	Stress       int      `yaml:"stress"`
	TemperatureC float64  `yaml:"temperature_c"`
	Theme        string   `yaml:"theme"`
	Plain        bool     `yaml:"plain"`
	Conditions   []string `yaml:"conditions"`
	Antibiotic   bool     `yaml:"antibiotic"`
}

func DefaultConfig() *Config {
	return &Config{
		Meal:         DefaultMeal,
		TickMillis:   DefaultTickMillis,
		Stress:       DefaultStress,
		TemperatureC: DefaultTemperatureC,
		Theme:        DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the simulation cannot clamp its way out of.
func (c *Config) Validate() error {
	if c.TickMillis <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.TickMillis)
	}
	if _, ok := Meals[c.Meal]; !ok {
		return fmt.Errorf("unknown meal: %s (available: %v)", c.Meal, MealNames())
	}
	for _, name := range c.Conditions {
		var probe body.Conditions
		if !probe.Toggle(name) {
			return fmt.Errorf("unknown condition: %s", name)
		}
	}
	return nil
}

// BuildState constructs the initial simulation state the config asks
// for, with the chosen meal already eaten.
func (c *Config) BuildState() (*body.State, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var cond body.Conditions
	for _, name := range c.Conditions {
		cond.Toggle(name)
	}
	s := body.New(body.Environment{TemperatureC: c.TemperatureC, StressLevel: c.Stress}, cond)
	s.Microbiome.Antibiotic = c.Antibiotic
	s.Eat(*GetMeal(c.Meal))
	return s, nil
}
