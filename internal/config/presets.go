package config

import (
	"sort"

	"github.com/lloydlewis/gutflow/internal/body"
)

// Meals is the built-in meal table.
var Meals = map[string]*body.Food{
	"burger": {Name: "Burger & Fries", Carbs: 60, Proteins: 30, Fats: 35, Fiber: 4},
	"salad":  {Name: "Salad", Carbs: 15, Proteins: 5, Fats: 10, Fiber: 8},
	"pasta":  {Name: "Pasta", Carbs: 70, Proteins: 20, Fats: 10, Fiber: 3},
	"steak":  {Name: "Steak", Carbs: 0, Proteins: 50, Fats: 20, Fiber: 0},
}

// Scenarios are ready-made configurations for interesting runs.
var Scenarios = map[string]*Config{
	"stressed": {
		Meal: "burger", TickMillis: DefaultTickMillis,
		Stress: 8, TemperatureC: 37.0, Theme: DefaultTheme,
	},
	"fever": {
		Meal: "pasta", TickMillis: DefaultTickMillis,
		Stress: 3, TemperatureC: 39.0, Theme: DefaultTheme,
	},
	"diabetic": {
		Meal: "pasta", TickMillis: DefaultTickMillis,
		Stress: DefaultStress, TemperatureC: 37.0, Theme: DefaultTheme,
		Conditions: []string{body.CondDiabetes, body.CondObesity},
	},
	"slow-gut": {
		Meal: "steak", TickMillis: DefaultTickMillis,
		Stress: DefaultStress, TemperatureC: 37.0, Theme: DefaultTheme,
		Conditions: []string{body.CondGastroparesis, body.CondGERD},
	},
	"gut-reset": {
		Meal: "salad", TickMillis: DefaultTickMillis,
		Stress: 1, TemperatureC: 37.0, Theme: DefaultTheme,
		Antibiotic: true,
	},
}

func GetMeal(name string) *body.Food {
	return Meals[name]
}

func MealNames() []string {
	names := make([]string, 0, len(Meals))
	for name := range Meals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetScenario(name string) *Config {
	return Scenarios[name]
}

func ScenarioNames() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
