package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lloydlewis/gutflow/internal/config"
	"github.com/lloydlewis/gutflow/internal/engine"
	"github.com/lloydlewis/gutflow/internal/stage"
	"github.com/lloydlewis/gutflow/internal/viz"
)

var (
	configFile  string
	scenario    string
	meal        string
	tickMillis  int
	stress      int
	temperature float64
	themeName   string
	conditions  []string
	antibiotic  bool
	plain       bool
)

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&scenario, "scenario", "", "use a scenario preset")
	cmd.Flags().StringVar(&meal, "meal", config.DefaultMeal, "meal to digest")
	cmd.Flags().IntVar(&tickMillis, "tick-ms", config.DefaultTickMillis, "tick interval in milliseconds")
	cmd.Flags().IntVar(&stress, "stress", config.DefaultStress, "initial stress level (0-10)")
	cmd.Flags().Float64Var(&temperature, "temp", config.DefaultTemperatureC, "initial body temperature (C)")
	cmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "dashboard theme")
	cmd.Flags().StringSliceVar(&conditions, "condition", nil, "enable a health condition (repeatable)")
	cmd.Flags().BoolVar(&antibiotic, "antibiotic", false, "start with antibiotics active")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "gutflow",
		Short: "step-by-step digestion simulator with a live dashboard",
		RunE:  runDashboard,
	}
	addSimFlags(rootCmd)
	rootCmd.Flags().BoolVar(&plain, "plain", false, "force the line-based renderer")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "digest a meal to completion and chart the result",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)

	mealsCmd := &cobra.Command{
		Use:   "meals",
		Short: "list built-in meals",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.MealNames() {
				f := config.GetMeal(name)
				fmt.Printf("%-8s %s (carbs %.0fg, proteins %.0fg, fats %.0fg, fiber %.0fg)\n",
					name, f.Name, f.Carbs, f.Proteins, f.Fats, f.Fiber)
			}
		},
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list scenario presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ScenarioNames() {
				sc := config.GetScenario(name)
				cond := "none"
				if len(sc.Conditions) > 0 {
					cond = fmt.Sprint(sc.Conditions)
				}
				fmt.Printf("%-10s meal=%s stress=%d temp=%.1f conditions=%s\n",
					name, sc.Meal, sc.Stress, sc.TemperatureC, cond)
			}
		},
	}

	rootCmd.AddCommand(runCmd, mealsCmd, scenariosCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig layers scenario, config file and CLI flags, flags winning.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if scenario != "" {
		sc := config.GetScenario(scenario)
		if sc == nil {
			return nil, fmt.Errorf("unknown scenario: %s (available: %v)", scenario, config.ScenarioNames())
		}
		clone := *sc
		cfg = &clone
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("meal") {
		cfg.Meal = meal
	}
	if cmd.Flags().Changed("tick-ms") {
		cfg.TickMillis = tickMillis
	}
	if cmd.Flags().Changed("stress") {
		cfg.Stress = stress
	}
	if cmd.Flags().Changed("temp") {
		cfg.TemperatureC = temperature
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}
	if cmd.Flags().Changed("condition") {
		cfg.Conditions = conditions
	}
	if cmd.Flags().Changed("antibiotic") {
		cfg.Antibiotic = antibiotic
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newEngine(cfg *config.Config) (*engine.Engine, error) {
	st, err := cfg.BuildState()
	if err != nil {
		return nil, err
	}
	return engine.New(st, stage.Pipeline()), nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	interval := time.Duration(cfg.TickMillis) * time.Millisecond

	if plain || cfg.Plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		return runPlain(eng, interval)
	}

	m := viz.NewModel(eng, interval, cfg.Theme)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		// degrade rather than die: the simulation still works on a
		// dumb terminal
		fmt.Fprintf(os.Stderr, "dashboard unavailable (%v), using plain output\n", err)
		return runPlain(eng, interval)
	}
	return nil
}

func runPlain(eng *engine.Engine, interval time.Duration) error {
	// ctrl+c and q both land here via ctx, so the deferred Stop always
	// restores the cursor
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := viz.NewPlainRenderer(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
	r.Start()
	defer r.Stop()

	var sigs chan engine.Signal
	if isatty.IsTerminal(os.Stdin.Fd()) {
		sigs = make(chan engine.Signal, 8)
		go pollKeys(ctx, stop, os.Stdin, sigs)
	}

	err := eng.RunWithSignals(ctx, interval, sigs, r)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Digestion complete. Total energy gained: %.2f kcal\n", eng.State().Energy)
	return nil
}

// pollKeys feeds line-buffered keyboard commands to the fallback run
// loop. Line input means a command takes effect on enter, which is as
// close as a cooked terminal gets to the dashboard keys.
func pollKeys(ctx context.Context, quit context.CancelFunc, in io.Reader, out chan<- engine.Signal) {
	br := bufio.NewReader(in)
	for {
		b, err := br.ReadByte()
		if err != nil {
			return
		}
		if b == 'q' {
			quit()
			return
		}
		sig, ok := viz.SignalForKey(b)
		if !ok {
			continue
		}
		select {
		case out <- sig:
		case <-ctx.Done():
			return
		}
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("digesting %s...\n", config.GetMeal(cfg.Meal).Name)
	start := time.Now()

	rec := engine.NewRecorder()
	if err := eng.Run(context.Background(), time.Millisecond, rec); err != nil {
		return err
	}

	s := eng.State()
	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("ticks: %d\n", eng.TotalTicks())
	fmt.Printf("energy gained: %.2f kcal\n", s.Energy)
	if s.Metabolism != nil {
		fmt.Printf("glycogen: %.1f  fat storage: %.1f  protein use: %.1f\n",
			s.Metabolism.Glycogen, s.Metabolism.FatStorage, s.Metabolism.ProteinUse)
	}
	fmt.Printf("microbiome: good %.1f%% / bad %.1f%%\n", s.Microbiome.Good, s.Microbiome.Bad)
	fmt.Println()
	fmt.Println(viz.SummaryCharts(rec))
	return nil
}
