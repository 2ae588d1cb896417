package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/lloydlewis/gutflow/internal/body"
	"github.com/lloydlewis/gutflow/internal/engine"
)

const historyCapacity = 600

type TickMsg time.Time

// Model is the bubbletea dashboard wrapped around the engine. The
// engine owns the simulation state; the model only reads it and feeds
// control signals in.
type Model struct {
	eng      *engine.Engine
	interval time.Duration
	theme    Theme
	styles   Styles

	frame    int
	showHelp bool

	energyHistory  []float64
	insulinHistory []float64
}

func NewModel(eng *engine.Engine, interval time.Duration, themeName string) Model {
	theme := GetTheme(themeName)
	return Model{
		eng:            eng,
		interval:       interval,
		theme:          theme,
		styles:         NewStyles(theme),
		energyHistory:  make([]float64, 0, historyCapacity),
		insulinHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.eng.Handle(engine.Signal{Kind: engine.SignalTogglePause})
		case "n":
			m.eng.Handle(engine.Signal{Kind: engine.SignalSkip})
		case "+", "=":
			m.eng.Handle(engine.Signal{Kind: engine.SignalAdjustStress, Amount: 1})
		case "-", "_":
			m.eng.Handle(engine.Signal{Kind: engine.SignalAdjustStress, Amount: -1})
		case "t":
			m.eng.Handle(engine.Signal{Kind: engine.SignalAdjustTemperature, Amount: 0.5})
		case "g":
			m.eng.Handle(engine.Signal{Kind: engine.SignalAdjustTemperature, Amount: -0.5})
		case "o":
			m.eng.Handle(engine.Signal{Kind: engine.SignalToggleCondition, Condition: body.CondObesity})
		case "m":
			m.eng.Handle(engine.Signal{Kind: engine.SignalToggleCondition, Condition: body.CondMalabsorption})
		case "d":
			m.eng.Handle(engine.Signal{Kind: engine.SignalToggleCondition, Condition: body.CondDiabetes})
		case "e":
			m.eng.Handle(engine.Signal{Kind: engine.SignalToggleCondition, Condition: body.CondGERD})
		case "s":
			m.eng.Handle(engine.Signal{Kind: engine.SignalToggleCondition, Condition: body.CondGastroparesis})
		case "a":
			m.eng.Handle(engine.Signal{Kind: engine.SignalToggleAntibiotic})
		case "T":
			m.theme = NextTheme(m.theme)
			m.styles = NewStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if !m.eng.Done() {
			m.eng.Tick()
			m.record()
		}
		m.frame++
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) record() {
	s := m.eng.State()
	m.energyHistory = append(m.energyHistory, s.Energy)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
	m.insulinHistory = append(m.insulinHistory, s.Hormones.Insulin)
	if len(m.insulinHistory) > historyCapacity {
		m.insulinHistory = m.insulinHistory[1:]
	}
}

func (m Model) status() string {
	switch {
	case m.eng.Done():
		return m.styles.Accent.Render("COMPLETE")
	case m.eng.Paused():
		return m.styles.Paused.Render("PAUSED")
	default:
		return m.styles.Status.Render("RUNNING " + Spinner(m.frame))
	}
}

func (m Model) View() string {
	if m.showHelp {
		return m.helpView()
	}
	left := m.styles.Panel.Render(m.pipelineView())
	right := m.styles.SidePanel.Render(m.statusView())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) pipelineView() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("GUTFLOW :: DIGESTIVE PIPELINE") + "\n")
	b.WriteString(m.status() + "\n\n")

	cur := m.eng.Current()
	for i, st := range m.eng.Stages() {
		marker := "  "
		var line string
		switch {
		case cur != nil && i == m.eng.StageIndex():
			marker = m.styles.Accent.Render("> ")
			line = m.styles.Accent.Render(st.Name)
		case i < m.eng.StageIndex():
			line = m.styles.Good.Render(st.Name + " ✓")
		default:
			line = m.styles.Label.Render(st.Name)
		}
		b.WriteString(marker + line + "\n")
	}
	b.WriteString("\n")

	if cur != nil {
		b.WriteString(m.styles.Value.Render(cur.Desc) + "\n")
		b.WriteString(m.styles.ProgressBar(m.eng.Progress(), 32) +
			m.styles.Value.Render(fmt.Sprintf(" %3.0f%%", m.eng.Progress()*100)) + "\n")
		b.WriteString(m.styles.Label.Render("Stage ticks") +
			m.styles.Value.Render(fmt.Sprintf("%d/%d", m.eng.StageTicks(), m.eng.StageDuration())) + "\n")
	} else {
		b.WriteString(m.styles.Value.Render(fmt.Sprintf("Digestion complete. Energy gained: %.2f kcal", m.eng.State().Energy)) + "\n")
	}
	b.WriteString(m.styles.Label.Render("Total ticks") +
		m.styles.Value.Render(fmt.Sprintf("%d", m.eng.TotalTicks())) + "\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4), asciigraph.Width(34), asciigraph.Caption("Energy (kcal)"))
		b.WriteString(m.styles.Graph.Render(chart) + "\n")
	}
	if len(m.insulinHistory) > 1 {
		chart := asciigraph.Plot(m.insulinHistory,
			asciigraph.Height(4), asciigraph.Width(34), asciigraph.Caption("Insulin"))
		b.WriteString(m.styles.Graph.Render(chart) + "\n")
	}

	b.WriteString(m.styles.Help.Render("space:Pause n:Skip +/-:Stress t/g:Temp T:Theme ?:Help q:Quit"))
	return b.String()
}

func (m Model) statusView() string {
	s := m.eng.State()
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("HORMONES") + "\n")
	b.WriteString(m.styles.LevelBar("ghrelin", s.Hormones.Ghrelin, 10) + "\n")
	b.WriteString(m.styles.LevelBar("gastrin", s.Hormones.Gastrin, 10) + "\n")
	b.WriteString(m.styles.LevelBar("insulin", s.Hormones.Insulin, 10) + "\n")
	b.WriteString(m.styles.LevelBar("leptin", s.Hormones.Leptin, 10) + "\n")
	b.WriteString(m.styles.LevelBar("parasympathetic", s.Hormones.Parasympathetic, 10) + "\n\n")

	b.WriteString(m.styles.Header.Render("MICROBIOME") + "\n")
	b.WriteString(m.styles.Label.Render("Good/Bad %") +
		m.styles.Value.Render(fmt.Sprintf("%.1f / %.1f", s.Microbiome.Good, s.Microbiome.Bad)) + "\n")
	b.WriteString(m.styles.Label.Render("Fiber intake") +
		m.styles.Value.Render(fmt.Sprintf("%.1f g", s.Microbiome.FiberIntake)) + "\n")
	b.WriteString(m.styles.Label.Render("Gas production") +
		m.styles.Value.Render(fmt.Sprintf("%.2f", s.Microbiome.GasProduction())) + "\n")
	if s.Microbiome.Antibiotic {
		b.WriteString(m.styles.Bad.Render("antibiotic active") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Header.Render("ENVIRONMENT") + "\n")
	b.WriteString(m.styles.Label.Render("Temperature") +
		m.styles.Value.Render(fmt.Sprintf("%.1f C", s.Env.TemperatureC)) + "\n")
	b.WriteString(m.styles.Label.Render("Stress") +
		m.styles.Value.Render(fmt.Sprintf("%d/10", s.Env.StressLevel)) + "\n")
	b.WriteString(m.styles.Label.Render("Energy") +
		m.styles.Value.Render(fmt.Sprintf("%.2f kcal", s.Energy)) + "\n")
	b.WriteString(m.styles.Label.Render("Discomfort") +
		m.styles.Value.Render(fmt.Sprintf("%.1f", s.Discomfort)) + "\n")
	b.WriteString(m.styles.Label.Render("Hunger") +
		m.styles.Value.Render(fmt.Sprintf("%d/10", s.Hunger)) + "\n\n")

	b.WriteString(m.styles.Header.Render("CONDITIONS") + "\n")
	active := s.Cond.Active()
	if len(active) == 0 {
		b.WriteString(m.styles.Label.Render("none") + "\n")
	} else {
		for _, name := range active {
			b.WriteString(m.styles.Warn.Render(name) + "\n")
		}
	}

	if s.Food != nil {
		b.WriteString("\n" + m.styles.Header.Render("FOOD IN TRANSIT") + "\n")
		b.WriteString(m.styles.Label.Render(s.Food.Name) + "\n")
		b.WriteString(m.styles.Value.Render(fmt.Sprintf("carbs %.1f  protein %.1f  fat %.1f  fiber %.1f",
			s.Food.Carbs, s.Food.Proteins, s.Food.Fats, s.Food.Fiber)) + "\n")
	}

	if s.Metabolism != nil {
		mm := s.Metabolism
		b.WriteString("\n" + m.styles.Header.Render("METABOLISM") + "\n")
		b.WriteString(m.styles.Value.Render(fmt.Sprintf("glycogen %.1f  fat %.1f  protein %.1f  +%.1f kcal",
			mm.Glycogen, mm.FatStorage, mm.ProteinUse, mm.EnergyAdded)) + "\n")
	}

	return b.String()
}

func (m Model) helpView() string {
	return `
╔════════════════════════════════════════╗
║           KEYBOARD SHORTCUTS           ║
╠════════════════════════════════════════╣
║  space    - Pause/Resume               ║
║  n        - Skip to next stage         ║
║  + / -    - Raise/lower stress         ║
║  t / g    - Raise/lower temperature    ║
║  o        - Toggle obesity             ║
║  m        - Toggle malabsorption       ║
║  d        - Toggle diabetes            ║
║  e        - Toggle GERD                ║
║  s        - Toggle gastroparesis       ║
║  a        - Toggle antibiotic          ║
║  T        - Cycle themes               ║
║  ?        - Toggle this help           ║
║  q        - Quit                       ║
╚════════════════════════════════════════╝
`
}
