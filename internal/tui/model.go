package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studyplan/internal/constants"
	"github.com/julianstephens/studyplan/internal/models"
)

// view states
const (
	stateSchedule = iota
	stateOverview
)

type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	Help     key.Binding
	Quit     key.Binding
	Motivate key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "schedule/overview"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Motivate: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "motivate me"),
		),
	}
}

// Model renders one study plan's weekly schedule. It is read-only: plan
// revisions happen through the CLI, not the viewer.
type Model struct {
	plan     models.StudyPlan
	motivate func() string
	state    int
	dayIndex int
	cursor   int
	keys     KeyMap
	help     help.Model
	message  string
	quitting bool
	width    int
	height   int
}

// NewModel creates a viewer for the given plan. motivate supplies the text
// shown on the motivate keypress.
func NewModel(plan models.StudyPlan, motivate func() string) Model {
	return Model{
		plan:     plan,
		motivate: motivate,
		state:    stateSchedule,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Left, m.keys.Right, m.keys.Tab, m.keys.Motivate, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down},
		{m.keys.Tab, m.keys.Motivate, m.keys.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) currentDay() string {
	return constants.Weekdays[m.dayIndex]
}

func (m Model) currentSessions() []models.StudySession {
	return m.plan.Schedule.DailySchedule[m.currentDay()]
}
