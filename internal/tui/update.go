package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studyplan/internal/constants"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			if m.state == stateSchedule {
				m.state = stateOverview
			} else {
				m.state = stateSchedule
			}
			return m, nil

		case key.Matches(msg, m.keys.Left):
			m.dayIndex = (m.dayIndex + len(constants.Weekdays) - 1) % len(constants.Weekdays)
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.Right):
			m.dayIndex = (m.dayIndex + 1) % len(constants.Weekdays)
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.currentSessions())-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Motivate):
			if m.motivate != nil {
				m.message = m.motivate()
			}
			return m, nil
		}
	}

	return m, nil
}
