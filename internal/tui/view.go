package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studyplan/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case stateSchedule:
		content = m.viewSchedule()
	case stateOverview:
		content = m.viewOverview()
	}

	var message string
	if m.message != "" {
		message = messageStyle.Render(m.message)
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		message,
		m.help.View(m),
	)

	return docStyle.Render(ui)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(constants.Weekdays))
	for i, day := range constants.Weekdays {
		label := day[:3]
		if i == m.dayIndex {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSchedule() string {
	sessions := m.currentSessions()
	if len(sessions) == 0 {
		return fmt.Sprintf("\nNo sessions scheduled for %s.\n", m.currentDay())
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, session := range sessions {
		line := fmt.Sprintf("%s-%s  %s (%d min, %s)",
			session.StartTime, session.EndTime,
			subjectStyle.Render(session.Subject),
			session.DurationMinutes, session.Difficulty)
		if i == m.cursor {
			line = selectedRowStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
		if session.BreakAfter > 0 {
			b.WriteString(breakStyle.Render(fmt.Sprintf("    %d min break", session.BreakAfter)) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewOverview() string {
	overview := m.plan.Schedule.WeeklyOverview

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\nPlan version %d\n", m.plan.Metadata.Version))
	b.WriteString(fmt.Sprintf("Weekly total: %.1f hours (%d minutes)\n\n", overview.TotalStudyTimeHours, overview.TotalStudyTimeMinutes))

	subjects := make([]string, 0, len(overview.SubjectTimeMinutes))
	for subject := range overview.SubjectTimeMinutes {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	for _, subject := range subjects {
		b.WriteString(fmt.Sprintf("%-20s %4d min  %2d sessions  %5.1f%%\n",
			subjectStyle.Render(subject),
			overview.SubjectTimeMinutes[subject],
			overview.SubjectSessions[subject],
			overview.SubjectPercentage[subject]))
	}
	return b.String()
}
