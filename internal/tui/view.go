package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/empatlab/cnvcoach/internal/content"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var body string
	switch m.view {
	case viewName:
		body = m.renderName()
	case viewKnows:
		body = m.renderKnows()
	case viewContext:
		body = m.renderContext()
	case viewLoading:
		body = m.renderLoading()
	case viewQuestion:
		body = m.renderQuestion()
	case viewFeedback:
		body = m.renderFeedback()
	case viewSummary:
		body = m.renderSummary()
	case viewFailed:
		body = m.renderFailed()
	}

	v.SetContent(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body))
	return v
}

func (m Model) renderName() string {
	return strings.Join([]string{
		styleTitle.Render("CNV Coach"),
		styleHint.Render("Role-play training for workplace communication"),
		"",
		styleBody.Render("What should I call you?"),
		m.nameInput.View(),
		"",
		styleHint.Render("Enter to continue · Ctrl+C to quit"),
	}, "\n")
}

func (m Model) renderKnows() string {
	options := []string{"Yes, I know the basics", "No, it's new to me"}
	var rows []string
	for i, opt := range options {
		if i == m.knowsCursor {
			rows = append(rows, styleSelected.Render("▸ "+opt))
		} else {
			rows = append(rows, styleBody.Render("  "+opt))
		}
	}

	return strings.Join([]string{
		styleTitle.Render("Before we start"),
		"",
		styleBody.Render("Are you familiar with Non-Violent Communication?"),
		"",
		strings.Join(rows, "\n"),
		"",
		styleHint.Render("↑↓ choose · Enter to continue"),
	}, "\n")
}

func (m Model) renderContext() string {
	return strings.Join([]string{
		styleTitle.Render("One more thing"),
		"",
		styleBody.Render("Which work situations do you find hardest to handle?"),
		m.contextInput.View(),
		"",
		styleHint.Render("Enter to start the session"),
	}, "\n")
}

func (m Model) renderLoading() string {
	lines := []string{
		styleTitle.Render("Preparing your session"),
		"",
		styleBody.Render("Generating scenarios shaped to your answers..."),
	}
	if m.notice != "" {
		lines = append(lines, "", styleNotice.Render(m.notice))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderQuestion() string {
	if m.state.Index >= len(m.state.Scenarios) {
		return ""
	}
	scenario := m.state.Scenarios[m.state.Index]

	header := fmt.Sprintf("Scenario %d of %d    Score: %d",
		m.state.Index+1, len(m.state.Scenarios), m.state.Score)

	var rows []string
	labels := []string{"A", "B", "C", "D"}
	for row, canonical := range m.order {
		_, text := scenario.OptionAt(canonical)
		line := fmt.Sprintf("%s)  %s", labels[row], text)
		if row == m.cursor && !m.busy {
			rows = append(rows, styleSelected.Render("▸ "+line))
		} else {
			rows = append(rows, styleBody.Render("  "+line))
		}
	}

	lines := []string{
		styleHint.Render(header),
	}
	if m.state.UsedFallback {
		lines = append(lines, styleNotice.Render("Using built-in scenarios."))
	}
	lines = append(lines,
		"",
		styleCard.Width(min(m.width-4, 80)).Render(styleBody.Render(scenario.Situation)),
		"",
		strings.Join(rows, "\n"),
		"",
	)
	if m.busy {
		lines = append(lines, styleHint.Render("The coach is thinking..."))
	} else {
		lines = append(lines, styleHint.Render("↑↓ choose your response · Enter to answer"))
	}
	if m.notice != "" {
		lines = append(lines, styleNotice.Render(m.notice))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderFeedback() string {
	points := fmt.Sprintf("+%d points", m.feedback.Points)

	lines := []string{
		styleTitle.Render("Feedback"),
		"",
		styleBody.Render(m.feedback.Immediate),
		"",
		styleBody.Render(m.feedback.Detailed),
		"",
		styleScore.Render(points),
	}
	if m.feedbackFallback && m.notice != "" {
		lines = append(lines, "", styleNotice.Render(m.notice))
	}
	lines = append(lines, "", styleHint.Render("Enter to continue"))

	return styleCard.Width(min(m.width-4, 80)).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSummary() string {
	maxScore := len(m.final.Answers) * content.PointsFor(content.KindCNV)

	lines := []string{
		styleTitle.Render("Session complete"),
		"",
		styleScore.Render(fmt.Sprintf("Final score: %d / %d", m.final.Score, maxScore)),
		"",
	}
	if m.summary != "" {
		lines = append(lines, styleBody.Width(min(m.width-8, 76)).Render(m.summary), "")
	}
	lines = append(lines, styleHint.Render("Enter to exit"))

	return styleCard.Width(min(m.width-4, 80)).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFailed() string {
	return strings.Join([]string{
		styleError.Render("Could not load any scenarios"),
		"",
		styleBody.Render(m.notice),
		"",
		styleHint.Render("r to retry · q to quit"),
	}, "\n")
}
