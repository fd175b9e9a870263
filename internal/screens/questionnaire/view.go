package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/ui/components"
	"github.com/abhisek/mindcheck/internal/ui/theme"
)

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

func (s *QuestionnaireScreen) View(width, height int) string {
	switch s.phase {
	case phaseConfirmQuit:
		return renderQuitConfirm(width, height)
	case phaseEvaluating:
		return s.renderEvaluating(width, height)
	case phaseFailed:
		return renderError(width, height, s.errMsg)
	}
	return s.renderItem(width, height)
}

func (s *QuestionnaireScreen) renderItem(width, height int) string {
	cw := components.ContentWidth(width)
	item := s.svc.Schema().Items[s.cursor]
	answered, total := s.Progress()

	var b strings.Builder
	b.WriteString(theme.Hint.Render("Over the last 2 weeks, how often have you experienced the following?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d  ·  %s", item.Index+1, total, item.Section)))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View(cw - 6))

	bar := components.NewProgressBar("", float64(answered)/float64(total), true, cw)

	content := components.Card(b.String(), cw) + "\n\n" + bar.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuestionnaireScreen) renderEvaluating(width, height int) string {
	frame := spinnerFrames[s.spin%len(spinnerFrames)]
	msg := lipgloss.NewStyle().Foreground(theme.Primary).Render(frame) + "  " +
		lipgloss.NewStyle().Foreground(theme.Text).Render("Analyzing your answers...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func renderQuitConfirm(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Stop the questionnaire?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Your answers so far will be discarded."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, stop"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Success).Render("[N] No, keep going"))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func renderError(width, height int, errMsg string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().
			Width(components.ContentWidth(width)).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Could not evaluate your answers:\n\n%s\n\nPress R to try again.", errMsg)))
}
