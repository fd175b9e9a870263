package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards on a screen.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 30), 76)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.Width(cw).Render(content)
}

// CrisisBox renders the hotline box shown alongside Suicidal or Depression
// results with an elevated safety answer.
func CrisisBox(lines []string, cw int) string {
	head := lipgloss.NewStyle().Foreground(theme.Crisis).Bold(true).
		Render("If you are in crisis, please reach out now:")
	body := make([]string, 0, len(lines)+2)
	body = append(body, head, "")
	for _, l := range lines {
		body = append(body, "  "+l)
	}
	return theme.CrisisCard.Width(cw).Render(strings.Join(body, "\n"))
}

// Divider renders a dim section label over a horizontal rule.
func Divider(label string, width int) string {
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width, 0)))
	if label == "" {
		return rule
	}
	return theme.Heading.Render(label) + "\n" + rule
}

// Bullets renders one "•" line per entry, wrapped to width.
func Bullets(items []string, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Text).Width(max(width-2, 10))
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, "• ", style.Render(it)))
	}
	return strings.Join(lines, "\n")
}
