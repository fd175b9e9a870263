package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/guidance"
	"github.com/abhisek/mindcheck/internal/questionnaire"
	"github.com/abhisek/mindcheck/internal/ui/components"
	"github.com/abhisek/mindcheck/internal/ui/theme"
)

// render produces the full, unclipped results page.
func (s *ResultsScreen) render(width int) string {
	a := s.assessment
	g := s.guidance
	cw := components.ContentWidth(width)
	place := func(block string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
	}

	var sections []string

	headline := lipgloss.NewStyle().Foreground(verdictColor(a.Final())).Bold(true).
		Render(fmt.Sprintf("Screening result: %s", a.Final()))
	sub := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Align(lipgloss.Center).
		Render(sourceText(a.Decision))
	sections = append(sections, "", place(headline), place(sub))
	if a.Label != "" {
		sections = append(sections, place(theme.Hint.Render(a.Label)))
	}

	if a.CrisisResources {
		sections = append(sections, "", place(components.CrisisBox(s.crisisLines, cw)))
	}

	sections = append(sections, "", place(s.renderBreakdown(cw)))

	if g.Explanation != "" {
		body := components.Divider("What this means", cw-6) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Width(cw-6).Render(g.Explanation)
		sections = append(sections, "", place(components.Card(body, cw)))
	}

	if recs := renderRecommendations(g, cw-6); recs != "" {
		sections = append(sections, "", place(components.Card(recs, cw)))
	}

	disclaimer := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Width(cw).
		Render(guidance.Disclaimer)
	sections = append(sections, "", place(disclaimer), "")

	return strings.Join(sections, "\n")
}

func (s *ResultsScreen) renderBreakdown(cw int) string {
	elevated := make(map[string]bool, len(s.assessment.Result.Elevated))
	for _, e := range s.assessment.Result.Elevated {
		elevated[string(e.Condition)] = true
	}

	labelWidth := 0
	for _, c := range s.assessment.Breakdown {
		labelWidth = max(labelWidth, lipgloss.Width(c.Title))
	}

	var b strings.Builder
	b.WriteString(components.Divider("Category breakdown", cw-6))
	b.WriteString("\n\n")
	for _, c := range s.assessment.Breakdown {
		bar := components.NewProgressBar(c.Title, c.Percent/100, true, cw-6)
		bar.LabelWidth = labelWidth
		bar.Elevated = elevated[c.Name]
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	safety := fmt.Sprintf("Thoughts of self-harm: %s", safetyPhrase(s.assessment.Decision.Safety))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(safety))
	return components.Card(b.String(), cw)
}

func renderRecommendations(g guidance.Guidance, width int) string {
	var parts []string
	if len(g.Recommendations.Strategies) > 0 {
		parts = append(parts,
			components.Divider("Daily practices", width),
			components.Bullets(g.Recommendations.Strategies, width),
			theme.Hint.Width(width).Render(guidance.PracticeTip))
	}
	if len(g.Recommendations.Resources) > 0 {
		items := make([]string, 0, len(g.Recommendations.Resources))
		for _, r := range g.Recommendations.Resources {
			items = append(items, r.Title+"\n"+lipgloss.NewStyle().Foreground(theme.Secondary).Render(r.Link))
		}
		parts = append(parts, "", components.Divider("Learn more", width), components.Bullets(items, width))
	}
	if len(g.Apps) > 0 {
		items := make([]string, 0, len(g.Apps))
		for _, app := range g.Apps {
			items = append(items, app.Name+": "+app.Purpose)
		}
		parts = append(parts, "", components.Divider("Helpful apps", width), components.Bullets(items, width))
	}
	return strings.Join(parts, "\n")
}

// safetyPhrase renders the raw safety answer as a lowercase frequency.
func safetyPhrase(v int) string {
	return strings.ToLower(questionnaire.FrequencyOf(v).String())
}
