// Package results is the screen shown after an assessment: the verdict,
// the per-category breakdown, guidance and, when called for, crisis lines.
package results

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/fusion"
	"github.com/abhisek/mindcheck/internal/guidance"
	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/scoring"
	"github.com/abhisek/mindcheck/internal/screen"
	"github.com/abhisek/mindcheck/internal/ui/layout"
	"github.com/abhisek/mindcheck/internal/ui/theme"
)

// ResultsScreen displays one evaluated assessment.
type ResultsScreen struct {
	assessment  *assessment.Assessment
	guidance    guidance.Guidance
	crisisLines []string
	restart     func() screen.Screen
	offset      int
	lastHeight  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. restart may be nil, in which case a retake
// just returns to the root screen.
func New(a *assessment.Assessment, g guidance.Guidance, crisisLines []string, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		assessment:  a,
		guidance:    g,
		crisisLines: crisisLines,
		restart:     restart,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Retake"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	page := max(s.lastHeight-2, 1)
	switch kmsg.String() {
	case "up", "k":
		s.offset = max(s.offset-1, 0)
	case "down", "j":
		s.offset++
	case "pgup":
		s.offset = max(s.offset-page, 0)
	case "pgdown", "space":
		s.offset += page
	case "home", "g":
		s.offset = 0
	case "r", "R":
		var next screen.Screen
		if s.restart != nil {
			next = s.restart()
		}
		return s, func() tea.Msg { return router.ResetMsg{Then: next} }
	case "esc", "enter":
		return s, func() tea.Msg { return router.ResetMsg{} }
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	s.lastHeight = height
	lines := strings.Split(s.render(width), "\n")

	// Clamp so the last page stays full.
	s.offset = min(s.offset, max(len(lines)-height, 0))
	end := min(s.offset+height, len(lines))
	return strings.Join(lines[s.offset:end], "\n")
}

// verdictColor maps a final label to its headline color.
func verdictColor(c scoring.Condition) color.Color {
	switch c {
	case scoring.Normal:
		return theme.Success
	case scoring.Suicidal:
		return theme.Crisis
	default:
		return theme.Warning
	}
}

func sourceText(d fusion.Decision) string {
	switch d.Source {
	case fusion.SourceSafetyOverride:
		return "Your answer about thoughts of self-harm takes priority over every other score."
	case fusion.SourceRuleEngine:
		if !d.ClassifierAvailable {
			return "Based on your questionnaire scores. The AI classifier was not available."
		}
		return "Based on your questionnaire scores, which showed an elevated pattern."
	default:
		return "Based on an AI analysis of your answers."
	}
}
