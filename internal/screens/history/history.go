package history

import (
	"context"
	"fmt"
	"image/color"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/scoring"
	"github.com/abhisek/mindcheck/internal/screen"
	"github.com/abhisek/mindcheck/internal/store"
	"github.com/abhisek/mindcheck/internal/ui/layout"
	"github.com/abhisek/mindcheck/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Assessments []store.AssessmentEvent
	Err         error
}

// HistoryScreen lists past assessments, newest first.
type HistoryScreen struct {
	eventRepo   store.EventRepo
	assessments []store.AssessmentEvent
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		evs, err := s.eventRepo.QueryAssessments(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Assessments: evs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Past Results"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.assessments = msg.Assessments
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.assessments)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return centered.Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return centered.Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.assessments) == 0 {
		return centered.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No results yet. Your check-ins will appear here.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.assessments {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		label := ""
		if a.Label != "" {
			label = "  \"" + a.Label + "\""
		}
		line := fmt.Sprintf("%s%s  %-22s%s",
			prefix, a.Timestamp.Local().Format("Jan 02, 2006 15:04"), a.FinalVerdict, label)

		style := lipgloss.NewStyle().Foreground(verdictColor(a.FinalVerdict))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, d := range details(a) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+d)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// details renders the expanded lines for one assessment.
func details(a store.AssessmentEvent) []string {
	classifier := a.ClassifierVerdict
	if !a.ClassifierAvailable {
		classifier = "unavailable"
	}
	out := []string{
		fmt.Sprintf("decided by %s  ·  rules: %s  ·  classifier: %s", a.Source, a.RuleVerdict, classifier),
	}

	names := make([]string, 0, len(a.Scores))
	for k := range a.Scores {
		names = append(names, k)
	}
	slices.Sort(names)
	var scores []string
	for _, n := range names {
		scores = append(scores, fmt.Sprintf("%s %d", n, a.Scores[n]))
	}
	out = append(out, strings.Join(scores, "  ·  "))
	if a.CrisisShown {
		out = append(out, "crisis resources were shown")
	}
	return append(out, "id "+a.AssessmentID)
}

func verdictColor(v string) color.Color {
	switch scoring.Condition(v) {
	case scoring.Normal:
		return theme.Success
	case scoring.Suicidal:
		return theme.Crisis
	default:
		return theme.Warning
	}
}
