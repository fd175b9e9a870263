// Package intro is the screen before the questionnaire: what the screening
// covers, how answers are scaled and an optional label for the result.
package intro

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/questionnaire"
	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/screen"
	"github.com/abhisek/mindcheck/internal/ui/components"
	"github.com/abhisek/mindcheck/internal/ui/layout"
	"github.com/abhisek/mindcheck/internal/ui/theme"
)

const maxLabelLen = 60

// IntroScreen collects an optional label and starts the questionnaire.
type IntroScreen struct {
	items   int
	start   func(label string) screen.Screen
	input   components.TextInput
	started bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen for a questionnaire of items questions. start
// builds the questionnaire screen for the entered label.
func New(items int, start func(label string) screen.Screen) *IntroScreen {
	return &IntroScreen{
		items: items,
		start: start,
		input: components.NewTextInput("optional, e.g. \"before therapy\"", maxLabelLen),
	}
}

func (s *IntroScreen) Title() string {
	return "Before You Begin"
}

func (s *IntroScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, s.begin()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *IntroScreen) begin() tea.Cmd {
	if s.started {
		return nil
	}
	s.started = true
	next := s.start(s.input.Value())
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6)

	var b strings.Builder
	b.WriteString(text.Render(fmt.Sprintf(
		"You will see %d short statements about how you have felt over the last 2 weeks. "+
			"For each one, choose how often it applied to you:", s.items)))
	b.WriteString("\n\n")
	for i, f := range questionnaire.Scale() {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("  %d", i)))
		b.WriteString("  ")
		b.WriteString(theme.Body.Render(f.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(text.Render("There are no right or wrong answers. You can go back to change an answer at any time."))
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Label this check-in"))
	b.WriteString("\n")
	b.WriteString(s.input.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(b.String(), cw))
}
