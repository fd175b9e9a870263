// Package questionnaire is the screen that walks through every item, one at
// a time, and hands the completed response vector to the assessment service.
package questionnaire

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/screen"
	"github.com/abhisek/mindcheck/internal/screens/results"
	"github.com/abhisek/mindcheck/internal/ui/components"
	"github.com/abhisek/mindcheck/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

type phase int

const (
	phaseAnswering phase = iota
	phaseConfirmQuit
	phaseEvaluating
	phaseFailed
)

// QuestionnaireScreen implements screen.Screen for answering the items.
type QuestionnaireScreen struct {
	svc     *assessment.Service
	label   string
	restart func() screen.Screen

	answers []int
	cursor  int
	choice  components.FrequencyChoice
	phase   phase
	spin    int
	errMsg  string
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)
var _ screen.ProgressProvider = (*QuestionnaireScreen)(nil)

// New creates a questionnaire screen. restart builds the screen a retake
// starts from; it is handed on to the results screen.
func New(svc *assessment.Service, label string, restart func() screen.Screen) *QuestionnaireScreen {
	answers := make([]int, svc.Schema().Len())
	for i := range answers {
		answers[i] = -1
	}
	s := &QuestionnaireScreen{
		svc:     svc,
		label:   label,
		restart: restart,
		answers: answers,
	}
	s.choice = s.choiceFor(0)
	return s
}

func (s *QuestionnaireScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionnaireScreen) Title() string {
	if s.phase == phaseEvaluating {
		return "Analyzing"
	}
	return s.svc.Schema().Items[s.cursor].Section
}

func (s *QuestionnaireScreen) Progress() (int, int) {
	n := 0
	for _, a := range s.answers {
		if a >= 0 {
			n++
		}
	}
	return n, len(s.answers)
}

func (s *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseConfirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Discard answers"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseEvaluating:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	case phaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-3", Description: "Answer"},
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "←", Description: "Previous"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluatedMsg:
		return s.handleEvaluated(msg)

	case spinnerTickMsg:
		if s.phase != phaseEvaluating {
			return s, nil
		}
		s.spin++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuestionnaireScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseConfirmQuit:
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.phase = phaseAnswering
		}
		return s, nil

	case phaseEvaluating:
		return s, nil

	case phaseFailed:
		switch key {
		case "r", "R":
			return s, s.evaluate()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.phase = phaseConfirmQuit
		return s, nil
	case "left", "h", "backspace", "shift+tab":
		if s.cursor > 0 {
			s.cursor--
			s.choice = s.choiceFor(s.cursor)
		}
		return s, nil
	case "right", "l", "tab":
		// Skipping ahead is only allowed over items already answered.
		if s.cursor < len(s.answers)-1 && s.answers[s.cursor] >= 0 {
			s.cursor++
			s.choice = s.choiceFor(s.cursor)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if !s.choice.Submitted {
		return s, cmd
	}

	s.answers[s.cursor] = s.choice.Answer()
	if next := s.firstUnanswered(); next >= 0 {
		s.cursor = next
		s.choice = s.choiceFor(next)
		return s, cmd
	}
	return s, tea.Batch(cmd, s.evaluate())
}

// firstUnanswered returns the next unanswered item after the cursor,
// wrapping around, or -1 when every item has an answer.
func (s *QuestionnaireScreen) firstUnanswered() int {
	n := len(s.answers)
	for off := 1; off <= n; off++ {
		i := (s.cursor + off) % n
		if s.answers[i] < 0 {
			return i
		}
	}
	return -1
}

func (s *QuestionnaireScreen) choiceFor(i int) components.FrequencyChoice {
	return components.NewFrequencyChoice(s.svc.Schema().Items[i].Prompt, s.answers[i])
}

func (s *QuestionnaireScreen) evaluate() tea.Cmd {
	s.phase = phaseEvaluating
	s.errMsg = ""
	svc, label := s.svc, s.label
	answers := append([]int(nil), s.answers...)

	run := func() tea.Msg {
		ctx := context.Background()
		a, err := svc.EvaluateLabeled(ctx, label, answers)
		if err != nil {
			return evaluatedMsg{Err: err}
		}
		return evaluatedMsg{Assessment: a, Guidance: svc.Guide(ctx, a.Final())}
	}
	return tea.Batch(run, spinnerTick())
}

func (s *QuestionnaireScreen) handleEvaluated(msg evaluatedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseFailed
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	next := results.New(msg.Assessment, msg.Guidance, s.svc.CrisisLines(), s.restart)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
