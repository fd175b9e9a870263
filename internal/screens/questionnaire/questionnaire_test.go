package questionnaire

import (
	"io"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/classify"
	"github.com/abhisek/mindcheck/internal/questionnaire"
	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/scoring"
	"github.com/abhisek/mindcheck/internal/screen"
)

func newTestService(t *testing.T) *assessment.Service {
	t.Helper()
	svc, err := assessment.NewService(assessment.Options{
		Schema:     questionnaire.Default(),
		Classifier: classify.Fixed(scoring.Normal),
		Warnings:   io.Discard,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func digit(d rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: d, Text: string(d)}
}

// collect runs cmd and every command it batches, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func press(s screen.Screen, keys ...tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		s, cmd = s.Update(k)
	}
	return s, cmd
}

func TestDigitAnswersAndAdvances(t *testing.T) {
	s := New(newTestService(t), "", nil)

	press(s, digit('2'))

	if s.answers[0] != 2 {
		t.Errorf("answers[0] = %d, want 2", s.answers[0])
	}
	if s.cursor != 1 {
		t.Errorf("cursor = %d, want 1", s.cursor)
	}
	if got, total := s.Progress(); got != 1 || total != 35 {
		t.Errorf("Progress() = %d/%d, want 1/35", got, total)
	}
}

func TestArrowsThenEnter(t *testing.T) {
	s := New(newTestService(t), "", nil)

	press(s,
		tea.KeyPressMsg{Code: tea.KeyDown},
		tea.KeyPressMsg{Code: tea.KeyDown},
		tea.KeyPressMsg{Code: tea.KeyDown},
		tea.KeyPressMsg{Code: tea.KeyUp},
		tea.KeyPressMsg{Code: tea.KeyEnter},
	)

	if s.answers[0] != 2 {
		t.Errorf("answers[0] = %d, want 2", s.answers[0])
	}
}

func TestGoBackKeepsPreviousAnswer(t *testing.T) {
	s := New(newTestService(t), "", nil)

	press(s, digit('3'), tea.KeyPressMsg{Code: tea.KeyLeft})

	if s.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", s.cursor)
	}
	if s.choice.Selected != 3 {
		t.Errorf("revisited item should preselect 3, got %d", s.choice.Selected)
	}

	// Re-answering jumps to the first unanswered item.
	press(s, digit('1'))
	if s.answers[0] != 1 || s.cursor != 1 {
		t.Errorf("answers[0]=%d cursor=%d, want 1 and 1", s.answers[0], s.cursor)
	}
}

func TestCannotSkipUnansweredItem(t *testing.T) {
	s := New(newTestService(t), "", nil)

	press(s, tea.KeyPressMsg{Code: tea.KeyRight})

	if s.cursor != 0 {
		t.Errorf("cursor moved to %d past an unanswered item", s.cursor)
	}
}

func TestQuitConfirm(t *testing.T) {
	s := New(newTestService(t), "", nil)

	press(s, tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.phase != phaseConfirmQuit {
		t.Fatalf("phase = %d, want confirm", s.phase)
	}

	press(s, digit('n'))
	if s.phase != phaseAnswering {
		t.Fatalf("N should resume answering")
	}

	press(s, tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := press(s, digit('y'))
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", msgs[0])
	}
}

func TestCompletingEvaluatesAndShowsResults(t *testing.T) {
	s := New(newTestService(t), "weekly", nil)

	keys := make([]tea.KeyPressMsg, 0, 35)
	for i := range 35 {
		switch i {
		case 0, 1:
			keys = append(keys, digit('3'))
		case 3:
			keys = append(keys, digit('2'))
		default:
			keys = append(keys, digit('0'))
		}
	}
	_, cmd := press(s, keys...)

	if s.phase != phaseEvaluating {
		t.Fatalf("phase = %d, want evaluating", s.phase)
	}
	if !strings.Contains(s.View(80, 24), "Analyzing") {
		t.Error("expected analyzing indicator while evaluating")
	}

	var evaluated *evaluatedMsg
	for _, m := range collect(cmd) {
		if e, ok := m.(evaluatedMsg); ok {
			evaluated = &e
		}
	}
	if evaluated == nil {
		t.Fatal("expected an evaluatedMsg")
	}
	if evaluated.Err != nil {
		t.Fatalf("evaluate: %v", evaluated.Err)
	}
	if evaluated.Assessment.Final() != scoring.Suicidal {
		t.Errorf("Final = %s, want Suicidal", evaluated.Assessment.Final())
	}
	if evaluated.Assessment.Label != "weekly" {
		t.Errorf("Label = %q, want weekly", evaluated.Assessment.Label)
	}

	_, cmd = s.Update(*evaluated)
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	replace, ok := msgs[0].(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msgs[0])
	}
	if replace.Screen.Title() != "Your Results" {
		t.Errorf("replaced with %q", replace.Screen.Title())
	}
}

func TestEvaluationFailureCanRetry(t *testing.T) {
	s := New(newTestService(t), "", nil)
	s.phase = phaseEvaluating

	s.Update(evaluatedMsg{Err: scoring.ErrInvalidInput})
	if s.phase != phaseFailed {
		t.Fatalf("phase = %d, want failed", s.phase)
	}
	if !strings.Contains(s.View(80, 24), "invalid input") {
		t.Error("expected error text in view")
	}

	_, cmd := press(s, digit('r'))
	if cmd == nil || s.phase != phaseEvaluating {
		t.Error("R should re-run the evaluation")
	}
}

func TestKeyHintsPerPhase(t *testing.T) {
	s := New(newTestService(t), "", nil)
	if len(s.KeyHints()) != 5 {
		t.Errorf("answering hints = %d, want 5", len(s.KeyHints()))
	}
	s.phase = phaseConfirmQuit
	if len(s.KeyHints()) != 2 {
		t.Errorf("confirm hints = %d, want 2", len(s.KeyHints()))
	}
}
