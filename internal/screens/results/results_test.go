package results

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/classify"
	"github.com/abhisek/mindcheck/internal/fusion"
	"github.com/abhisek/mindcheck/internal/guidance"
	"github.com/abhisek/mindcheck/internal/questionnaire"
	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/scoring"
	"github.com/abhisek/mindcheck/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "intro" }
func (s *stubScreen) Title() string                           { return "Intro" }

func evaluate(t *testing.T, set map[int]int) (*assessment.Assessment, guidance.Guidance, []string) {
	t.Helper()
	svc, err := assessment.NewService(assessment.Options{
		Schema:     questionnaire.Default(),
		Classifier: classify.Fixed(scoring.Normal),
		Warnings:   io.Discard,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	r := make([]int, svc.Schema().Len())
	for i, v := range set {
		r[i] = v
	}
	a, err := svc.Evaluate(context.Background(), r)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return a, svc.Guide(context.Background(), a.Final()), svc.CrisisLines()
}

func fullView(s *ResultsScreen) string {
	return s.render(100)
}

func TestResults_NormalHasNoCrisisBox(t *testing.T) {
	a, g, lines := evaluate(t, nil)
	s := New(a, g, lines, nil)

	view := fullView(s)
	if !strings.Contains(view, "Screening result: Normal") {
		t.Error("expected Normal headline")
	}
	if strings.Contains(view, "If you are in crisis") {
		t.Error("crisis box should not be shown for Normal")
	}
	if !strings.Contains(view, "informational purposes") {
		t.Error("expected disclaimer")
	}
}

func TestResults_SafetyOverrideShowsCrisisLines(t *testing.T) {
	a, g, lines := evaluate(t, map[int]int{0: 3, 1: 3, 3: 2})
	s := New(a, g, lines, nil)

	view := fullView(s)
	if !strings.Contains(view, "Screening result: Suicidal") {
		t.Error("expected Suicidal headline")
	}
	if !strings.Contains(view, "If you are in crisis") {
		t.Error("expected crisis box")
	}
	for _, l := range lines {
		if !strings.Contains(view, l) {
			t.Errorf("crisis line %q missing", l)
		}
	}
	if !strings.Contains(view, "Category breakdown") {
		t.Error("expected breakdown")
	}
}

func TestResults_ViewClipsToHeight(t *testing.T) {
	a, g, lines := evaluate(t, nil)
	s := New(a, g, lines, nil)

	view := s.View(100, 10)
	if n := len(strings.Split(view, "\n")); n > 10 {
		t.Errorf("view has %d lines, want at most 10", n)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.offset != 1 {
		t.Errorf("offset = %d after scrolling down, want 1", s.offset)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.offset != 0 {
		t.Errorf("offset = %d, should not go below 0", s.offset)
	}
}

func TestResults_RetakeResetsToRestartScreen(t *testing.T) {
	a, g, lines := evaluate(t, nil)
	built := 0
	s := New(a, g, lines, func() screen.Screen {
		built++
		return &stubScreen{}
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on R")
	}
	reset, ok := cmd().(router.ResetMsg)
	if !ok {
		t.Fatalf("expected ResetMsg")
	}
	if reset.Then == nil || built != 1 {
		t.Error("retake should build a fresh restart screen")
	}
}

func TestResults_EscGoesHome(t *testing.T) {
	a, g, lines := evaluate(t, nil)
	s := New(a, g, lines, nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	reset, ok := cmd().(router.ResetMsg)
	if !ok || reset.Then != nil {
		t.Error("Esc should reset to the root screen")
	}
}

func TestSourceText(t *testing.T) {
	tests := []struct {
		name string
		d    fusion.Decision
		want string
	}{
		{"classifier", fusion.Fuse(scoring.Normal, scoring.Stress, scoring.ScoreBoard{}, scoring.DefaultThresholds()), "AI analysis"},
		{"rules over classifier", fusion.Fuse(scoring.Anxiety, scoring.Normal, scoring.ScoreBoard{}, scoring.DefaultThresholds()), "elevated pattern"},
		{"no classifier", fusion.Fuse(scoring.Normal, "", scoring.ScoreBoard{}, scoring.DefaultThresholds()), "not available"},
		{"safety", fusion.Fuse(scoring.Normal, scoring.Normal, scoring.ScoreBoard{scoring.SafetyKey: 3}, scoring.DefaultThresholds()), "self-harm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sourceText(tt.d); !strings.Contains(got, tt.want) {
				t.Errorf("sourceText() = %q, want it to mention %q", got, tt.want)
			}
		})
	}
}
