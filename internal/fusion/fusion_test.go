package fusion

import (
	"testing"

	"github.com/abhisek/mindcheck/internal/scoring"
)

func board(safety int) scoring.ScoreBoard {
	return scoring.ScoreBoard{"Depression": 6, scoring.SafetyKey: safety}
}

func TestFuse_ClassifierIsDefault(t *testing.T) {
	d := Fuse(scoring.Normal, scoring.Anxiety, board(0), scoring.DefaultThresholds())
	if d.Final != scoring.Anxiety {
		t.Errorf("final = %q, want Anxiety", d.Final)
	}
	if d.Source != SourceClassifier {
		t.Errorf("source = %q, want classifier", d.Source)
	}
}

func TestFuse_ClassifierWinsOverDifferentRuleVerdict(t *testing.T) {
	d := Fuse(scoring.Depression, scoring.Bipolar, board(0), scoring.DefaultThresholds())
	if d.Final != scoring.Bipolar {
		t.Errorf("final = %q, want Bipolar", d.Final)
	}
}

func TestFuse_RuleEngineCatchesNormalClassifier(t *testing.T) {
	d := Fuse(scoring.Depression, scoring.Normal, board(0), scoring.DefaultThresholds())
	if d.Final != scoring.Depression {
		t.Errorf("final = %q, want Depression", d.Final)
	}
	if d.Source != SourceRuleEngine {
		t.Errorf("source = %q, want rule-engine", d.Source)
	}
}

func TestFuse_BothNormal(t *testing.T) {
	d := Fuse(scoring.Normal, scoring.Normal, board(1), scoring.DefaultThresholds())
	if d.Final != scoring.Normal {
		t.Errorf("final = %q, want Normal", d.Final)
	}
}

func TestFuse_AbsentClassifierFallsBackToRule(t *testing.T) {
	d := Fuse(scoring.Anxiety, "", board(0), scoring.DefaultThresholds())
	if d.Final != scoring.Anxiety {
		t.Errorf("final = %q, want Anxiety", d.Final)
	}
	if d.ClassifierAvailable {
		t.Error("classifier should be reported unavailable")
	}

	if d.Source != SourceRuleEngine {
		t.Errorf("source = %q, want %q", d.Source, SourceRuleEngine)
	}

	d = Fuse(scoring.Normal, "", board(0), scoring.DefaultThresholds())
	if d.Final != scoring.Normal {
		t.Errorf("final = %q, want Normal", d.Final)
	}
	if d.Source != SourceRuleEngine {
		t.Errorf("source = %q, want %q when no classifier answered", d.Source, SourceRuleEngine)
	}
}

func TestFuse_SafetyOverrideAlwaysWins(t *testing.T) {
	labels := append([]scoring.Condition{""}, scoring.AllConditions()...)
	for safety := 0; safety <= 3; safety++ {
		for _, rule := range labels {
			for _, cls := range labels {
				d := Fuse(rule, cls, board(safety), scoring.DefaultThresholds())
				if safety >= 2 {
					if d.Final != scoring.Suicidal || d.Source != SourceSafetyOverride {
						t.Fatalf("safety=%d rule=%q classifier=%q: got %q via %q, want Suicidal via override",
							safety, rule, cls, d.Final, d.Source)
					}
					continue
				}
				if d.Source == SourceSafetyOverride {
					t.Fatalf("safety=%d rule=%q classifier=%q: override fired below threshold", safety, rule, cls)
				}
			}
		}
	}
}

func TestFuse_SafetyOverrideUsesThresholdTable(t *testing.T) {
	strict, err := scoring.NewThresholds(scoring.Rule{Condition: scoring.Suicidal, Min: 1})
	if err != nil {
		t.Fatalf("NewThresholds: %v", err)
	}
	d := Fuse(scoring.Normal, scoring.Normal, board(1), strict)
	if d.Final != scoring.Suicidal {
		t.Errorf("final = %q, want Suicidal", d.Final)
	}
}

func TestFuse_SafetyOverrideWithEmptyThresholds(t *testing.T) {
	d := Fuse(scoring.Normal, scoring.Normal, board(2), scoring.Thresholds{})
	if d.Final != scoring.Suicidal {
		t.Errorf("final = %q, want Suicidal even without a Suicidal rule", d.Final)
	}
}

func TestFuse_RecordsInputs(t *testing.T) {
	d := Fuse(scoring.OCD, scoring.Stress, board(1), scoring.DefaultThresholds())
	if d.Rule != scoring.OCD || d.Classifier != scoring.Stress || d.Safety != 1 || !d.ClassifierAvailable {
		t.Errorf("unexpected decision: %+v", d)
	}
}

func TestShowCrisisResources(t *testing.T) {
	tests := []struct {
		name   string
		final  scoring.Condition
		safety int
		want   bool
	}{
		{"suicidal high", scoring.Suicidal, 2, true},
		{"depression high", scoring.Depression, 3, true},
		{"depression low", scoring.Depression, 1, false},
		{"anxiety high", scoring.Anxiety, 3, false},
		{"normal high", scoring.Normal, 2, false},
		{"suicidal low", scoring.Suicidal, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShowCrisisResources(Decision{Final: tt.final, Safety: tt.safety})
			if got != tt.want {
				t.Errorf("ShowCrisisResources() = %v, want %v", got, tt.want)
			}
		})
	}
}
