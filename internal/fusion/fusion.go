// Package fusion reconciles the rule engine's verdict with the external
// classifier's verdict and applies the suicidal-ideation override.
package fusion

import "github.com/abhisek/mindcheck/internal/scoring"

// Source names the rule that produced a final label.
type Source string

const (
	SourceClassifier     Source = "classifier"
	SourceRuleEngine     Source = "rule-engine"
	SourceSafetyOverride Source = "safety-override"
)

// Decision is the fused verdict plus the inputs that produced it.
type Decision struct {
	Final  scoring.Condition
	Source Source

	Rule       scoring.Condition
	Classifier scoring.Condition

	// ClassifierAvailable is false when no classifier verdict was supplied.
	ClassifierAvailable bool

	// Safety is the raw value of the safety-critical item.
	Safety int
}

// Fuse combines the two verdicts.
//
// The classifier verdict is the default. When the classifier says Normal (or
// is absent) but the rule engine found an elevated condition, the rule
// verdict wins. Without a classifier verdict the result is attributed to
// the rule engine even when it is Normal. Last, and regardless of everything before it, a safety score
// at or above the Suicidal minimum forces Suicidal.
func Fuse(rule, classifier scoring.Condition, board scoring.ScoreBoard, thresholds scoring.Thresholds) Decision {
	d := Decision{
		Rule:                rule,
		Classifier:          classifier,
		ClassifierAvailable: classifier != "",
		Safety:              board.Safety(),
	}

	d.Final, d.Source = classifier, SourceClassifier
	if !d.ClassifierAvailable {
		// An absent classifier counts as Normal; the rule engine decides.
		d.Final, d.Source = scoring.Normal, SourceRuleEngine
	}
	if d.Final == scoring.Normal && rule != "" && rule != scoring.Normal {
		d.Final, d.Source = rule, SourceRuleEngine
	}

	if d.Safety >= thresholds.SafetyMinimum() {
		d.Final, d.Source = scoring.Suicidal, SourceSafetyOverride
	}

	return d
}
