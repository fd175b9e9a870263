// Package classify is the boundary to the external text classifier. The
// questionnaire answers are projected to prose and handed to a Classifier,
// which returns one label from a fixed universe or fails.
package classify

import (
	"context"
	"errors"

	"github.com/abhisek/mindcheck/internal/scoring"
)

// ErrUnavailable reports that no classifier verdict could be produced:
// the provider failed, timed out or answered outside the label universe.
// Callers treat it as an absent verdict, never as a fatal error.
var ErrUnavailable = errors.New("classifier unavailable")

// Classifier labels a projected answer text.
type Classifier interface {
	Classify(ctx context.Context, text string) (scoring.Condition, error)
}

// Func adapts a plain function to Classifier.
type Func func(ctx context.Context, text string) (scoring.Condition, error)

func (f Func) Classify(ctx context.Context, text string) (scoring.Condition, error) {
	return f(ctx, text)
}

// Fixed returns a Classifier that always answers c. Useful as a
// deterministic stand-in and for `assess --classifier-verdict`.
func Fixed(c scoring.Condition) Classifier {
	return Func(func(context.Context, string) (scoring.Condition, error) {
		return c, nil
	})
}

// Unavailable returns a Classifier that always fails with ErrUnavailable.
func Unavailable() Classifier {
	return Func(func(context.Context, string) (scoring.Condition, error) {
		return "", ErrUnavailable
	})
}

// Labels is the classifier's label universe. It is the rule engine's set
// minus OCD plus Stress.
func Labels() []scoring.Condition {
	return []scoring.Condition{
		scoring.Normal,
		scoring.Depression,
		scoring.Anxiety,
		scoring.Bipolar,
		scoring.PersonalityDisorder,
		scoring.Stress,
		scoring.Suicidal,
	}
}

// InUniverse reports whether c is one of Labels.
func InUniverse(c scoring.Condition) bool {
	for _, l := range Labels() {
		if l == c {
			return true
		}
	}
	return false
}
