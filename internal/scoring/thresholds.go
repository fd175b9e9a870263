package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Unreachable is the minimum used for the fallback Normal condition so that
// it is never elevated by score.
const Unreachable = math.MaxInt

// DefaultSafetyMinimum is the safety-item minimum used when a threshold table
// carries no Suicidal rule. The safety override is never skipped.
const DefaultSafetyMinimum = 2

// Rule is a single (condition, minimum score) pair.
type Rule struct {
	Condition Condition
	Min       int
}

// Thresholds is an ordered, immutable threshold table. Declaration order is
// the tie-break order when two elevated conditions share a score.
type Thresholds struct {
	rules []Rule
}

// NewThresholds builds a threshold table. It rejects unknown labels,
// duplicate conditions, negative minimums and a missing Suicidal rule.
func NewThresholds(rules ...Rule) (Thresholds, error) {
	var errs []string
	seen := make(map[Condition]bool, len(rules))
	for _, r := range rules {
		if !r.Condition.Known() {
			errs = append(errs, fmt.Sprintf("unknown condition %q", r.Condition))
		}
		if seen[r.Condition] {
			errs = append(errs, fmt.Sprintf("duplicate rule for %q", r.Condition))
		}
		seen[r.Condition] = true
		if r.Min < 0 {
			errs = append(errs, fmt.Sprintf("rule %q has negative minimum %d", r.Condition, r.Min))
		}
	}
	if !seen[Suicidal] {
		errs = append(errs, "missing rule for \"Suicidal\"")
	}
	if len(errs) > 0 {
		return Thresholds{}, fmt.Errorf("threshold table invalid:\n  %s", strings.Join(errs, "\n  "))
	}
	return Thresholds{rules: append([]Rule(nil), rules...)}, nil
}

// DefaultThresholds returns the built-in threshold table.
func DefaultThresholds() Thresholds {
	return Thresholds{rules: []Rule{
		{Condition: Depression, Min: 6},           // of 12
		{Condition: Suicidal, Min: 2},             // safety item alone
		{Condition: Bipolar, Min: 8},              // of 12
		{Condition: Anxiety, Min: 10},             // of 21
		{Condition: PersonalityDisorder, Min: 10}, // of 21
		{Condition: OCD, Min: 6},                  // of 6
		{Condition: Normal, Min: Unreachable},
	}}
}

// Rules returns a copy of the rules in declaration order.
func (t Thresholds) Rules() []Rule {
	return append([]Rule(nil), t.rules...)
}

// Min returns the minimum score for a condition.
func (t Thresholds) Min(c Condition) (int, bool) {
	for _, r := range t.rules {
		if r.Condition == c {
			return r.Min, true
		}
	}
	return 0, false
}

// SafetyMinimum returns the Suicidal minimum, falling back to
// DefaultSafetyMinimum for tables without one.
func (t Thresholds) SafetyMinimum() int {
	if m, ok := t.Min(Suicidal); ok {
		return m
	}
	return DefaultSafetyMinimum
}
