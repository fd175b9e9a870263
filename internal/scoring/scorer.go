package scoring

import (
	"fmt"

	"github.com/abhisek/mindcheck/internal/questionnaire"
)

// SafetyKey is the score board key holding the raw safety-item value.
const SafetyKey = string(Suicidal)

// ScoreBoard maps category names (plus SafetyKey) to summed scores.
type ScoreBoard map[string]int

// Safety returns the raw value of the safety-critical item.
func (b ScoreBoard) Safety() int {
	return b[SafetyKey]
}

// Elevation is a condition whose score met its threshold.
type Elevation struct {
	Condition Condition
	Score     int
	Min       int
}

// Result is the rule engine's output for one response vector.
type Result struct {
	Board ScoreBoard

	// Verdict is the highest-scoring elevated condition, or Normal.
	Verdict Condition

	// Elevated lists every elevated condition in threshold declaration order.
	Elevated []Elevation
}

// Validate checks a response vector against the schema: the length must
// equal the item count and every value must be on the 0-3 scale. A
// malformed schema is reported as invalid input too.
func Validate(responses []int, s *questionnaire.Schema) error {
	if s == nil {
		return &InputError{Index: -1, Reason: "no questionnaire schema"}
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, clash := s.Category(SafetyKey); clash {
		return fmt.Errorf("%w: category name %q is reserved for the safety item", ErrInvalidInput, SafetyKey)
	}
	if len(responses) != s.Len() {
		return &InputError{
			Index:  -1,
			Value:  len(responses),
			Reason: fmt.Sprintf("got %d responses, want %d", len(responses), s.Len()),
		}
	}
	for i, v := range responses {
		if !questionnaire.Valid(v) {
			return &InputError{Index: i, Value: v, Reason: "value outside [0,3]"}
		}
	}
	return nil
}

// Score sums responses per category, reads the safety item on its own and
// evaluates every threshold rule. The verdict is the elevated condition with
// the strictly highest score; ties go to the rule declared first. With no
// elevated condition the verdict is Normal.
func Score(responses []int, s *questionnaire.Schema, t Thresholds) (*Result, error) {
	if err := Validate(responses, s); err != nil {
		return nil, err
	}

	board := make(ScoreBoard, len(s.Categories)+1)
	for _, c := range s.Categories {
		sum := 0
		for _, idx := range c.Items {
			sum += responses[idx]
		}
		board[c.Name] = sum
	}
	board[SafetyKey] = responses[s.SafetyItem]

	res := &Result{Board: board, Verdict: Normal}
	best := -1
	for _, r := range t.rules {
		score, ok := board[string(r.Condition)]
		if !ok || score < r.Min {
			continue
		}
		res.Elevated = append(res.Elevated, Elevation{Condition: r.Condition, Score: score, Min: r.Min})
		if score > best {
			best = score
			res.Verdict = r.Condition
		}
	}

	return res, nil
}
