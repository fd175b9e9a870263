package fusion

import "github.com/abhisek/mindcheck/internal/scoring"

// CrisisMinimum is the raw safety-item value from which crisis resources are
// shown alongside a Suicidal or Depression result.
const CrisisMinimum = 2

// ShowCrisisResources reports whether crisis hotline messaging must be shown:
// the final label is Suicidal or Depression and the safety item is at least
// CrisisMinimum.
func ShowCrisisResources(d Decision) bool {
	if d.Final != scoring.Suicidal && d.Final != scoring.Depression {
		return false
	}
	return d.Safety >= CrisisMinimum
}
