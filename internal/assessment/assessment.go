package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindcheck/internal/fusion"
	"github.com/abhisek/mindcheck/internal/scoring"
	"github.com/abhisek/mindcheck/internal/store"
)

// Assessment is one evaluated questionnaire.
type Assessment struct {
	ID        uuid.UUID
	Label     string
	Responses []int
	// Text is the projection handed to the classifier.
	Text            string
	Result          *scoring.Result
	Decision        fusion.Decision
	Breakdown       []scoring.CategoryScore
	CrisisResources bool
	CreatedAt       time.Time
}

// Final is shorthand for the fused verdict.
func (a *Assessment) Final() scoring.Condition {
	return a.Decision.Final
}

// EventData converts the assessment to its stored form.
func (a *Assessment) EventData() store.AssessmentEventData {
	scores := make(map[string]int, len(a.Result.Board))
	for k, v := range a.Result.Board {
		scores[k] = v
	}
	return store.AssessmentEventData{
		AssessmentID:        a.ID.String(),
		Label:               a.Label,
		Responses:           append([]int(nil), a.Responses...),
		Scores:              scores,
		RuleVerdict:         string(a.Decision.Rule),
		ClassifierVerdict:   string(a.Decision.Classifier),
		ClassifierAvailable: a.Decision.ClassifierAvailable,
		FinalVerdict:        string(a.Decision.Final),
		Source:              string(a.Decision.Source),
		Safety:              a.Decision.Safety,
		CrisisShown:         a.CrisisResources,
	}
}
