package assessment

import (
	"time"

	"github.com/abhisek/mindcheck/internal/guidance"
)

// Report is the JSON shape printed by `mindcheck assess --json`.
type Report struct {
	ID                  string                    `json:"id"`
	Label               string                    `json:"label,omitempty"`
	CreatedAt           time.Time                 `json:"created_at"`
	Final               string                    `json:"final"`
	Source              string                    `json:"source"`
	RuleVerdict         string                    `json:"rule_verdict"`
	ClassifierVerdict   string                    `json:"classifier_verdict,omitempty"`
	ClassifierAvailable bool                      `json:"classifier_available"`
	Safety              int                       `json:"safety"`
	Scores              map[string]int            `json:"scores"`
	Breakdown           []ReportCategory          `json:"breakdown"`
	Elevated            []string                  `json:"elevated"`
	Explanation         string                    `json:"explanation,omitempty"`
	Recommendations     *guidance.Recommendations `json:"recommendations,omitempty"`
	CrisisResources     []string                  `json:"crisis_resources,omitempty"`
	Disclaimer          string                    `json:"disclaimer"`
}

type ReportCategory struct {
	Name    string  `json:"name"`
	Title   string  `json:"title"`
	Score   int     `json:"score"`
	Max     int     `json:"max"`
	Percent float64 `json:"percent"`
}

// Report builds the printable summary. g may be nil when guidance was not
// requested; crisis lines are included only when the assessment calls for
// them.
func (a *Assessment) Report(g *guidance.Guidance, crisisLines []string) Report {
	r := Report{
		ID:                  a.ID.String(),
		Label:               a.Label,
		CreatedAt:           a.CreatedAt,
		Final:               string(a.Decision.Final),
		Source:              string(a.Decision.Source),
		RuleVerdict:         string(a.Decision.Rule),
		ClassifierVerdict:   string(a.Decision.Classifier),
		ClassifierAvailable: a.Decision.ClassifierAvailable,
		Safety:              a.Decision.Safety,
		Scores:              a.EventData().Scores,
		Elevated:            []string{},
		Disclaimer:          guidance.Disclaimer,
	}
	for _, c := range a.Breakdown {
		r.Breakdown = append(r.Breakdown, ReportCategory(c))
	}
	for _, e := range a.Result.Elevated {
		r.Elevated = append(r.Elevated, string(e.Condition))
	}
	if g != nil {
		r.Explanation = g.Explanation
		recs := g.Recommendations
		r.Recommendations = &recs
	}
	if a.CrisisResources {
		r.CrisisResources = crisisLines
	}
	return r
}
