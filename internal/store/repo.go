package store

import (
	"context"
	"database/sql"
	"time"
)

// QueryOpts filters and paginates event queries. Results are newest first.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only; empty matches all
}

// LLMRequestEventData is one model call as recorded by the logging provider.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLMRequestEventData.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates calls for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates calls for one model ID.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AssessmentEventData is the record of one evaluated questionnaire.
// Verdicts are stored as their display labels.
type AssessmentEventData struct {
	AssessmentID        string
	Label               string
	Responses           []int
	Scores              map[string]int
	RuleVerdict         string
	ClassifierVerdict   string
	ClassifierAvailable bool
	FinalVerdict        string
	Source              string
	Safety              int
	CrisisShown         bool
}

// AssessmentEvent is a stored AssessmentEventData.
type AssessmentEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AssessmentEventData
}

// EventRepo appends and reads domain events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	// GetLLMEvent returns nil, nil when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	AppendAssessment(ctx context.Context, data AssessmentEventData) error
	QueryAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentEvent, error)
	// GetAssessment accepts a full assessment ID or an unambiguous prefix
	// and returns nil, nil when nothing matches.
	GetAssessment(ctx context.Context, idOrPrefix string) (*AssessmentEvent, error)
}

// eventRepo implements EventRepo with ent's SQL builders.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}
