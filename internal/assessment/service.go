// Package assessment runs the screening pipeline: score the answers, ask
// the classifier, fuse both verdicts and record the outcome. The decision
// itself is made by the pure scoring and fusion packages; this package
// only sequences them and isolates the collaborators' failures.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindcheck/internal/classify"
	"github.com/abhisek/mindcheck/internal/fusion"
	"github.com/abhisek/mindcheck/internal/guidance"
	"github.com/abhisek/mindcheck/internal/questionnaire"
	"github.com/abhisek/mindcheck/internal/scoring"
	"github.com/abhisek/mindcheck/internal/store"
)

// DefaultClassifyTimeout bounds a single classifier call.
const DefaultClassifyTimeout = 20 * time.Second

// Options configures a Service. Schema is required; everything else has a
// working default.
type Options struct {
	Schema     *questionnaire.Schema
	Thresholds scoring.Thresholds

	// Classifier defaults to one that is always unavailable, which leaves
	// the rule engine and the safety override in charge.
	Classifier classify.Classifier

	// Advisor defaults to guidance.StaticAdvisor.
	Advisor *guidance.Advisor

	// Events, when set, receives one event per evaluated assessment.
	Events store.EventRepo

	ClassifyTimeout time.Duration

	// Warnings receives non-fatal problems. Defaults to os.Stderr.
	Warnings io.Writer
}

// Service evaluates questionnaires. It holds no per-assessment state, so a
// restart is just another Evaluate call.
type Service struct {
	schema     *questionnaire.Schema
	thresholds scoring.Thresholds
	classifier classify.Classifier
	advisor    *guidance.Advisor
	events     store.EventRepo
	timeout    time.Duration
	warnings   io.Writer
	now        func() time.Time
	newID      func() uuid.UUID
}

func NewService(opts Options) (*Service, error) {
	if opts.Schema == nil {
		return nil, errors.New("assessment: questionnaire schema is required")
	}
	if err := opts.Schema.Validate(); err != nil {
		return nil, fmt.Errorf("assessment: %w", err)
	}

	s := &Service{
		schema:     opts.Schema,
		thresholds: opts.Thresholds,
		classifier: opts.Classifier,
		advisor:    opts.Advisor,
		events:     opts.Events,
		timeout:    opts.ClassifyTimeout,
		warnings:   opts.Warnings,
		now:        time.Now,
		newID:      uuid.New,
	}
	if len(s.thresholds.Rules()) == 0 {
		s.thresholds = scoring.DefaultThresholds()
	}
	if s.classifier == nil {
		s.classifier = classify.Unavailable()
	}
	if s.advisor == nil {
		s.advisor = guidance.StaticAdvisor()
	}
	if s.timeout <= 0 {
		s.timeout = DefaultClassifyTimeout
	}
	if s.warnings == nil {
		s.warnings = os.Stderr
	}
	return s, nil
}

func (s *Service) Schema() *questionnaire.Schema {
	return s.schema
}

func (s *Service) Thresholds() scoring.Thresholds {
	return s.thresholds
}

// Evaluate scores responses and produces the final verdict. Invalid input
// fails with scoring.ErrInvalidInput before the classifier is consulted.
// Classifier and event-log failures are reported as warnings only.
func (s *Service) Evaluate(ctx context.Context, responses []int) (*Assessment, error) {
	return s.EvaluateLabeled(ctx, "", responses)
}

// EvaluateLabeled is Evaluate with a free-form label stored alongside the
// assessment, e.g. "before therapy".
func (s *Service) EvaluateLabeled(ctx context.Context, label string, responses []int) (*Assessment, error) {
	res, err := scoring.Score(responses, s.schema, s.thresholds)
	if err != nil {
		return nil, err
	}

	text := questionnaire.Project(responses, s.schema)
	verdict := s.classify(ctx, text)
	decision := fusion.Fuse(res.Verdict, verdict, res.Board, s.thresholds)

	a := &Assessment{
		ID:              s.newID(),
		Label:           label,
		Responses:       append([]int(nil), responses...),
		Text:            text,
		Result:          res,
		Decision:        decision,
		Breakdown:       scoring.Breakdown(res.Board, s.schema),
		CrisisResources: fusion.ShowCrisisResources(decision),
		CreatedAt:       s.now().UTC(),
	}

	s.record(ctx, a)
	return a, nil
}

// classify returns the classifier verdict or "" when it is unavailable.
func (s *Service) classify(ctx context.Context, text string) scoring.Condition {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	verdict, err := s.classifier.Classify(cctx, text)
	switch {
	case err != nil:
		s.warnf("classifier unavailable, using rule engine only: %v", err)
		return ""
	case verdict != "" && !classify.InUniverse(verdict):
		s.warnf("classifier returned label %q outside its label set, ignoring it", verdict)
		return ""
	}
	return verdict
}

func (s *Service) record(ctx context.Context, a *Assessment) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendAssessment(context.WithoutCancel(ctx), a.EventData()); err != nil {
		s.warnf("failed to record assessment %s: %v", a.ID, err)
	}
}

// Guide returns explanation and recommendations for cond. It never fails;
// failing collaborators are replaced with static content.
func (s *Service) Guide(ctx context.Context, cond scoring.Condition) guidance.Guidance {
	return s.advisor.Guide(ctx, cond)
}

// CrisisLines are the hotline lines shown when Assessment.CrisisResources is set.
func (s *Service) CrisisLines() []string {
	return s.advisor.Catalog().CrisisLines()
}

func (s *Service) warnf(format string, args ...any) {
	fmt.Fprintf(s.warnings, "warning: "+format+"\n", args...)
}
