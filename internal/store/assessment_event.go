package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var assessmentEventColumns = []string{
	colID, colSequence, colTimestamp,
	"assessment_id", "label", "responses", "scores",
	"rule_verdict", "classifier_verdict", "classifier_available",
	"final_verdict", "source", "safety", "crisis_shown",
}

// ErrAmbiguousID is returned by GetAssessment when a prefix matches more
// than one assessment.
var ErrAmbiguousID = errors.New("assessment ID prefix is ambiguous")

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	if data.AssessmentID == "" {
		return errors.New("assessment event requires an assessment ID")
	}

	responses, err := json.Marshal(data.Responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}
	scores, err := json.Marshal(data.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := sqlite.Insert(assessmentEventsTable).
		Columns(assessmentEventColumns[1:]...).
		Values(
			seqNum, time.Now().UTC(),
			data.AssessmentID, data.Label, string(responses), string(scores),
			data.RuleVerdict, data.ClassifierVerdict, data.ClassifierAvailable,
			data.FinalVerdict, data.Source, data.Safety, data.CrisisShown,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentEvent, error) {
	sel := sqlite.Select(assessmentEventColumns...).From(sqlite.Table(assessmentEventsTable))
	query, args := applyOpts(sel, opts).Query()
	return r.queryAssessments(ctx, query, args)
}

func (r *eventRepo) GetAssessment(ctx context.Context, idOrPrefix string) (*AssessmentEvent, error) {
	if idOrPrefix == "" {
		return nil, nil
	}

	query, args := sqlite.Select(assessmentEventColumns...).
		From(sqlite.Table(assessmentEventsTable)).
		Where(entsql.HasPrefix("assessment_id", idOrPrefix)).
		OrderBy(entsql.Desc(colSequence)).
		Limit(2).
		Query()

	found, err := r.queryAssessments(ctx, query, args)
	if err != nil {
		return nil, err
	}

	switch {
	case len(found) == 0:
		return nil, nil
	case len(found) == 1 || found[0].AssessmentID == idOrPrefix:
		return &found[0], nil
	case found[1].AssessmentID == idOrPrefix:
		return &found[1], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousID, idOrPrefix)
	}
}

func (r *eventRepo) queryAssessments(ctx context.Context, query string, args []any) ([]AssessmentEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assessment events: %w", err)
	}
	defer rows.Close()

	var events []AssessmentEvent
	for rows.Next() {
		e, err := scanAssessmentEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func scanAssessmentEvent(row rowScanner) (*AssessmentEvent, error) {
	var (
		e                 AssessmentEvent
		responses, scores sql.NullString
	)
	err := row.Scan(
		&e.ID, &e.Sequence, &e.Timestamp,
		&e.AssessmentID, &e.Label, &responses, &scores,
		&e.RuleVerdict, &e.ClassifierVerdict, &e.ClassifierAvailable,
		&e.FinalVerdict, &e.Source, &e.Safety, &e.CrisisShown,
	)
	if err != nil {
		return nil, fmt.Errorf("scan assessment event: %w", err)
	}

	if responses.Valid {
		if err := json.Unmarshal([]byte(responses.String), &e.Responses); err != nil {
			return nil, fmt.Errorf("decode responses of %s: %w", e.AssessmentID, err)
		}
	}
	if scores.Valid {
		if err := json.Unmarshal([]byte(scores.String), &e.Scores); err != nil {
			return nil, fmt.Errorf("decode scores of %s: %w", e.AssessmentID, err)
		}
	}
	return &e, nil
}
