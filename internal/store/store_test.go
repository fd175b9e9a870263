package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mindcheck.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{llmEventsTable, assessmentEventsTable, "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}

func TestReopenKeepsSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindcheck.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "classify", Success: true}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "explain", Success: true}))

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(2), events[0].Sequence)
	assert.Equal(t, int64(1), events[1].Sequence)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := range 5 {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}
}

func TestLLMEvents_AppendQueryGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	inputs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "classify", InputTokens: 100, OutputTokens: 10, LatencyMs: 300, Success: true,
			RequestBody: "[user]\nFeeling down: Several days", ResponseBody: `{"label":"Normal","confidence":0.8}`},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "explain", InputTokens: 50, OutputTokens: 200, LatencyMs: 900, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "classify", LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
	}
	for _, in := range inputs {
		require.NoError(t, repo.AppendLLMRequest(ctx, in))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "rate limited", all[0].ErrorMessage, "newest first")
	assert.False(t, all[0].Success)
	assert.WithinDuration(t, time.Now(), all[0].Timestamp, time.Minute)

	classify, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "classify"})
	require.NoError(t, err)
	assert.Len(t, classify, 2)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1, Before: 3})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "explain", limited[0].Purpose)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: 1})
	require.NoError(t, err)
	assert.Len(t, after, 2)

	first := all[2]
	got, err := repo.GetLLMEvent(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, inputs[0].RequestBody, got.RequestBody)
	assert.Equal(t, inputs[0].ResponseBody, got.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, in := range []LLMRequestEventData{
		{Model: "gpt-4o-mini", Purpose: "classify", InputTokens: 100, OutputTokens: 10, LatencyMs: 200, Success: true},
		{Model: "gpt-4o-mini", Purpose: "classify", InputTokens: 300, OutputTokens: 30, LatencyMs: 400, Success: true},
		{Model: "gemini-2.0-flash", Purpose: "strategies", InputTokens: 80, OutputTokens: 120, LatencyMs: 600, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, in))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	assert.Equal(t, []PurposeUsage{
		{Purpose: "classify", Calls: 2, InputTokens: 400, OutputTokens: 40, AvgLatencyMs: 300},
		{Purpose: "strategies", Calls: 1, InputTokens: 80, OutputTokens: 120, AvgLatencyMs: 600},
	}, byPurpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ModelUsage{
		{Model: "gemini-2.0-flash", Calls: 1, InputTokens: 80, OutputTokens: 120},
		{Model: "gpt-4o-mini", Calls: 2, InputTokens: 400, OutputTokens: 40},
	}, byModel)
}

func TestLLMUsage_Empty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.EventRepo().LLMUsageByPurpose(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func sampleAssessment(id string) AssessmentEventData {
	return AssessmentEventData{
		AssessmentID:        id,
		Label:               "after exams",
		Responses:           []int{3, 3, 0, 2},
		Scores:              map[string]int{"Depression": 8, "Suicidal": 2},
		RuleVerdict:         "Depression",
		ClassifierVerdict:   "Normal",
		ClassifierAvailable: true,
		FinalVerdict:        "Suicidal",
		Source:              "safety-override",
		Safety:              2,
		CrisisShown:         true,
	}
}

func TestAssessmentEvents_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAssessment(ctx, sampleAssessment("3f2a9c1e-0000-4000-8000-000000000001")))
	require.NoError(t, repo.AppendAssessment(ctx, sampleAssessment("7b1d2e3f-0000-4000-8000-000000000002")))

	list, err := repo.QueryAssessments(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "7b1d2e3f-0000-4000-8000-000000000002", list[0].AssessmentID)

	got, err := repo.GetAssessment(ctx, "3f2a")
	require.NoError(t, err)
	require.NotNil(t, got)
	want := sampleAssessment("3f2a9c1e-0000-4000-8000-000000000001")
	assert.Equal(t, want, got.AssessmentEventData)
	assert.Equal(t, int64(1), got.Sequence)

	none, err := repo.GetAssessment(ctx, "ffff")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestAssessmentEvents_AmbiguousPrefix(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAssessment(ctx, sampleAssessment("abc-1")))
	require.NoError(t, repo.AppendAssessment(ctx, sampleAssessment("abc-2")))

	_, err := repo.GetAssessment(ctx, "abc")
	assert.True(t, errors.Is(err, ErrAmbiguousID))

	exact, err := repo.GetAssessment(ctx, "abc-1")
	require.NoError(t, err)
	require.NotNil(t, exact)
	assert.Equal(t, "abc-1", exact.AssessmentID)
}

func TestAssessmentEvents_RequiresID(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendAssessment(context.Background(), AssessmentEventData{})
	assert.Error(t, err)
}

func TestAssessmentEvents_DuplicateIDRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAssessment(ctx, sampleAssessment("dup")))
	assert.Error(t, repo.AppendAssessment(ctx, sampleAssessment("dup")))
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "classify", Success: true}))
	require.NoError(t, repo.AppendAssessment(ctx, sampleAssessment("seq")))

	a, err := repo.GetAssessment(ctx, "seq")
	require.NoError(t, err)
	assert.Equal(t, int64(2), a.Sequence)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "x.db")
		t.Setenv("MINDCHECK_DB", want)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.DirExists(t, filepath.Dir(want))
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("MINDCHECK_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "mindcheck", "mindcheck.db"), got)
	})
}
