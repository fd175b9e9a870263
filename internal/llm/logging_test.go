package llm

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindcheck/internal/store"
)

func openEventRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "llm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMockProvider(MockResponse{
		Content: []byte(`{"label":"Anxiety","confidence":0.9}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 12, TotalTokens: 132},
	})
	p := WithLogging(mock, ProviderMock, repo)

	ctx := WithPurpose(context.Background(), PurposeClassify)
	_, err := p.Generate(ctx, Request{
		System:   "You label screening answers.",
		Messages: []Message{{Role: RoleUser, Content: "Feeling nervous: Nearly every day"}},
		Schema:   labelSchema(),
	})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, ProviderMock, e.Provider)
	assert.Equal(t, "mock", e.Model)
	assert.Equal(t, PurposeClassify, e.Purpose)
	assert.Equal(t, 120, e.InputTokens)
	assert.Equal(t, 12, e.OutputTokens)
	assert.True(t, e.Success)
	assert.Contains(t, e.RequestBody, "[system]\nYou label screening answers.")
	assert.Contains(t, e.RequestBody, "[user]\nFeeling nervous: Nearly every day")
	assert.Contains(t, e.RequestBody, "[schema: test-label]")
	assert.Equal(t, `{"label":"Anxiety","confidence":0.9}`, e.ResponseBody)
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}})
	p := WithLogging(mock, ProviderOpenAI, repo)

	_, err := p.Generate(WithPurpose(context.Background(), PurposeExplain), Request{})
	require.Error(t, err)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{Purpose: PurposeExplain})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.True(t, strings.Contains(events[0].ErrorMessage, "connection refused"))
	assert.Empty(t, events[0].ResponseBody)
}

func TestLoggingProvider_RecordsAfterCancellation(t *testing.T) {
	repo := openEventRepo(t)
	p := WithLogging(NewMockProvider(MockText("late")), ProviderMock, repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Generate(ctx, Request{})
	require.ErrorIs(t, err, context.Canceled)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

// failingRepo rejects every append; the request itself must still succeed.
type failingRepo struct{ store.EventRepo }

func (failingRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return errors.New("disk full")
}

func TestLoggingProvider_LogFailureDoesNotFailRequest(t *testing.T) {
	p := WithLogging(NewMockProvider(MockText("fine")), ProviderMock, failingRepo{})

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "fine", resp.Text())
}
