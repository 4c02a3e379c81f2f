package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/leadscore/internal/recommend"
	"github.com/jonathan/leadscore/internal/scoring"
	"github.com/jonathan/leadscore/internal/types"
)

var batchNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	mu   sync.Mutex
	ids  []string
	fail bool
}

func (f *fakeStore) UpsertJob(_ context.Context, job *types.JobPosting) error {
	if f.fail {
		return errors.New("connection refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, job.ID)
	return nil
}

func batchJobs() []*types.JobPosting {
	return []*types.JobPosting{
		{
			ID:          "good",
			Title:       "Client portal",
			Description: "We need a client portal with a dashboard for our team",
			Client:      types.ClientProfile{PaymentVerified: true, TotalSpent: 12000, TotalHires: 11},
			PostedAt:    batchNow.Add(-3 * time.Hour),
		},
		{
			ID:          "excluded",
			Title:       "Shopify theme tweaks",
			Description: "Customize our shopify store",
		},
		{
			ID:          "weak",
			Title:       "Quick fix",
			Description: "I need a cheap quick fix for my page",
			Client:      types.ClientProfile{PaymentVerified: false},
		},
	}
}

func testRunner() *Runner {
	engine := scoring.NewEngine(scoring.WithClock(func() time.Time { return batchNow }))
	return NewRunner(engine, types.DefaultSettings())
}

func TestRun_ScoresAndClassifiesEveryPosting(t *testing.T) {
	jobs := batchJobs()

	summary, err := testRunner().Run(context.Background(), jobs, Options{Concurrency: 2})

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Scored)
	assert.Equal(t, 1, summary.Excluded)
	for _, job := range jobs {
		require.NotNil(t, job.Score, "job %s not scored", job.ID)
		assert.NotEmpty(t, job.Classification, "job %s not classified", job.ID)
	}
}

func TestRun_PersistsEveryPosting(t *testing.T) {
	store := &fakeStore{}
	jobs := batchJobs()

	_, err := testRunner().Run(context.Background(), jobs, Options{Store: store})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"good", "excluded", "weak"}, store.ids)
}

func TestRun_StoreFailureAbortsBatch(t *testing.T) {
	store := &fakeStore{fail: true}

	_, err := testRunner().Run(context.Background(), batchJobs(), Options{Store: store})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist")
}

func TestRun_ProgressCallback(t *testing.T) {
	var decisions []recommend.Decision
	opts := Options{
		OnScored: func(_ *types.JobPosting, d recommend.Decision) {
			decisions = append(decisions, d)
		},
	}

	_, err := testRunner().Run(context.Background(), batchJobs(), opts)

	require.NoError(t, err)
	assert.Len(t, decisions, 3)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := testRunner().Run(ctx, batchJobs(), Options{})

	require.Error(t, err)
	assert.Less(t, summary.Scored, 3)
}

func TestRun_EmptyBatch(t *testing.T) {
	summary, err := testRunner().Run(context.Background(), nil, Options{})

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Scored)
}
