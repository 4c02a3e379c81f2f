// Package pipeline orchestrates batch scoring: every posting is scored,
// classified, and optionally persisted, with bounded concurrency.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/leadscore/internal/recommend"
	"github.com/jonathan/leadscore/internal/scoring"
	"github.com/jonathan/leadscore/internal/types"
)

// Store persists scored postings. Satisfied by *db.DB; nil disables
// persistence.
type Store interface {
	UpsertJob(ctx context.Context, job *types.JobPosting) error
}

// Options configures a batch run.
type Options struct {
	// Concurrency bounds the number of postings scored at once. Zero or
	// negative means 4.
	Concurrency int
	// Store receives every scored posting. Optional.
	Store Store
	// OnScored is called after each posting is classified, in completion
	// order. Optional.
	OnScored func(job *types.JobPosting, decision recommend.Decision)
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Scored      int
	Recommended int
	Excluded    int
}

// Runner scores batches of postings with a shared engine and settings.
type Runner struct {
	engine   *scoring.Engine
	settings *types.Settings
}

// NewRunner builds a batch runner.
func NewRunner(engine *scoring.Engine, settings *types.Settings) *Runner {
	return &Runner{engine: engine, settings: settings}
}

// Run scores and classifies every posting. Postings are mutated in place.
// Scoring itself never fails a batch; only persistence errors and context
// cancellation abort the run.
func (r *Runner) Run(ctx context.Context, jobs []*types.JobPosting, opts Options) (*Summary, error) {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex // protects summary and OnScored ordering
	summary := &Summary{}

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			r.engine.Score(gCtx, job, r.settings)
			decision := recommend.Apply(job, r.settings)

			if opts.Store != nil {
				if err := opts.Store.UpsertJob(gCtx, job); err != nil {
					return fmt.Errorf("failed to persist job %s: %w", job.ID, err)
				}
			}

			mu.Lock()
			summary.Scored++
			switch {
			case decision.Classification == types.Recommended:
				summary.Recommended++
			case decision.Pathway == recommend.PathwayHardExclusion:
				summary.Excluded++
			}
			if opts.OnScored != nil {
				opts.OnScored(job, decision)
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, nil
}
