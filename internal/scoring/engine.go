package scoring

import (
	"context"
	"log"
	"time"

	"github.com/jonathan/leadscore/internal/signals"
	"github.com/jonathan/leadscore/internal/tags"
	"github.com/jonathan/leadscore/internal/types"
)

// defaultExternalTimeout bounds the external scorer call. Scoring must never
// block on an unavailable adapter.
const defaultExternalTimeout = 30 * time.Second

// Engine runs the full scoring pass for one posting: tag detection, signal
// detection, the fallback estimator, the seven dimension scorers, the
// optional external override, and aggregation. An Engine is safe for
// concurrent use: it holds no per-job state and its configuration is
// read-only after construction.
type Engine struct {
	external ExternalScorer
	taxonomy []tags.Definition
	timeout  time.Duration
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithExternalScorer attaches the optional LLM-backed scorer. When nil or
// failing, the rule-based scorers are authoritative.
func WithExternalScorer(s ExternalScorer) Option {
	return func(e *Engine) { e.external = s }
}

// WithTimeout overrides the external scorer call timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithClock overrides the engine clock, used by the recency scorer. Tests
// pass a fixed clock to make scoring fully deterministic.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an Engine with the static taxonomy and default timeout.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		taxonomy: tags.Taxonomy,
		timeout:  defaultExternalTimeout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score enriches the posting in place with diagnostics, a score breakdown,
// and the internal ranking score. It is a single pass: data-quality problems
// degrade dimensions to their floor, and an external scorer failure falls
// back to the rule-based scores. Settings are never mutated.
func (e *Engine) Score(ctx context.Context, job *types.JobPosting, settings *types.Settings) {
	text := job.SearchText()
	enrich := &types.Enrichment{}

	enrich.Tags = tags.Detect(text, e.taxonomy)

	sig := DetectedSignals{
		CustomApp: signals.DetectCustomApp(text),
		USBased:   signals.DetectUSBased(text),
		Dashboard: signals.DetectDashboard(text),
		Webflow:   signals.DetectWebflow(text),
		Portal:    signals.DetectPortal(text),
	}
	enrich.CustomAnalysis = sig.CustomApp
	enrich.USBasedAnalysis = sig.USBased

	est := EstimateJob(job)
	enrich.EstimatedPrice = est.Price
	enrich.EstimatedHours = est.Hours
	enrich.EstimatedEHR = est.EHR

	bonuses := CalculateBonuses(sig)
	enrich.KeywordBonuses = bonuses

	breakdown := &types.ScoreBreakdown{}
	breakdown.ClientQuality = ScoreClientQuality(job, e.now())
	breakdown.KeywordsMatch = ScoreKeywords(job, settings, bonuses, enrich)
	breakdown.ProfessionalSignals = ScoreProfessionalSignals(job, enrich)
	breakdown.BusinessImpact = ScoreBusinessImpact(job, enrich)
	breakdown.JobClarity = ScoreJobClarity(job, enrich)
	breakdown.EHRPotential = ScoreEHRPotential(enrich.EstimatedEHR)
	breakdown.RedFlags = ScoreRedFlags(job, enrich)

	if e.external != nil {
		e.applyExternalScores(ctx, job, breakdown, enrich)
	}

	Aggregate(breakdown, IsPerfectJob(sig), enrich)

	job.Enrichment = enrich
	job.Score = breakdown
}

// applyExternalScores calls the external scorer and, on success, replaces
// the three externally scorable dimensions and their diagnostics. Failures
// are logged and swallowed here; they never reach the caller.
func (e *Engine) applyExternalScores(ctx context.Context, job *types.JobPosting, breakdown *types.ScoreBreakdown, enrich *types.Enrichment) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	result, err := e.external.Score(callCtx, ExternalRequest{
		Title:       job.Title,
		Description: job.Description,
		Budget:      job.Budget,
		BudgetType:  job.BudgetType,
		HourlyMin:   job.HourlyBudgetMin,
		HourlyMax:   job.HourlyBudgetMax,
	})
	if err != nil {
		log.Printf("warning: external scorer unavailable for job %s, keeping rule-based scores: %v", job.ID, err)
		return
	}

	breakdown.BusinessImpact = clamp(result.BusinessImpact.Score, 0, types.MaxBusinessImpact)
	breakdown.JobClarity = clamp(result.JobClarity.Score, 0, types.MaxJobClarity)
	breakdown.EHRPotential = clamp(result.EHRPotential.Score, 0, types.MaxEHRPotential)

	if result.EHRPotential.EstimatedHours > 0 {
		enrich.EstimatedPrice = result.EHRPotential.EstimatedPrice
		enrich.EstimatedHours = result.EHRPotential.EstimatedHours
		enrich.EstimatedEHR = result.EHRPotential.EstimatedEHR
		if enrich.EstimatedEHR == 0 {
			enrich.EstimatedEHR = enrich.EstimatedPrice / enrich.EstimatedHours
		}
	}
	if len(result.BusinessImpact.Outcomes) > 0 {
		enrich.DetectedOutcomes = result.BusinessImpact.Outcomes
	}
	enrich.ClarityNotes = result.JobClarity.Notes
	enrich.OutcomeNotes = result.BusinessImpact.Notes
	enrich.ExternallyScored = true
}
