// Package pricing turns a scored posting into a phased pricing proposal. It
// is a downstream consumer of the scoring core: deterministic given the
// posting's score breakdown and enrichment record.
package pricing

import (
	"errors"
	"math"

	"github.com/jonathan/leadscore/internal/types"
)

// ErrNotScored is returned when a proposal is requested for a posting the
// engine has not scored yet.
var ErrNotScored = errors.New("pricing: posting has not been scored")

// Tier is the proposal complexity tier.
type Tier string

// Complexity tiers.
const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Complexity bonus signals: each adds one point to the tier score.
const (
	perfectClarityScore = 15
	highEHRThreshold    = 100
	teamLanguageFloor   = 3
)

// Tier thresholds over the complexity score.
const (
	highTierFloor   = 4
	mediumTierFloor = 2
)

// Config holds the operator-tunable pricing knobs.
type Config struct {
	// ThreePhaseThreshold is the total value at which a fixed-price proposal
	// splits into three phases instead of two.
	ThreePhaseThreshold float64
	// FMVMultiplier is applied to high-tier fixed-price totals.
	FMVMultiplier float64
	// RoundIncrement rounds every amount to its nearest multiple.
	RoundIncrement float64
}

// DefaultConfig returns the standard pricing knobs.
func DefaultConfig() Config {
	return Config{
		ThreePhaseThreshold: 10000,
		FMVMultiplier:       1.15,
		RoundIncrement:      250,
	}
}

// Hourly rate bands per tier, dollars per hour.
var hourlyBands = map[Tier][2]float64{
	TierLow:    {75, 95},
	TierMedium: {95, 120},
	TierHigh:   {120, 150},
}

// Phase is one stage of a fixed-price breakdown.
type Phase struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

// Proposal is the pricing recommendation for one posting.
type Proposal struct {
	Tier            Tier    `json:"tier"`
	ComplexityScore int     `json:"complexity_score"`
	Hourly          bool    `json:"hourly"`
	HourlyMin       float64 `json:"hourly_min,omitempty"`
	HourlyMax       float64 `json:"hourly_max,omitempty"`
	Phases          []Phase `json:"phases,omitempty"`
	TotalValue      float64 `json:"total_value"`
}

// BuildProposal builds the proposal for a scored posting: hourly band for
// hourly postings, otherwise a 2-or-3-phase fixed-price breakdown from the
// price estimate, with the fair-market-value multiplier on high-tier work
// and every amount rounded to the configured increment.
func BuildProposal(job *types.JobPosting, cfg Config) (*Proposal, error) {
	if job.Score == nil || job.Enrichment == nil {
		return nil, ErrNotScored
	}

	score := complexityScore(job)
	tier := tierFor(score)

	if job.BudgetType == types.BudgetHourly {
		band := hourlyBands[tier]
		return &Proposal{
			Tier:            tier,
			ComplexityScore: score,
			Hourly:          true,
			HourlyMin:       band[0],
			HourlyMax:       band[1],
			TotalValue:      job.Enrichment.EstimatedPrice,
		}, nil
	}

	total := job.Enrichment.EstimatedPrice
	if tier == TierHigh {
		total *= cfg.FMVMultiplier
	}
	total = roundTo(total, cfg.RoundIncrement)

	return &Proposal{
		Tier:            tier,
		ComplexityScore: score,
		Phases:          splitPhases(total, total >= cfg.ThreePhaseThreshold, cfg.RoundIncrement),
		TotalValue:      total,
	}, nil
}

// complexityScore combines the overall score with the bonus signals: perfect
// clarity, high EHR, expert level, and team language each add a point.
func complexityScore(job *types.JobPosting) int {
	score := 0
	switch {
	case job.Score.Total >= 80:
		score = 3
	case job.Score.Total >= 65:
		score = 2
	case job.Score.Total >= 50:
		score = 1
	}

	if job.Score.JobClarity == perfectClarityScore {
		score++
	}
	if job.Enrichment.EstimatedEHR >= highEHRThreshold {
		score++
	}
	if job.ExperienceLevel == types.ExperienceExpert {
		score++
	}
	if job.Score.ProfessionalSignals.WeLanguage >= teamLanguageFloor {
		score++
	}
	return score
}

func tierFor(score int) Tier {
	switch {
	case score >= highTierFloor:
		return TierHigh
	case score >= mediumTierFloor:
		return TierMedium
	default:
		return TierLow
	}
}

// splitPhases builds the fixed-price breakdown. The final phase absorbs the
// rounding remainder so the phases always sum to the total.
func splitPhases(total float64, threePhases bool, increment float64) []Phase {
	type split struct {
		name    string
		percent float64
	}

	var splits []split
	if threePhases {
		splits = []split{
			{"Discovery & Design", 30},
			{"Build", 40},
			{"Launch & Polish", 30},
		}
	} else {
		splits = []split{
			{"Design & Build", 60},
			{"Launch", 40},
		}
	}

	phases := make([]Phase, len(splits))
	allocated := 0.0
	for i, s := range splits {
		amount := roundTo(total*s.percent/100, increment)
		if i == len(splits)-1 {
			amount = total - allocated
		}
		allocated += amount
		phases[i] = Phase{Name: s.name, Percent: s.percent, Amount: amount}
	}
	return phases
}

func roundTo(v, increment float64) float64 {
	if increment <= 0 {
		return v
	}
	return math.Round(v/increment) * increment
}
