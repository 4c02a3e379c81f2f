package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/leadscore/internal/types"
)

func pricedJob(total, ehr, price float64) *types.JobPosting {
	return &types.JobPosting{
		BudgetType: types.BudgetFixed,
		Score: &types.ScoreBreakdown{
			Total: total,
		},
		Enrichment: &types.Enrichment{
			EstimatedPrice: price,
			EstimatedEHR:   ehr,
		},
	}
}

func TestBuildProposal_UnscoredPosting(t *testing.T) {
	_, err := BuildProposal(&types.JobPosting{}, DefaultConfig())
	assert.ErrorIs(t, err, ErrNotScored)
}

func TestComplexityScore_BaseAndBonuses(t *testing.T) {
	job := pricedJob(82, 120, 20000)
	job.Score.JobClarity = 15
	job.Score.ProfessionalSignals.WeLanguage = 5
	job.ExperienceLevel = types.ExperienceExpert

	p, err := BuildProposal(job, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, 7, p.ComplexityScore) // 3 base + all four bonuses
	assert.Equal(t, TierHigh, p.Tier)
}

func TestBuildProposal_TierLadder(t *testing.T) {
	cases := []struct {
		name  string
		total float64
		want  Tier
	}{
		{"low", 40, TierLow},
		{"medium", 66, TierMedium},
		{"high via bonuses", 82, TierMedium}, // base 3 alone is not high
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := pricedJob(tc.total, 80, 6000)
			p, err := BuildProposal(job, DefaultConfig())
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Tier)
		})
	}
}

func TestBuildProposal_HourlyBand(t *testing.T) {
	job := pricedJob(82, 120, 20000)
	job.BudgetType = types.BudgetHourly
	job.Score.JobClarity = 15
	job.Score.ProfessionalSignals.WeLanguage = 5

	p, err := BuildProposal(job, DefaultConfig())

	require.NoError(t, err)
	assert.True(t, p.Hourly)
	assert.Equal(t, TierHigh, p.Tier)
	assert.Equal(t, 120.0, p.HourlyMin)
	assert.Equal(t, 150.0, p.HourlyMax)
	assert.Empty(t, p.Phases)
	assert.Equal(t, 20000.0, p.TotalValue)
}

func TestBuildProposal_HourlyLowTierBand(t *testing.T) {
	job := pricedJob(40, 50, 3000)
	job.BudgetType = types.BudgetHourly

	p, err := BuildProposal(job, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, 75.0, p.HourlyMin)
	assert.Equal(t, 95.0, p.HourlyMax)
}

func TestBuildProposal_HighTierGetsMarketUplift(t *testing.T) {
	job := pricedJob(82, 120, 12000)
	job.Score.JobClarity = 15 // base 3 + clarity + EHR = 5, high tier

	p, err := BuildProposal(job, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, TierHigh, p.Tier)
	// 12000 * 1.15 = 13800, rounded to the nearest 250.
	assert.Equal(t, 13750.0, p.TotalValue)
}

func TestBuildProposal_MediumTierNoUplift(t *testing.T) {
	job := pricedJob(66, 80, 8000)

	p, err := BuildProposal(job, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, TierMedium, p.Tier)
	assert.Equal(t, 8000.0, p.TotalValue)
}

func TestBuildProposal_TwoPhasesBelowThreshold(t *testing.T) {
	job := pricedJob(66, 80, 8000)

	p, err := BuildProposal(job, DefaultConfig())

	require.NoError(t, err)
	require.Len(t, p.Phases, 2)
	assert.Equal(t, "Design & Build", p.Phases[0].Name)
	assert.Equal(t, "Launch", p.Phases[1].Name)
	assert.Equal(t, phaseSum(p.Phases), p.TotalValue)
}

func TestBuildProposal_ThreePhasesAtThreshold(t *testing.T) {
	job := pricedJob(66, 80, 12000)

	p, err := BuildProposal(job, DefaultConfig())

	require.NoError(t, err)
	require.Len(t, p.Phases, 3)
	assert.Equal(t, "Discovery & Design", p.Phases[0].Name)
	assert.Equal(t, "Build", p.Phases[1].Name)
	assert.Equal(t, "Launch & Polish", p.Phases[2].Name)
	assert.Equal(t, phaseSum(p.Phases), p.TotalValue)
}

func TestBuildProposal_RoundsToIncrement(t *testing.T) {
	job := pricedJob(66, 80, 12100)

	p, err := BuildProposal(job, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, 12000.0, p.TotalValue)
	for _, phase := range p.Phases {
		assert.Zero(t, int64(phase.Amount)%250, "phase %s not rounded", phase.Name)
	}
}

func phaseSum(phases []Phase) float64 {
	sum := 0.0
	for _, p := range phases {
		sum += p.Amount
	}
	return sum
}
