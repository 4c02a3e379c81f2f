package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/leadscore/internal/types"
)

func TestEstimateJob_PortalTier(t *testing.T) {
	job := &types.JobPosting{
		Description: "we need a client portal for our team, dashboard included",
	}

	est := EstimateJob(job)

	// "client portal" (+3) and "dashboard" (+2) land in the $12k/120h rung.
	assert.Equal(t, 5, est.Complexity)
	assert.Equal(t, 12000.0, est.Price)
	assert.Equal(t, 120.0, est.Hours)
	assert.InDelta(t, 100.0, est.EHR, 0.01)
}

func TestEstimateJob_ExplicitBudgetWinsForPrice(t *testing.T) {
	job := &types.JobPosting{
		Description: "we need a client portal for our team",
		Budget:      5000,
	}

	est := EstimateJob(job)

	assert.Equal(t, 5000.0, est.Price)
	// Hours still come from the complexity ladder.
	assert.Equal(t, 80.0, est.Hours)
}

func TestEstimateJob_SmallBudgetIgnored(t *testing.T) {
	job := &types.JobPosting{
		Description: "we need a client portal for our team",
		Budget:      500,
	}

	est := EstimateJob(job)

	assert.NotEqual(t, 500.0, est.Price)
}

func TestEstimateJob_SimpleIndicatorsLowerTheEstimate(t *testing.T) {
	job := &types.JobPosting{
		Description: "simple one page site, nothing fancy",
	}

	est := EstimateJob(job)

	assert.Negative(t, est.Complexity)
	assert.Equal(t, 2000.0, est.Price)
	assert.Equal(t, 20.0, est.Hours)
}

func TestEstimateJob_EmptyDescription(t *testing.T) {
	est := EstimateJob(&types.JobPosting{})

	assert.Equal(t, 0, est.Complexity)
	assert.Equal(t, 2500.0, est.Price)
	assert.Equal(t, 30.0, est.Hours)
}

func TestEstimateJob_ComplexPlatformTopRung(t *testing.T) {
	job := &types.JobPosting{
		Description: "custom web application: a saas platform with a custom crm, " +
			"marketplace features, a dashboard and api integration",
	}

	est := EstimateJob(job)

	assert.GreaterOrEqual(t, est.Complexity, 12)
	assert.Equal(t, 35000.0, est.Price)
	assert.Equal(t, 300.0, est.Hours)
}
