// Package scoring implements the lead-qualification core: the seven
// dimension scorers, the keyword bonus system, the fallback price/hours
// estimator, the perfect-job multiplier, and the score aggregator. The
// optional external (LLM) scorer plugs in behind the ExternalScorer
// interface; when it is unavailable the rule-based scorers are authoritative.
package scoring

import (
	"strings"

	"github.com/jonathan/leadscore/internal/types"
)

// Complexity keyword weights for the fallback estimator. Summed weights map
// through the price and hours ladders below.
var complexityWeights = []struct {
	weight  int
	phrases []string
}{
	{4, []string{
		"saas platform", "custom crm", "custom erp", "multi-tenant",
		"marketplace", "complex platform", "custom web application",
	}},
	{3, []string{
		"custom web app", "client portal", "customer portal",
		"booking system", "web application", "internal tool",
	}},
	{2, []string{
		"dashboard", "ecommerce", "e-commerce", "online store",
		"api integration", "membership site", "user accounts",
	}},
	{1, []string{
		"cms", "redesign", "landing page", "seo", "migration",
		"integrations", "responsive",
	}},
	{-1, []string{
		"simple", "basic", "small", "quick", "one page", "one-page",
	}},
}

// minExplicitBudget is the stated budget above which the client's number is
// trusted as the price estimate regardless of complexity.
const minExplicitBudget = 1000

// Estimate holds the fallback price/hours/EHR projection for a posting.
type Estimate struct {
	Price      float64
	Hours      float64
	EHR        float64
	Complexity int
}

// EstimateJob computes the rule-based price and hours estimate used when the
// external scorer is unavailable. An explicitly stated budget of $1000 or
// more wins over the complexity-derived price; hours always come from the
// complexity ladder.
func EstimateJob(job *types.JobPosting) Estimate {
	text := job.SearchText()

	complexity := 0
	for _, group := range complexityWeights {
		for _, phrase := range group.phrases {
			if strings.Contains(text, phrase) {
				complexity += group.weight
			}
		}
	}

	price := priceForComplexity(complexity)
	if job.Budget >= minExplicitBudget {
		price = job.Budget
	}
	hours := hoursForComplexity(complexity)

	est := Estimate{Price: price, Hours: hours, Complexity: complexity}
	if hours > 0 {
		est.EHR = price / hours
	}
	return est
}

func priceForComplexity(complexity int) float64 {
	switch {
	case complexity >= 12:
		return 35000
	case complexity >= 8:
		return 20000
	case complexity >= 5:
		return 12000
	case complexity >= 3:
		return 8000
	case complexity >= 1:
		return 4500
	case complexity >= 0:
		return 2500
	default:
		return 2000
	}
}

func hoursForComplexity(complexity int) float64 {
	switch {
	case complexity >= 12:
		return 300
	case complexity >= 8:
		return 200
	case complexity >= 5:
		return 120
	case complexity >= 3:
		return 80
	case complexity >= 1:
		return 50
	case complexity >= 0:
		return 30
	default:
		return 20
	}
}
