package scoring

import (
	"context"

	"github.com/jonathan/leadscore/internal/types"
)

// ExternalScorer is the capability interface for the optional LLM-backed
// scorer. Implementations hide all transport and response-repair concerns;
// the engine only ever sees a well-formed result or an error. An error is a
// recoverable condition: the caller falls back to the rule-based scorers.
type ExternalScorer interface {
	Score(ctx context.Context, req ExternalRequest) (*ExternalResult, error)
}

// ExternalRequest carries the posting fields the external scorer is allowed
// to see.
type ExternalRequest struct {
	Title       string
	Description string
	Budget      float64
	BudgetType  types.BudgetType
	HourlyMin   float64
	HourlyMax   float64
}

// EHRAssessment is the external scorer's fair-market-value estimate. The
// scorer is asked to price the work at market rates, explicitly ignoring the
// client's stated budget.
type EHRAssessment struct {
	Score          float64 `json:"score"`
	EstimatedPrice float64 `json:"estimated_price"`
	EstimatedHours float64 `json:"estimated_hours"`
	EstimatedEHR   float64 `json:"estimated_ehr"`
}

// ClarityAssessment is the external scorer's view of how well-specified the
// posting is.
type ClarityAssessment struct {
	Score float64 `json:"score"`
	Notes string  `json:"notes,omitempty"`
}

// ImpactAssessment is the external scorer's view of the business outcomes at
// stake.
type ImpactAssessment struct {
	Score    float64  `json:"score"`
	Outcomes []string `json:"outcomes,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// SkillsAssessment is the external scorer's skills-fit estimate. It is
// informational; no dimension is replaced by it.
type SkillsAssessment struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched,omitempty"`
}

// ExternalResult is the structured response of a successful external scoring
// call. On success its three dimension scores replace the rule-based
// BusinessImpact, JobClarity, and EHRPotential; the other four dimensions
// are never externally scored.
type ExternalResult struct {
	EHRPotential   EHRAssessment     `json:"ehr_potential"`
	JobClarity     ClarityAssessment `json:"job_clarity"`
	BusinessImpact ImpactAssessment  `json:"business_impact"`
	SkillsMatch    SkillsAssessment  `json:"skills_match"`
}
