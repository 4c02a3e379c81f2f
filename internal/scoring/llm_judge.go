package scoring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/leadscore/internal/llm"
	"github.com/jonathan/leadscore/internal/prompts"
	"github.com/jonathan/leadscore/internal/schemas"
	"github.com/jonathan/leadscore/internal/types"
)

// LLMScorer implements ExternalScorer on top of an llm.Client. Every
// response is schema-validated before it is handed to the engine, so a
// malformed model reply surfaces as an ordinary scorer failure and the
// rule-based fallback takes over.
type LLMScorer struct {
	client llm.Client
}

// NewLLMScorer wraps an LLM client as an external scorer.
func NewLLMScorer(client llm.Client) *LLMScorer {
	return &LLMScorer{client: client}
}

// Score asks the model to appraise the posting at fair market value and
// parses the structured result.
func (s *LLMScorer) Score(ctx context.Context, req ExternalRequest) (*ExternalResult, error) {
	prompt := buildAppraisalPrompt(req)

	jsonResp, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}
	jsonResp = llm.CleanJSONBlock(jsonResp)

	if err := schemas.ValidateJSONString(schemas.AppraisalSchema(), jsonResp); err != nil {
		return nil, fmt.Errorf("appraisal response failed schema validation: %w", err)
	}

	var result ExternalResult
	if err := json.Unmarshal([]byte(jsonResp), &result); err != nil {
		return nil, fmt.Errorf("failed to parse appraisal response: %w", err)
	}

	// Derive the EHR when the model left it out.
	if result.EHRPotential.EstimatedEHR == 0 && result.EHRPotential.EstimatedHours > 0 {
		result.EHRPotential.EstimatedEHR = result.EHRPotential.EstimatedPrice / result.EHRPotential.EstimatedHours
	}

	return &result, nil
}

// buildAppraisalPrompt fills the appraisal template with the posting fields
// the scorer is allowed to see.
func buildAppraisalPrompt(req ExternalRequest) string {
	budget := "not stated"
	if req.Budget > 0 {
		budget = fmt.Sprintf("$%.0f", req.Budget)
	}

	budgetType := string(req.BudgetType)
	if budgetType == "" {
		budgetType = string(types.BudgetNegotiable)
	}

	hourlyRange := ""
	if req.HourlyMin > 0 || req.HourlyMax > 0 {
		hourlyRange = fmt.Sprintf(", hourly range $%.0f-$%.0f", req.HourlyMin, req.HourlyMax)
	}

	template := prompts.MustGet("scoring.json", "appraise-job")
	return prompts.Format(template, map[string]string{
		"Title":       req.Title,
		"Description": req.Description,
		"Budget":      budget,
		"BudgetType":  budgetType,
		"HourlyRange": hourlyRange,
	})
}
