package scoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/leadscore/internal/llm"
	"github.com/jonathan/leadscore/internal/types"
)

type fakeLLMClient struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeLLMClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLMClient) Close() error { return nil }

const fakeAppraisal = `{
  "ehr_potential": {"score": 13, "estimated_price": 12000, "estimated_hours": 120, "estimated_ehr": 100},
  "job_clarity": {"score": 14, "notes": "clear scope"},
  "business_impact": {"score": 10, "outcomes": ["efficiency"], "notes": "ops tooling"},
  "skills_match": {"score": 12, "matched": ["webflow"]}
}`

func TestLLMScorer_ParsesValidResponse(t *testing.T) {
	client := &fakeLLMClient{response: fakeAppraisal}
	scorer := NewLLMScorer(client)

	result, err := scorer.Score(context.Background(), ExternalRequest{
		Title:       "Client portal build",
		Description: "portal with dashboard",
		Budget:      8000,
		BudgetType:  types.BudgetFixed,
	})

	require.NoError(t, err)
	assert.Equal(t, 13.0, result.EHRPotential.Score)
	assert.Equal(t, 12000.0, result.EHRPotential.EstimatedPrice)
	assert.Equal(t, "clear scope", result.JobClarity.Notes)
	assert.Equal(t, []string{"efficiency"}, result.BusinessImpact.Outcomes)
	assert.Equal(t, []string{"webflow"}, result.SkillsMatch.Matched)
}

func TestLLMScorer_StripsMarkdownFences(t *testing.T) {
	client := &fakeLLMClient{response: "```json\n" + fakeAppraisal + "\n```"}
	scorer := NewLLMScorer(client)

	result, err := scorer.Score(context.Background(), ExternalRequest{Title: "t", Description: "d"})

	require.NoError(t, err)
	assert.Equal(t, 14.0, result.JobClarity.Score)
}

func TestLLMScorer_DerivesEHRWhenOmitted(t *testing.T) {
	response := `{
	  "ehr_potential": {"score": 13, "estimated_price": 9000, "estimated_hours": 90},
	  "job_clarity": {"score": 14},
	  "business_impact": {"score": 10},
	  "skills_match": {"score": 12}
	}`
	scorer := NewLLMScorer(&fakeLLMClient{response: response})

	result, err := scorer.Score(context.Background(), ExternalRequest{Title: "t", Description: "d"})

	require.NoError(t, err)
	assert.InDelta(t, 100.0, result.EHRPotential.EstimatedEHR, 0.01)
}

func TestLLMScorer_GenerationErrorPropagates(t *testing.T) {
	scorer := NewLLMScorer(&fakeLLMClient{err: errors.New("deadline exceeded")})

	result, err := scorer.Score(context.Background(), ExternalRequest{Title: "t", Description: "d"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM generation failed")
}

func TestLLMScorer_RejectsSchemaViolations(t *testing.T) {
	scorer := NewLLMScorer(&fakeLLMClient{response: `{"job_clarity": {"score": 14}}`})

	result, err := scorer.Score(context.Background(), ExternalRequest{Title: "t", Description: "d"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestLLMScorer_PromptCarriesPostingFields(t *testing.T) {
	client := &fakeLLMClient{response: fakeAppraisal}
	scorer := NewLLMScorer(client)

	_, err := scorer.Score(context.Background(), ExternalRequest{
		Title:       "Webflow migration",
		Description: "move our marketing site",
		Budget:      4000,
		BudgetType:  types.BudgetFixed,
	})

	require.NoError(t, err)
	assert.Contains(t, client.lastPrompt, "Webflow migration")
	assert.Contains(t, client.lastPrompt, "move our marketing site")
	assert.Contains(t, client.lastPrompt, "$4000")
	assert.False(t, strings.Contains(client.lastPrompt, "{{."))
}

func TestLLMScorer_UnstatedBudget(t *testing.T) {
	client := &fakeLLMClient{response: fakeAppraisal}
	scorer := NewLLMScorer(client)

	_, err := scorer.Score(context.Background(), ExternalRequest{Title: "t", Description: "d"})

	require.NoError(t, err)
	assert.Contains(t, client.lastPrompt, "not stated")
}
