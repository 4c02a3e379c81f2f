package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAppraisal = `{
  "ehr_potential": {"score": 13, "estimated_price": 12000, "estimated_hours": 120, "estimated_ehr": 100},
  "job_clarity": {"score": 14, "notes": "scope is clear"},
  "business_impact": {"score": 10, "outcomes": ["revenue"], "notes": ""},
  "skills_match": {"score": 12, "matched": ["webflow"]}
}`

func TestValidateJSONString_ValidAppraisal(t *testing.T) {
	err := ValidateJSONString(AppraisalSchema(), validAppraisal)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingDimension(t *testing.T) {
	doc := `{"ehr_potential": {"score": 13, "estimated_price": 1, "estimated_hours": 1}}`
	err := ValidateJSONString(AppraisalSchema(), doc)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateJSONString_ScoreOutOfRange(t *testing.T) {
	doc := `{
	  "ehr_potential": {"score": 99, "estimated_price": 1, "estimated_hours": 1},
	  "job_clarity": {"score": 14},
	  "business_impact": {"score": 10},
	  "skills_match": {"score": 12}
	}`
	err := ValidateJSONString(AppraisalSchema(), doc)
	assert.Error(t, err)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(AppraisalSchema(), `{not json`)
	assert.Error(t, err)
}
