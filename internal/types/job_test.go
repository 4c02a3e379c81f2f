package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchText(t *testing.T) {
	job := &JobPosting{Title: "Client Portal", Description: "We need a Dashboard"}
	assert.Equal(t, "client portal we need a dashboard", job.SearchText())
}

func TestSearchText_EmptyFields(t *testing.T) {
	assert.Equal(t, "", (&JobPosting{}).SearchText())
}

func TestHasOpenBudget(t *testing.T) {
	assert.True(t, (&JobPosting{Budget: 0}).HasOpenBudget())
	assert.True(t, (&JobPosting{Budget: 500, BudgetType: BudgetNegotiable}).HasOpenBudget())
	assert.False(t, (&JobPosting{Budget: 500, BudgetType: BudgetFixed}).HasOpenBudget())
}

func TestConfidenceAtLeast(t *testing.T) {
	assert.True(t, ConfidenceHigh.AtLeast(ConfidenceMedium))
	assert.True(t, ConfidenceMedium.AtLeast(ConfidenceMedium))
	assert.False(t, ConfidenceLow.AtLeast(ConfidenceMedium))
	assert.True(t, ConfidenceLow.AtLeast(Confidence("")))
}

func TestScoreBreakdownSum(t *testing.T) {
	b := &ScoreBreakdown{
		ClientQuality:       ClientQualityScore{Subtotal: 20},
		KeywordsMatch:       15,
		ProfessionalSignals: ProfessionalSignalsScore{Subtotal: 8},
		BusinessImpact:      10,
		JobClarity:          13,
		EHRPotential:        13,
		RedFlags:            -4,
	}
	assert.Equal(t, 75.0, b.Sum())
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	assert.NoError(t, s.Validate())

	s.MinScore = 120
	assert.Error(t, s.Validate())
}

func TestKeywordListsAll(t *testing.T) {
	k := KeywordLists{
		WideNet: []string{"a"},
		Portals: []string{"b", "c"},
	}
	assert.Equal(t, []string{"a", "b", "c"}, k.All())
}
