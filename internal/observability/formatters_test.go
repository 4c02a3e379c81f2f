package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/leadscore/internal/recommend"
	"github.com/jonathan/leadscore/internal/types"
)

func TestPrintScoreBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobPosting{
		Title: "Client portal build",
		Score: &types.ScoreBreakdown{
			ClientQuality: types.ClientQualityScore{Subtotal: 21},
			KeywordsMatch: 12.5,
			JobClarity:    13,
			Total:         74.5,
		},
	}

	p.PrintScoreBreakdown(job)
	output := buf.String()

	assert.Contains(t, output, "SCORE BREAKDOWN")
	assert.Contains(t, output, "Client portal build")
	assert.Contains(t, output, "21.0")
	assert.Contains(t, output, "12.5")
	assert.Contains(t, output, "74.5")
}

func TestPrintScoreBreakdown_PerfectJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobPosting{
		Title: "SaaS platform",
		Score: &types.ScoreBreakdown{Total: 100},
		Enrichment: &types.Enrichment{
			IsPerfectJob:  true,
			InternalScore: 106.8,
		},
	}

	p.PrintScoreBreakdown(job)
	output := buf.String()

	assert.Contains(t, output, "perfect job")
	assert.Contains(t, output, "106.8")
}

func TestPrintScoreBreakdown_Unscored(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(&types.JobPosting{Title: "unscored"})

	assert.Empty(t, buf.String())
}

func TestPrintEnrichment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	enrich := &types.Enrichment{
		EstimatedPrice: 12000,
		EstimatedHours: 120,
		EstimatedEHR:   100,
		Tags:           []string{"Client Portal", "Webflow"},
		KeywordBonuses: []types.ScoreBonus{
			{Label: "custom application work", Points: 8},
		},
		DetectedRedFlags: []string{"urgency: asap"},
	}

	p.PrintEnrichment(enrich)
	output := buf.String()

	assert.Contains(t, output, "ENRICHMENT")
	assert.Contains(t, output, "$12000")
	assert.Contains(t, output, "Client Portal, Webflow")
	assert.Contains(t, output, "custom application work")
	assert.Contains(t, output, "urgency: asap")
}

func TestPrintEnrichment_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEnrichment(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDecision(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobPosting{Title: "Portal build"}
	decision := recommend.Decision{
		Classification: types.Recommended,
		Pathway:        recommend.PathwayStarCriteria,
		Reason:         "open budget, team language, high-value estimate, trustworthy rating",
	}

	p.PrintDecision(job, decision)
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDATION")
	assert.Contains(t, output, "recommended")
	assert.Contains(t, output, "star_criteria")
}
