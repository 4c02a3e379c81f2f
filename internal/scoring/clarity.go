package scoring

import (
	"strings"

	"github.com/jonathan/leadscore/internal/types"
)

// Technical and clarity signal keyword lists. Each keyword counts once; the
// combined hit count maps through the score ladder.
var (
	technicalSignals = []string{
		"api", "database", "integration", "authentication", "responsive",
		"cms", "hosting", "migration", "frontend", "backend", "payment",
	}
	claritySignals = []string{
		"pages", "features", "deliverables", "scope", "requirements",
		"mockup", "wireframe", "design ready", "figma", "examples",
		"attached",
	}
)

// ScoreJobClarity counts technical and clarity signal hits in the posting
// and maps the total onto the 15-point ladder. Even a completely vague
// posting earns 3 points; clarity can only help, never disqualify on its own.
func ScoreJobClarity(job *types.JobPosting, enrich *types.Enrichment) float64 {
	text := job.SearchText()

	detail := types.ClarityDetail{}
	for _, kw := range technicalSignals {
		if strings.Contains(text, kw) {
			detail.TechnicalMatches++
		}
	}
	for _, kw := range claritySignals {
		if strings.Contains(text, kw) {
			detail.ClarityMatches++
		}
	}
	detail.Total = detail.TechnicalMatches + detail.ClarityMatches
	enrich.JobClarity = detail

	return clarityLadder(detail.Total)
}

func clarityLadder(total int) float64 {
	switch {
	case total >= 6:
		return 15
	case total >= 4:
		return 14
	case total >= 3:
		return 13
	case total >= 2:
		return 10
	case total >= 1:
		return 7
	default:
		return 3
	}
}
