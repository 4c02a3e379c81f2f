package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/leadscore/internal/types"
)

// Business impact point scales.
const (
	outcomeCategoryPoints = 5
	businessContextPoints = 2
	timelinePoints        = 1
)

// Outcome categories. Each category counts once no matter how many of its
// keywords hit.
var outcomeCategories = []struct {
	name     string
	keywords []string
}{
	{"revenue", []string{"revenue", "sales", "conversion", "leads", "roi", "bookings"}},
	{"efficiency", []string{"efficiency", "streamline", "automate", "save time", "reduce manual", "manual work"}},
	{"growth", []string{"growth", "scale", "expand", "grow our", "growing"}},
	{"metrics", []string{"metrics", "kpi", "analytics", "tracking", "measure"}},
}

var businessContextPhrases = []string{
	"our business", "business goals", "business growth", "bottom line",
	"business owner",
}

var timelinePhrases = []string{
	"timeline", "deadline", "launch date", "by end of", "within weeks",
	"go live",
}

// Technical-only hiring language: a posting that shops for a named skill set
// with no business outcome in sight. hirePattern covers "need a React
// developer" and its variants.
var (
	hirePattern = regexp.MustCompile(`(?:need|needs|looking for|hiring|seeking|want)(?:\s+an?)?(?:\s+[a-z0-9.+#/-]+){0,3}\s+(?:developer|programmer|coder|engineer)`)

	technicalOnlyPhrases = []string{
		"must know", "must have experience", "developer needed",
		"programmer needed", "proficient in",
	}
)

// ScoreBusinessImpact scores how much the posting talks about outcomes
// rather than technology. The hard override: technical-only hiring language
// with zero outcome categories forces the score to 0 regardless of the other
// points, and flags the posting.
func ScoreBusinessImpact(job *types.JobPosting, enrich *types.Enrichment) float64 {
	text := job.SearchText()

	score := 0.0
	var outcomes []string
	for _, cat := range outcomeCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				score += outcomeCategoryPoints
				outcomes = append(outcomes, cat.name)
				break
			}
		}
	}
	enrich.DetectedOutcomes = outcomes

	if isTechnicalOnly(text) && len(outcomes) == 0 {
		enrich.IsTechnicalOnly = true
		return 0
	}

	for _, phrase := range businessContextPhrases {
		if strings.Contains(text, phrase) {
			score += businessContextPoints
			break
		}
	}
	for _, phrase := range timelinePhrases {
		if strings.Contains(text, phrase) {
			score += timelinePoints
			break
		}
	}

	if score > types.MaxBusinessImpact {
		score = types.MaxBusinessImpact
	}
	return score
}

func isTechnicalOnly(text string) bool {
	if hirePattern.MatchString(text) {
		return true
	}
	for _, phrase := range technicalOnlyPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
