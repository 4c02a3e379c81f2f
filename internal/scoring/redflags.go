package scoring

import (
	"strings"

	"github.com/jonathan/leadscore/internal/types"
)

// redFlagPenalty is deducted per matched negative keyword, floored at the
// dimension minimum. The penalty is never positive.
const redFlagPenalty = -2

// Negative keyword categories: budget pressure, urgency, commodity framing,
// disqualifying platforms, and scope smells.
var redFlagCategories = []struct {
	name     string
	keywords []string
}{
	{"budget", []string{"low budget", "cheap", "tight budget", "small budget", "limited budget", "lowest bid"}},
	{"urgency", []string{"urgent", "asap", "immediately", "right away", "need this today"}},
	{"commodity", []string{"simple fix", "quick fix", "easy task", "small task", "5 minutes", "few minutes"}},
	{"platform", []string{"wix", "squarespace", "godaddy website"}},
	{"scope", []string{"unlimited revisions", "many projects to come", "test task first"}},
}

// ScoreRedFlags deducts 2 points per matched negative keyword across the
// five categories, floored at −10. The matched flags are recorded on the
// enrichment record as "category: keyword".
func ScoreRedFlags(job *types.JobPosting, enrich *types.Enrichment) float64 {
	text := job.SearchText()

	score := 0.0
	var flags []string
	for _, cat := range redFlagCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				score += redFlagPenalty
				flags = append(flags, cat.name+": "+kw)
			}
		}
	}
	enrich.DetectedRedFlags = flags

	if score < types.MinRedFlags {
		score = types.MinRedFlags
	}
	return score
}
