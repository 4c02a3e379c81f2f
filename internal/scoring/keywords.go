package scoring

import (
	"strings"

	"github.com/jonathan/leadscore/internal/types"
)

// Keyword match values: an exact phrase hit counts full, a loose hit (all
// words present but not contiguous) counts half. Match count scales by 5
// into the 15-point dimension.
const (
	exactMatchValue = 1.0
	looseMatchValue = 0.5
	keywordScale    = 5.0
)

// ScoreKeywords scores the posting against the operator's keyword lists and
// applies the specialty bonuses, re-capping at the dimension ceiling. The
// matched phrases are recorded on the enrichment record.
func ScoreKeywords(job *types.JobPosting, settings *types.Settings, bonuses []types.ScoreBonus, enrich *types.Enrichment) float64 {
	text := job.SearchText()

	matchValue := 0.0
	var matched []string
	for _, phrase := range settings.Keywords.All() {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		switch {
		case strings.Contains(text, phrase):
			matchValue += exactMatchValue
			matched = append(matched, phrase)
		case allWordsPresent(text, phrase):
			matchValue += looseMatchValue
			matched = append(matched, phrase)
		}
	}
	enrich.MatchedKeywords = matched

	score := matchValue * keywordScale
	if score > types.MaxKeywordsMatch {
		score = types.MaxKeywordsMatch
	}

	score += TotalBonus(bonuses)
	if score > types.MaxKeywordsMatch {
		score = types.MaxKeywordsMatch
	}
	return score
}

// allWordsPresent reports whether every word of a multi-word phrase appears
// somewhere in the text. Single-word phrases cannot match loosely; the exact
// check already covers them.
func allWordsPresent(text, phrase string) bool {
	words := strings.Fields(phrase)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}
