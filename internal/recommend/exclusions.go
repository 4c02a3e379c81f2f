// Package recommend implements the recommendation filter: the ordered
// decision procedure that turns a scored posting into a binary
// classification. Pathways are evaluated in order and the first match wins:
// hard exclusions, star criteria, the exceptional-quality bypass, then the
// normal threshold filters.
package recommend

import "github.com/jonathan/leadscore/internal/signals"

// nonDevPatterns mark postings that are not development work at all. Any hit
// is an unconditional rejection.
var nonDevPatterns = []string{
	"lead generation", "lead gen", "cold calling", "cold outreach",
	"appointment setting", "appointment setter", "recruiter", "recruiting",
	"staffing agency", "content writer", "content writing", "copywriting",
	"blog writing", "virtual assistant", "data entry", "sales rep",
}

// PlatformExclusion is one excluded platform. Patterns are matched with word
// boundaries so short codes cannot fire inside longer words. When any
// migration target is also mentioned, the posting is treated as a move off
// the platform and this exclusion alone is skipped; the remaining platforms
// are still checked.
type PlatformExclusion struct {
	Name             string
	Patterns         []string
	MigrationTargets []string
}

// excludedPlatforms is the static exclusion table, loaded once and treated
// as immutable.
var excludedPlatforms = []PlatformExclusion{
	{
		Name:             "Shopify",
		Patterns:         []string{"shopify"},
		MigrationTargets: []string{"webflow"},
	},
	{
		Name:             "Bubble",
		Patterns:         []string{"bubble io", "bubble"},
		MigrationTargets: []string{"webflow"},
	},
	{
		Name:             "GoHighLevel",
		Patterns:         []string{"gohighlevel", "go high level", "ghl"},
		MigrationTargets: []string{"webflow"},
	},
}

// matchNonDev returns the first non-development pattern found, or "".
func matchNonDev(padded string) string {
	for _, pattern := range nonDevPatterns {
		if signals.ContainsPhrase(padded, pattern) {
			return pattern
		}
	}
	return ""
}

// matchExcludedPlatform returns the first excluded platform the text
// triggers, honoring the per-platform migration carve-out, or nil.
func matchExcludedPlatform(padded string, exclusions []PlatformExclusion) *PlatformExclusion {
	for i := range exclusions {
		excl := &exclusions[i]
		if !containsAny(padded, excl.Patterns) {
			continue
		}
		if containsAny(padded, excl.MigrationTargets) {
			// Migration off this platform: skip it, keep checking the rest.
			continue
		}
		return excl
	}
	return nil
}

func containsAny(padded string, phrases []string) bool {
	for _, phrase := range phrases {
		if signals.ContainsPhrase(padded, phrase) {
			return true
		}
	}
	return false
}
