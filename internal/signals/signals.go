// Package signals implements the independent text classifiers that feed the
// keyword-match bonus system: custom-application work, US-based clients, and
// the narrower dashboard/Webflow/portal specialties. All detectors are pure
// functions over job text; invocation order does not matter.
package signals

import (
	"strings"
	"unicode"

	"github.com/jonathan/leadscore/internal/types"
)

// Custom-application phrase tiers, most specific first. The detector returns
// the highest tier with any match.
var (
	customTier3 = []string{
		"custom web application", "saas platform", "build a platform",
		"custom crm", "custom erp", "multi tenant",
	}
	customTier2 = []string{
		"custom web app", "web app", "internal tool", "booking system",
		"client portal", "customer portal", "custom software",
	}
	customTier1 = []string{
		"custom website", "web based", "database driven", "user accounts",
	}
)

// US-based cues. Timezone abbreviations are short, so all matching in this
// package is word-boundary based.
var (
	usLocationPhrases = []string{
		"us based", "based in the us", "located in the us", "usa based",
		"us clients only", "must be in the us", "united states", "u s",
	}
	usTimezonePhrases = []string{
		"est", "edt", "pst", "pdt", "cst", "cdt", "mst", "mdt",
		"eastern time", "pacific time", "central time", "mountain time",
		"us business hours",
	}
)

var (
	dashboardPhrases = []string{
		"dashboard", "admin panel", "kpi tracking", "reporting tool",
	}
	webflowPhrases = []string{
		"webflow", "webflow developer", "webflow migration",
	}
	portalPhrases = []string{
		"client portal", "customer portal", "member portal", "membership site",
	}
)

// DetectCustomApp classifies how strongly the text signals custom-application
// work. Tier 3 is the strongest.
func DetectCustomApp(text string) types.SignalVerdict {
	padded := Normalize(text)

	tiers := []struct {
		tier       int
		confidence types.Confidence
		phrases    []string
	}{
		{3, types.ConfidenceHigh, customTier3},
		{2, types.ConfidenceMedium, customTier2},
		{1, types.ConfidenceLow, customTier1},
	}

	for _, t := range tiers {
		if patterns := matchPhrases(padded, t.phrases); len(patterns) > 0 {
			return types.SignalVerdict{
				Detected:   true,
				Confidence: t.confidence,
				Tier:       t.tier,
				Patterns:   patterns,
			}
		}
	}
	return types.SignalVerdict{}
}

// DetectUSBased looks for explicit US-location phrases and US timezone
// mentions. Confidence increases when independent cues co-occur: location
// plus timezone is high, location alone medium, timezone alone low.
func DetectUSBased(text string) types.SignalVerdict {
	padded := Normalize(text)

	location := matchPhrases(padded, usLocationPhrases)
	timezone := matchPhrases(padded, usTimezonePhrases)

	switch {
	case len(location) > 0 && len(timezone) > 0:
		return types.SignalVerdict{
			Detected:   true,
			Confidence: types.ConfidenceHigh,
			Patterns:   append(location, timezone...),
		}
	case len(location) > 0:
		return types.SignalVerdict{
			Detected:   true,
			Confidence: types.ConfidenceMedium,
			Patterns:   location,
		}
	case len(timezone) > 0:
		return types.SignalVerdict{
			Detected:   true,
			Confidence: types.ConfidenceLow,
			Patterns:   timezone,
		}
	}
	return types.SignalVerdict{}
}

// DetectDashboard reports whether the posting asks for dashboard work.
func DetectDashboard(text string) types.SignalVerdict {
	return presenceVerdict(text, dashboardPhrases)
}

// DetectWebflow reports whether the posting asks for Webflow work.
func DetectWebflow(text string) types.SignalVerdict {
	return presenceVerdict(text, webflowPhrases)
}

// DetectPortal reports whether the posting asks for portal work.
func DetectPortal(text string) types.SignalVerdict {
	return presenceVerdict(text, portalPhrases)
}

func presenceVerdict(text string, phrases []string) types.SignalVerdict {
	patterns := matchPhrases(Normalize(text), phrases)
	if len(patterns) == 0 {
		return types.SignalVerdict{}
	}
	return types.SignalVerdict{
		Detected:   true,
		Confidence: types.ConfidenceHigh,
		Patterns:   patterns,
	}
}

// Normalize lowercases the text, maps every non-alphanumeric rune to a
// space, collapses runs, and pads with single spaces so phrase matching is
// always word-boundary based. "EST." matches "est"; "best" does not.
func Normalize(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return " " + strings.Join(strings.Fields(mapped), " ") + " "
}

// ContainsPhrase reports whether a normalized phrase appears in text already
// passed through Normalize.
func ContainsPhrase(padded, phrase string) bool {
	return phrase != "" && strings.Contains(padded, " "+phrase+" ")
}

// matchPhrases returns the phrases present in the normalized text.
func matchPhrases(padded string, phrases []string) []string {
	var matched []string
	for _, phrase := range phrases {
		if ContainsPhrase(padded, phrase) {
			matched = append(matched, phrase)
		}
	}
	return matched
}
