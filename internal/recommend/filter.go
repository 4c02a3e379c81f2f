package recommend

import (
	"fmt"

	"github.com/jonathan/leadscore/internal/signals"
	"github.com/jonathan/leadscore/internal/types"
)

// Star criteria and bypass thresholds.
const (
	starMinEstimatedPrice = 5000
	starMinRating         = 4.0

	bypassClarityScore  = 15 // perfect clarity required
	bypassMinEHRScore   = 13
	bypassWeLanguageMax = 5
	bypassMinTotal      = 60
)

// Pathway names the rule that decided a posting's classification.
type Pathway string

// Decision pathways, in evaluation order.
const (
	PathwayHardExclusion      Pathway = "hard_exclusion"
	PathwayStarCriteria       Pathway = "star_criteria"
	PathwayExceptionalQuality Pathway = "exceptional_quality"
	PathwayNormalFilters      Pathway = "normal_filters"
	PathwayRejected           Pathway = "rejected"
)

// Decision is the outcome of the recommendation filter for one posting.
type Decision struct {
	Classification types.Classification `json:"classification"`
	Pathway        Pathway              `json:"pathway"`
	Reason         string               `json:"reason"`
}

// Classify runs the ordered decision procedure over a scored posting. The
// posting must already carry a Score and Enrichment; an unscored posting is
// rejected rather than erroring. Classify is pure: it never writes to the
// posting and never touches a manual override.
func Classify(job *types.JobPosting, settings *types.Settings) Decision {
	if job.Score == nil || job.Enrichment == nil {
		return Decision{
			Classification: types.NotRecommended,
			Pathway:        PathwayRejected,
			Reason:         "posting has not been scored",
		}
	}

	padded := signals.Normalize(job.Title + " " + job.Description)

	// 1. Hard exclusions: no pathway below can rescue these.
	if pattern := matchNonDev(padded); pattern != "" {
		return Decision{
			Classification: types.NotRecommended,
			Pathway:        PathwayHardExclusion,
			Reason:         fmt.Sprintf("non-development work (%q)", pattern),
		}
	}
	if excl := matchExcludedPlatform(padded, excludedPlatforms); excl != nil {
		return Decision{
			Classification: types.NotRecommended,
			Pathway:        PathwayHardExclusion,
			Reason:         fmt.Sprintf("excluded platform %s", excl.Name),
		}
	}

	// 2. Star criteria: auto-accept, payment verification not required.
	if meetsStarCriteria(job) {
		return Decision{
			Classification: types.Recommended,
			Pathway:        PathwayStarCriteria,
			Reason:         "open budget, team language, high-value estimate, trustworthy rating",
		}
	}

	// 3. Exceptional quality: explicitly bypasses payment verification.
	if meetsExceptionalQuality(job, settings) {
		return Decision{
			Classification: types.Recommended,
			Pathway:        PathwayExceptionalQuality,
			Reason:         "perfect clarity with top-tier signals",
		}
	}

	// 4. Normal filters.
	reason, ok := passesNormalFilters(job, settings)
	if ok {
		return Decision{
			Classification: types.Recommended,
			Pathway:        PathwayNormalFilters,
			Reason:         "meets configured thresholds",
		}
	}
	return Decision{
		Classification: types.NotRecommended,
		Pathway:        PathwayRejected,
		Reason:         reason,
	}
}

// Apply classifies the posting and writes the result onto it. A previously
// set manual override is left untouched; it wins at the presentation layer.
func Apply(job *types.JobPosting, settings *types.Settings) Decision {
	decision := Classify(job, settings)
	job.Classification = decision.Classification
	return decision
}

// meetsStarCriteria: all four must hold. Rating 0 means no reviews yet and
// is acceptable; an established low rating is not.
func meetsStarCriteria(job *types.JobPosting) bool {
	return job.Score.ProfessionalSignals.OpenBudget > 0 &&
		job.Score.ProfessionalSignals.WeLanguage > 0 &&
		job.Enrichment.EstimatedPrice >= starMinEstimatedPrice &&
		(job.Client.Rating == 0 || job.Client.Rating >= starMinRating)
}

// meetsExceptionalQuality: every signal at or near its ceiling.
func meetsExceptionalQuality(job *types.JobPosting, settings *types.Settings) bool {
	return job.Score.JobClarity == bypassClarityScore &&
		job.Score.EHRPotential >= bypassMinEHRScore &&
		job.Score.ProfessionalSignals.WeLanguage == bypassWeLanguageMax &&
		job.Score.Total >= bypassMinTotal &&
		job.Enrichment.EstimatedEHR >= settings.MinEHR &&
		!job.IsDuplicate && !job.IsRepost
}

// passesNormalFilters returns (reason, false) naming the first failed check,
// or ("", true) when all pass.
func passesNormalFilters(job *types.JobPosting, settings *types.Settings) (string, bool) {
	switch {
	case job.Score.Total < settings.MinScore:
		return fmt.Sprintf("score %.0f below minimum %.0f", job.Score.Total, settings.MinScore), false
	case job.Enrichment.EstimatedEHR < settings.MinEHR:
		return fmt.Sprintf("estimated EHR %.0f below minimum %.0f", job.Enrichment.EstimatedEHR, settings.MinEHR), false
	case !job.Client.PaymentVerified:
		return "client payment not verified", false
	case job.IsDuplicate:
		return "duplicate posting", false
	case job.IsRepost:
		return "reposted posting", false
	}
	return "", true
}
