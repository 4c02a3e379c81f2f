// Package types defines the shared data structures for the lead-qualification
// scoring engine: job postings, operator settings, score breakdowns, and the
// enrichment record the scoring pipeline accumulates.
package types

import (
	"strings"
	"time"
)

// BudgetType describes how a client priced a posting.
type BudgetType string

// Budget type constants as reported by the marketplace.
const (
	BudgetFixed      BudgetType = "fixed"
	BudgetHourly     BudgetType = "hourly"
	BudgetNegotiable BudgetType = "negotiable"
)

// ExperienceLevel constants as reported by the marketplace.
const (
	ExperienceEntry        = "entry"
	ExperienceIntermediate = "intermediate"
	ExperienceExpert       = "expert"
)

// ClientProfile carries the marketplace's view of the posting client.
// Rating of 0 means the client has no reviews yet, not a zero-star rating.
type ClientProfile struct {
	PaymentVerified bool    `json:"payment_verified"`
	TotalSpent      float64 `json:"total_spent"`
	TotalHires      int     `json:"total_hires"`
	Rating          float64 `json:"rating"`
	Location        string  `json:"location,omitempty"`
}

// JobPosting is a raw job record from the marketplace fetch client plus the
// fields the scoring engine fills in. Identity and commercial fields are
// immutable from the engine's perspective; Enrichment, Score and
// Classification are written exactly once per scoring pass.
type JobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Budget          float64    `json:"budget"` // 0 = unset
	BudgetType      BudgetType `json:"budget_type"`
	HourlyBudgetMin float64    `json:"hourly_budget_min,omitempty"`
	HourlyBudgetMax float64    `json:"hourly_budget_max,omitempty"`

	Client ClientProfile `json:"client"`

	ProposalsCount  int       `json:"proposals_count"`
	PostedAt        time.Time `json:"posted_at"`
	ExperienceLevel string    `json:"experience_level,omitempty"`

	IsDuplicate bool `json:"is_duplicate,omitempty"`
	IsRepost    bool `json:"is_repost,omitempty"`

	// Written by the scoring engine.
	Enrichment     *Enrichment     `json:"enrichment,omitempty"`
	Score          *ScoreBreakdown `json:"score,omitempty"`
	Classification Classification  `json:"classification,omitempty"`

	// Set by a human operator after the fact; the engine never touches it.
	ManualOverride *ManualOverride `json:"manual_override,omitempty"`
}

// SearchText returns the lowercased title + description used by every text
// detector. Missing fields degrade to empty strings, never an error.
func (j *JobPosting) SearchText() string {
	return strings.ToLower(strings.TrimSpace(j.Title + " " + j.Description))
}

// HasOpenBudget reports whether the client left pricing open.
func (j *JobPosting) HasOpenBudget() bool {
	return j.Budget == 0 || j.BudgetType == BudgetNegotiable
}

// Classification is the terminal verdict for a scored posting.
type Classification string

// Classification values. There are no further transitions; only a manual
// override can flip the presented verdict.
const (
	Recommended    Classification = "recommended"
	NotRecommended Classification = "not_recommended"
)

// ManualOverride records a human decision that supersedes the computed
// classification at the presentation layer.
type ManualOverride struct {
	ForceRecommended bool      `json:"force_recommended"`
	OverriddenAt     time.Time `json:"overridden_at"`
}

// Confidence is the ordinal verdict strength of a signal detector.
type Confidence string

// Confidence levels, ordered low < medium < high.
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// AtLeast reports whether c is at or above the given level.
func (c Confidence) AtLeast(level Confidence) bool {
	return c.rank() >= level.rank()
}

func (c Confidence) rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// SignalVerdict is the result of a single text signal detector.
type SignalVerdict struct {
	Detected   bool       `json:"detected"`
	Confidence Confidence `json:"confidence,omitempty"`
	Tier       int        `json:"tier,omitempty"`
	Patterns   []string   `json:"patterns,omitempty"`
}

// ClarityDetail records the keyword evidence behind the job clarity score.
type ClarityDetail struct {
	TechnicalMatches int `json:"technical_matches"`
	ClarityMatches   int `json:"clarity_matches"`
	Total            int `json:"total"`
}

// LanguageAnalysis records the pronoun evidence behind the we-language score.
type LanguageAnalysis struct {
	PluralCount       int  `json:"plural_count"`
	SingularCount     int  `json:"singular_count"`
	HasCompanyKeyword bool `json:"has_company_keyword"`
	Score             int  `json:"score"`
}

// Enrichment is the accumulator the scoring pipeline threads through the
// dimension scorers. Each scorer writes its diagnostic fields here; the UI
// and the pricing calculator read them downstream.
type Enrichment struct {
	EstimatedPrice float64 `json:"estimated_price"`
	EstimatedHours float64 `json:"estimated_hours"`
	EstimatedEHR   float64 `json:"estimated_ehr"`

	MatchedKeywords  []string `json:"matched_keywords,omitempty"`
	DetectedOutcomes []string `json:"detected_outcomes,omitempty"`
	DetectedRedFlags []string `json:"detected_red_flags,omitempty"`
	IsTechnicalOnly  bool     `json:"is_technical_only"`

	JobClarity       ClarityDetail    `json:"job_clarity"`
	LanguageAnalysis LanguageAnalysis `json:"language_analysis"`

	CustomAnalysis  SignalVerdict `json:"custom_analysis"`
	USBasedAnalysis SignalVerdict `json:"us_based_analysis"`

	Tags []string `json:"tags,omitempty"`

	KeywordBonuses []ScoreBonus `json:"keyword_bonuses,omitempty"`

	// InternalScore keeps the uncapped multiplied total so two perfect jobs
	// stay distinguishable above 100 when ranking.
	InternalScore float64 `json:"internal_score"`
	IsPerfectJob  bool    `json:"is_perfect_job"`

	// Filled only when the external scorer succeeded.
	ExternallyScored bool   `json:"externally_scored"`
	ClarityNotes     string `json:"clarity_notes,omitempty"`
	OutcomeNotes     string `json:"outcome_notes,omitempty"`
}
