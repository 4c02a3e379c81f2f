package types

// Dimension point ceilings. These are fixed internal scales; the operator's
// advisory ScoringWeights do not change them (see Settings.ScoringWeights).
const (
	MaxClientQuality       = 25.0
	MaxKeywordsMatch       = 15.0
	MaxProfessionalSignals = 10.0
	MaxBusinessImpact      = 15.0
	MaxJobClarity          = 15.0
	MaxEHRPotential        = 15.0
	MinRedFlags            = -10.0
	MaxTotal               = 100.0
)

// ClientQualityScore is the structured subtotal for the client quality
// dimension.
type ClientQualityScore struct {
	PaymentVerified       float64 `json:"payment_verified"`
	SpendHistory          float64 `json:"spend_history"`
	RecencyAndCompetition float64 `json:"recency_and_competition"`
	Subtotal              float64 `json:"subtotal"`
}

// ProfessionalSignalsScore is the structured subtotal for the professional
// signals dimension.
type ProfessionalSignalsScore struct {
	OpenBudget float64 `json:"open_budget"`
	WeLanguage float64 `json:"we_language"`
	Subtotal   float64 `json:"subtotal"`
}

// ScoreBonus records why the keyword-match dimension was inflated: which
// specialty fired, at what tier, on which matched phrases. Kept for audit.
type ScoreBonus struct {
	Label    string   `json:"label"`
	Points   float64  `json:"points"`
	Tier     int      `json:"tier,omitempty"`
	Patterns []string `json:"patterns,omitempty"`
}

// ScoreBreakdown holds the seven dimension subtotals plus the clamped total.
// Summing the subtotals (RedFlags is signed) yields the pre-multiplier total.
type ScoreBreakdown struct {
	ClientQuality       ClientQualityScore       `json:"client_quality"`
	KeywordsMatch       float64                  `json:"keywords_match"`
	ProfessionalSignals ProfessionalSignalsScore `json:"professional_signals"`
	BusinessImpact      float64                  `json:"business_impact"`
	JobClarity          float64                  `json:"job_clarity"`
	EHRPotential        float64                  `json:"ehr_potential"`
	RedFlags            float64                  `json:"red_flags"`

	// Total is the displayed score, clamped to [0,100] after the perfect-job
	// multiplier. The uncapped value lives in Enrichment.InternalScore.
	Total float64 `json:"total"`
}

// Sum returns the pre-multiplier total of all dimension subtotals.
func (b *ScoreBreakdown) Sum() float64 {
	return b.ClientQuality.Subtotal +
		b.KeywordsMatch +
		b.ProfessionalSignals.Subtotal +
		b.BusinessImpact +
		b.JobClarity +
		b.EHRPotential +
		b.RedFlags
}
