package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeywordLists groups the operator's search phrases by specialty. Every list
// feeds the keywords-match dimension; empty lists simply contribute nothing.
type KeywordLists struct {
	WideNet        []string `json:"wide_net,omitempty"`
	Webflow        []string `json:"webflow,omitempty"`
	Portals        []string `json:"portals,omitempty"`
	Ecommerce      []string `json:"ecommerce,omitempty"`
	SpeedSEO       []string `json:"speed_seo,omitempty"`
	Automation     []string `json:"automation,omitempty"`
	Vertical       []string `json:"vertical,omitempty"`
	AppDevelopment []string `json:"app_development,omitempty"`
}

// All returns every keyword phrase across the categories in a stable order.
func (k KeywordLists) All() []string {
	groups := [][]string{
		k.WideNet, k.Webflow, k.Portals, k.Ecommerce,
		k.SpeedSEO, k.Automation, k.Vertical, k.AppDevelopment,
	}
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// Settings is the operator-configured input to the scoring engine. It is
// read-only during a scoring pass.
type Settings struct {
	Keywords KeywordLists `json:"keywords"`

	// MinScore and MinEHR gate the normal-filters recommendation pathway.
	MinScore float64 `json:"min_score" validate:"gte=0,lte=100"`
	MinEHR   float64 `json:"min_ehr" validate:"gte=0"`

	// ScoringWeights is shown to the operator as per-dimension point budgets
	// but the scorers use fixed internal ceilings. Kept for compatibility
	// with existing settings documents; never read by the engine.
	ScoringWeights map[string]float64 `json:"scoring_weights,omitempty"`
}

var settingsValidator = validator.New()

// Validate checks threshold ranges. Malformed thresholds must fail here, at
// configuration-load time, never inside the scoring pipeline.
func (s *Settings) Validate() error {
	if err := settingsValidator.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// DefaultSettings returns the thresholds and keyword lists used when the
// operator has not configured anything yet.
func DefaultSettings() *Settings {
	return &Settings{
		MinScore: 60,
		MinEHR:   70,
		Keywords: KeywordLists{
			WideNet: []string{
				"web developer", "website development", "web application",
				"full stack", "build a website",
			},
			Webflow: []string{
				"webflow", "webflow developer", "webflow migration",
			},
			Portals: []string{
				"client portal", "customer portal", "member portal",
				"membership site",
			},
			Ecommerce: []string{
				"online store", "ecommerce website", "checkout",
			},
			SpeedSEO: []string{
				"page speed", "site speed", "core web vitals", "seo audit",
			},
			Automation: []string{
				"workflow automation", "api integration", "zapier", "make.com",
			},
			Vertical: []string{
				"real estate website", "law firm website", "medical practice website",
			},
			AppDevelopment: []string{
				"custom web app", "saas", "internal tool", "dashboard",
			},
		},
	}
}
