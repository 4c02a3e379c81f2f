package scoring

import "github.com/jonathan/leadscore/internal/types"

// Specialty bonus points applied to the keywords-match dimension. The
// dimension cap still holds after bonuses, so these can only lift a posting
// up to 15, never past it.
const (
	bonusCustomTier3 = 12
	bonusCustomTier2 = 8
	bonusCustomTier1 = 5

	bonusUSHigh   = 8
	bonusUSMedium = 6
	bonusUSLow    = 3
	// usAmplifier is the extra granted when a US-based client co-occurs with
	// another positive specialty signal.
	usAmplifier = 3

	bonusWebflow   = 8
	bonusDashboard = 6
	bonusPortal    = 5
)

// DetectedSignals bundles the verdicts of all five signal detectors for one
// posting.
type DetectedSignals struct {
	CustomApp types.SignalVerdict
	USBased   types.SignalVerdict
	Dashboard types.SignalVerdict
	Webflow   types.SignalVerdict
	Portal    types.SignalVerdict
}

// CalculateBonuses converts detector verdicts into labeled point bonuses.
// Each bonus records its tier and matched patterns so the operator can see
// why a posting was lifted.
func CalculateBonuses(sig DetectedSignals) []types.ScoreBonus {
	var bonuses []types.ScoreBonus

	if sig.CustomApp.Detected {
		points := 0.0
		switch sig.CustomApp.Tier {
		case 3:
			points = bonusCustomTier3
		case 2:
			points = bonusCustomTier2
		case 1:
			points = bonusCustomTier1
		}
		if points > 0 {
			bonuses = append(bonuses, types.ScoreBonus{
				Label:    "custom application work",
				Points:   points,
				Tier:     sig.CustomApp.Tier,
				Patterns: sig.CustomApp.Patterns,
			})
		}
	}

	if sig.USBased.Detected {
		points := 0.0
		switch sig.USBased.Confidence {
		case types.ConfidenceHigh:
			points = bonusUSHigh
		case types.ConfidenceMedium:
			points = bonusUSMedium
		case types.ConfidenceLow:
			points = bonusUSLow
		}
		if points > 0 {
			bonuses = append(bonuses, types.ScoreBonus{
				Label:    "us-based client",
				Points:   points,
				Patterns: sig.USBased.Patterns,
			})
		}
		if sig.CustomApp.Detected || sig.Portal.Detected {
			bonuses = append(bonuses, types.ScoreBonus{
				Label:  "us-based amplifier",
				Points: usAmplifier,
			})
		}
	}

	if sig.Webflow.Detected {
		bonuses = append(bonuses, types.ScoreBonus{
			Label:    "webflow specialty",
			Points:   bonusWebflow,
			Patterns: sig.Webflow.Patterns,
		})
	}
	if sig.Dashboard.Detected {
		bonuses = append(bonuses, types.ScoreBonus{
			Label:    "dashboard specialty",
			Points:   bonusDashboard,
			Patterns: sig.Dashboard.Patterns,
		})
	}
	if sig.Portal.Detected {
		bonuses = append(bonuses, types.ScoreBonus{
			Label:    "portal specialty",
			Points:   bonusPortal,
			Patterns: sig.Portal.Patterns,
		})
	}

	return bonuses
}

// TotalBonus sums bonus points across all detectors.
func TotalBonus(bonuses []types.ScoreBonus) float64 {
	total := 0.0
	for _, b := range bonuses {
		total += b.Points
	}
	return total
}
