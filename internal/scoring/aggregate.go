package scoring

import "github.com/jonathan/leadscore/internal/types"

// perfectJobFactor amplifies the total for postings that combine the
// highest-value signals.
const perfectJobFactor = 1.2

// IsPerfectJob reports whether the posting qualifies for the score
// multiplier: strong custom-application work for a clearly US-based client.
func IsPerfectJob(sig DetectedSignals) bool {
	if !sig.CustomApp.Detected || !sig.USBased.Detected {
		return false
	}
	if sig.CustomApp.Tier >= 2 && sig.USBased.Confidence == types.ConfidenceHigh {
		return true
	}
	return sig.CustomApp.Tier == 3 && sig.USBased.Confidence.AtLeast(types.ConfidenceMedium)
}

// Aggregate sums the dimension subtotals, applies the perfect-job
// multiplier, and clamps the displayed total to [0,100]. The uncapped
// multiplied value goes to InternalScore so perfect jobs stay sortable above
// 100; non-perfect jobs store the plain sum there.
func Aggregate(breakdown *types.ScoreBreakdown, perfect bool, enrich *types.Enrichment) {
	total := breakdown.Sum()

	internal := total
	if perfect {
		internal = total * perfectJobFactor
	}
	enrich.InternalScore = internal
	enrich.IsPerfectJob = perfect

	breakdown.Total = clamp(internal, 0, types.MaxTotal)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
