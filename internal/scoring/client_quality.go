package scoring

import (
	"time"

	"github.com/jonathan/leadscore/internal/types"
)

// Client quality point scales.
const (
	paymentVerifiedPoints = 15

	freshPostWindow  = 24 * time.Hour
	recentPostWindow = 48 * time.Hour
	lowCompetition   = 5
	someCompetition  = 10
)

// ScoreClientQuality scores the client behind a posting: payment
// verification (15), spend history ladder (5), and posting recency vs
// proposal competition (5). Missing client fields degrade to the lowest
// rungs, never an error.
func ScoreClientQuality(job *types.JobPosting, now time.Time) types.ClientQualityScore {
	s := types.ClientQualityScore{}

	if job.Client.PaymentVerified {
		s.PaymentVerified = paymentVerifiedPoints
	}

	s.SpendHistory = spendHistoryPoints(job.Client.TotalSpent, job.Client.TotalHires)
	s.RecencyAndCompetition = recencyPoints(job.PostedAt, job.ProposalsCount, now)

	s.Subtotal = s.PaymentVerified + s.SpendHistory + s.RecencyAndCompetition
	return s
}

// spendHistoryPoints is a 5-point ladder keyed on total spend and hires.
// A brand-new client still earns 1 point: no history is not a red flag.
func spendHistoryPoints(totalSpent float64, totalHires int) float64 {
	switch {
	case totalSpent >= 10000 && totalHires >= 10:
		return 5
	case totalSpent >= 5000 && totalHires >= 5:
		return 4
	case totalSpent >= 1000 && totalHires >= 1:
		return 3
	case totalSpent > 0:
		return 2
	default:
		return 1
	}
}

// recencyPoints rewards fresh postings with little competition. A zero
// PostedAt (missing field) earns nothing.
func recencyPoints(postedAt time.Time, proposals int, now time.Time) float64 {
	if postedAt.IsZero() {
		return 0
	}
	age := now.Sub(postedAt)
	switch {
	case age <= freshPostWindow && proposals < lowCompetition:
		return 5
	case age <= recentPostWindow && proposals < someCompetition:
		return 3
	default:
		return 0
	}
}
