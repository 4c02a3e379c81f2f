package scoring

// ScoreEHRPotential maps the effective hourly rate estimate onto the
// 15-point ladder. The EHR comes from the enrichment record, so this works
// the same whether the estimate is rule-based or externally scored.
func ScoreEHRPotential(ehr float64) float64 {
	switch {
	case ehr >= 120:
		return 15
	case ehr >= 100:
		return 13
	case ehr >= 80:
		return 10
	case ehr >= 70:
		return 7
	case ehr >= 50:
		return 3
	default:
		return 0
	}
}
