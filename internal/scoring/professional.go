package scoring

import (
	"strings"
	"unicode"

	"github.com/jonathan/leadscore/internal/types"
)

// Professional signal point scales.
const (
	openBudgetPoints = 5
	// placeholderBudgetPoints applies when a tiny stated budget contradicts a
	// long, serious description: the number is treated as a placeholder.
	placeholderBudgetPoints  = 3
	placeholderBudgetCeiling = 500
	placeholderMinDescLen    = 500

	weLanguageMax = 5
)

var (
	pluralPronouns   = []string{"we", "our", "us"}
	singularPronouns = []string{"i", "my", "me"}
	companyKeywords  = []string{
		"our company", "our team", "our business", "our agency",
		"llc", "inc", "startup",
	}
)

// ScoreProfessionalSignals scores how the client presents themselves: an
// open budget (5) and team language over freelancer-shopper language (5).
// The pronoun evidence is recorded on the enrichment record.
func ScoreProfessionalSignals(job *types.JobPosting, enrich *types.Enrichment) types.ProfessionalSignalsScore {
	s := types.ProfessionalSignalsScore{}

	switch {
	case job.HasOpenBudget():
		s.OpenBudget = openBudgetPoints
	case job.Budget < placeholderBudgetCeiling && len(job.Description) > placeholderMinDescLen:
		s.OpenBudget = placeholderBudgetPoints
	}

	analysis := analyzeLanguage(job.SearchText())
	enrich.LanguageAnalysis = analysis
	s.WeLanguage = float64(analysis.Score)

	s.Subtotal = s.OpenBudget + s.WeLanguage
	return s
}

// analyzeLanguage compares first-person-plural vs first-person-singular
// pronoun counts and looks for company keywords, producing the tiered
// 0/2/3/5 we-language score.
func analyzeLanguage(text string) types.LanguageAnalysis {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	a := types.LanguageAnalysis{}
	for _, w := range words {
		if containsString(pluralPronouns, w) {
			a.PluralCount++
		}
		if containsString(singularPronouns, w) {
			a.SingularCount++
		}
	}
	for _, kw := range companyKeywords {
		if strings.Contains(text, kw) {
			a.HasCompanyKeyword = true
			break
		}
	}

	switch {
	case a.PluralCount > a.SingularCount && a.HasCompanyKeyword:
		a.Score = weLanguageMax
	case a.PluralCount > a.SingularCount:
		a.Score = 3
	case a.PluralCount > 0:
		a.Score = 2
	default:
		a.Score = 0
	}
	return a
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
