// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/leadscore/internal/recommend"
	"github.com/jonathan/leadscore/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreBreakdown outputs the per-dimension scores for a scored posting.
func (p *Printer) PrintScoreBreakdown(job *types.JobPosting) {
	if job == nil || job.Score == nil {
		return
	}
	s := job.Score

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:      %s\n\n", job.Title))
	sb.WriteString(fmt.Sprintf("Client Quality:       %5.1f / %.0f\n", s.ClientQuality.Subtotal, types.MaxClientQuality))
	sb.WriteString(fmt.Sprintf("Keywords Match:       %5.1f / %.0f\n", s.KeywordsMatch, types.MaxKeywordsMatch))
	sb.WriteString(fmt.Sprintf("Professional Signals: %5.1f / %.0f\n", s.ProfessionalSignals.Subtotal, types.MaxProfessionalSignals))
	sb.WriteString(fmt.Sprintf("Business Impact:      %5.1f / %.0f\n", s.BusinessImpact, types.MaxBusinessImpact))
	sb.WriteString(fmt.Sprintf("Job Clarity:          %5.1f / %.0f\n", s.JobClarity, types.MaxJobClarity))
	sb.WriteString(fmt.Sprintf("EHR Potential:        %5.1f / %.0f\n", s.EHRPotential, types.MaxEHRPotential))
	sb.WriteString(fmt.Sprintf("Red Flags:            %5.1f\n", s.RedFlags))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total:    %.1f / %.0f", s.Total, types.MaxTotal))

	if job.Enrichment != nil {
		if job.Enrichment.IsPerfectJob {
			sb.WriteString(fmt.Sprintf("  (internal %.1f, perfect job)", job.Enrichment.InternalScore))
		}
		if job.Enrichment.ExternallyScored {
			sb.WriteString("\nScored:   LLM appraisal")
		}
	}

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintEnrichment outputs the estimator and detector diagnostics.
func (p *Printer) PrintEnrichment(enrich *types.Enrichment) {
	if enrich == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Estimate: $%.0f over %.0fh ($%.0f/h)\n", enrich.EstimatedPrice, enrich.EstimatedHours, enrich.EstimatedEHR))

	if len(enrich.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:     %s\n", strings.Join(enrich.Tags, ", ")))
	}
	if len(enrich.MatchedKeywords) > 0 {
		keywords := enrich.MatchedKeywords
		if len(keywords) > maxItemsToShow {
			keywords = keywords[:maxItemsToShow]
		}
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(keywords, ", ")))
	}
	if len(enrich.KeywordBonuses) > 0 {
		sb.WriteString("\nBonuses:\n")
		for _, b := range enrich.KeywordBonuses {
			sb.WriteString(fmt.Sprintf("  • %s (+%.0f)\n", b.Label, b.Points))
		}
	}
	if len(enrich.DetectedRedFlags) > 0 {
		sb.WriteString("\nRed flags:\n")
		for _, f := range enrich.DetectedRedFlags {
			sb.WriteString(fmt.Sprintf("  • %s\n", f))
		}
	}

	p.printBox("ENRICHMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDecision outputs the recommendation pathway that decided a posting.
func (p *Printer) PrintDecision(job *types.JobPosting, decision recommend.Decision) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:      %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", decision.Classification))
	sb.WriteString(fmt.Sprintf("Pathway:  %s\n", decision.Pathway))
	sb.WriteString(fmt.Sprintf("Reason:   %s", decision.Reason))

	p.printBox("RECOMMENDATION", sb.String())
}
