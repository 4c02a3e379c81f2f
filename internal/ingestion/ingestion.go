// Package ingestion loads job postings from JSON exports and normalizes
// their content before scoring. Exported postings frequently carry HTML in
// the description field; scoring operates on plain text.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/leadscore/internal/types"
)

// LoadJobsFile reads a JSON array of job postings from disk and normalizes
// each one.
func LoadJobsFile(path string) ([]*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	var jobs []*types.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse jobs JSON: %w", err)
	}

	for i, job := range jobs {
		if job.ID == "" {
			return nil, fmt.Errorf("job at index %d has no id", i)
		}
		Normalize(job)
	}
	return jobs, nil
}

// Normalize cleans a posting in place: HTML descriptions become plain text
// and surrounding whitespace is trimmed.
func Normalize(job *types.JobPosting) {
	job.Title = strings.TrimSpace(job.Title)
	job.Description = strings.TrimSpace(job.Description)

	if looksLikeHTML(job.Description) {
		if text, err := StripHTML(job.Description); err == nil {
			job.Description = text
		}
	}
}

// StripHTML parses an HTML fragment and returns its text content with
// normalized whitespace. Script and style elements are dropped entirely.
func StripHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	// Block elements need a separator so adjacent sections don't run together.
	doc.Find("p, br, li, div, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return cleanWhitespace(doc.Text()), nil
}

// looksLikeHTML is a cheap heuristic: exported descriptions either contain
// markup throughout or none at all.
func looksLikeHTML(text string) bool {
	return strings.Contains(text, "</") || strings.Contains(text, "/>") ||
		strings.Contains(text, "<p>") || strings.Contains(text, "<br")
}

// cleanWhitespace collapses runs of whitespace into single spaces.
func cleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
