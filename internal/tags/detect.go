package tags

import (
	"sort"
	"strings"
)

// maxTags is the number of tags kept per posting.
const maxTags = 2

// Detect matches the lowercased job text against the taxonomy and returns at
// most two tag names, most specific first. Absence of matches yields an
// empty list, never an error.
func Detect(text string, taxonomy []Definition) []string {
	// Pad with spaces so whole-word keywords match at text boundaries too.
	padded := " " + strings.ToLower(text) + " "

	var matched []Definition
	for _, def := range taxonomy {
		if matchesAny(padded, def.Keywords) {
			matched = append(matched, def)
		}
	}

	// Priority descending; name ascending on ties so output is stable.
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Priority != matched[j].Priority {
			return matched[i].Priority > matched[j].Priority
		}
		return matched[i].Name < matched[j].Name
	})

	matched = dropGenericWebsite(matched)

	if len(matched) > maxTags {
		matched = matched[:maxTags]
	}

	names := make([]string, 0, len(matched))
	for _, def := range matched {
		names = append(names, def.Name)
	}
	return names
}

// matchesAny reports whether any keyword appears in the padded text.
// Keywords wrapped in a single leading/trailing space require whole-word
// boundaries; everything else is plain substring matching.
func matchesAny(padded string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(padded, kw) {
			return true
		}
	}
	return false
}

// dropGenericWebsite removes the generic "Website" tag when a more specific
// project-type tag (priority above the generic cutoff) also matched. The
// slice must already be sorted by priority descending.
func dropGenericWebsite(matched []Definition) []Definition {
	hasSpecificProjectType := false
	for _, def := range matched {
		if def.Category == CategoryProjectType &&
			def.Name != "Website" &&
			def.Priority > genericWebsitePriority {
			hasSpecificProjectType = true
			break
		}
	}
	if !hasSpecificProjectType {
		return matched
	}

	filtered := matched[:0]
	for _, def := range matched {
		if def.Name == "Website" {
			continue
		}
		filtered = append(filtered, def)
	}
	return filtered
}
