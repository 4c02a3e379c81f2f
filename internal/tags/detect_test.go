package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_NoMatches(t *testing.T) {
	got := Detect("translate my novel into French", Taxonomy)
	assert.Empty(t, got)
}

func TestDetect_CapsAtTwoTags(t *testing.T) {
	text := "We need a custom web app with a dashboard, a client portal, " +
		"api integration and a landing page built in webflow"
	got := Detect(text, Taxonomy)
	assert.Len(t, got, 2)
}

func TestDetect_PriorityOrdering(t *testing.T) {
	got := Detect("build a client portal in webflow", Taxonomy)
	assert.Equal(t, []string{"Client Portal", "Webflow"}, got)
}

func TestDetect_DropsGenericWebsiteForSpecificProjectType(t *testing.T) {
	got := Detect("we need a website with a client portal", Taxonomy)
	assert.NotContains(t, got, "Website")
	assert.Contains(t, got, "Client Portal")
}

func TestDetect_KeepsWebsiteWhenNothingMoreSpecific(t *testing.T) {
	got := Detect("we need a website for our bakery", Taxonomy)
	assert.Contains(t, got, "Website")
}

func TestDetect_WholeWordKeywordDoesNotMatchSubstring(t *testing.T) {
	// "highlights" contains "ghl" but must not trigger the GoHighLevel tag.
	got := Detect("the highlights of our product catalog", Taxonomy)
	assert.NotContains(t, got, "GoHighLevel")
}

func TestDetect_WholeWordKeywordMatchesStandalone(t *testing.T) {
	got := Detect("migrate our ghl funnels", Taxonomy)
	assert.Contains(t, got, "GoHighLevel")
}

func TestDetect_WholeWordMatchesAtTextBoundary(t *testing.T) {
	// Padding must let whole-word keywords match at the very start and end.
	got := Detect("ghl", Taxonomy)
	assert.Contains(t, got, "GoHighLevel")
}

func TestDetect_CaseInsensitive(t *testing.T) {
	got := Detect("Build a DASHBOARD for our sales team", Taxonomy)
	assert.Contains(t, got, "Dashboard")
}

func TestDetect_EmptyText(t *testing.T) {
	assert.Empty(t, Detect("", Taxonomy))
}
