// Package tags matches job text against a prioritized keyword taxonomy and
// returns at most two representative tags for a posting.
package tags

// Category groups tag definitions by what they describe.
type Category string

// Taxonomy categories.
const (
	CategoryPlatform         Category = "platform"
	CategoryExcludedPlatform Category = "excluded_platform"
	CategoryTechnology       Category = "technology"
	CategoryProjectType      Category = "project_type"
	CategoryService          Category = "service"
	CategoryFeature          Category = "feature"
	CategoryIndustry         Category = "industry"
)

// Definition is one tag in the taxonomy. A keyword wrapped in a single
// leading and trailing space is matched as a whole word, so short
// abbreviations do not fire inside unrelated longer words.
type Definition struct {
	Name     string
	Category Category
	Priority int // higher = more specific/valuable
	Keywords []string
}

// genericWebsitePriority is the cutoff used by the de-noising rule: the
// generic "Website" tag is dropped when a more specific project-type tag
// above this priority also matched.
const genericWebsitePriority = 70

// Taxonomy is the static tag table, loaded once and treated as immutable.
var Taxonomy = []Definition{
	// Project types carry the highest priorities: they are what the operator
	// filters on first.
	{Name: "Custom Web App", Category: CategoryProjectType, Priority: 88,
		Keywords: []string{"custom web app", "web application", "saas", "internal tool"}},
	{Name: "Client Portal", Category: CategoryProjectType, Priority: 85,
		Keywords: []string{"client portal", "customer portal", "member portal", "membership site"}},
	{Name: "Dashboard", Category: CategoryProjectType, Priority: 82,
		Keywords: []string{"dashboard", "admin panel", "reporting tool"}},
	{Name: "E-commerce", Category: CategoryProjectType, Priority: 78,
		Keywords: []string{"ecommerce", "e-commerce", "online store", "checkout"}},
	{Name: "Landing Page", Category: CategoryProjectType, Priority: 72,
		Keywords: []string{"landing page"}},
	{Name: "Website", Category: CategoryProjectType, Priority: genericWebsitePriority,
		Keywords: []string{"website", "web site"}},

	{Name: "Webflow", Category: CategoryPlatform, Priority: 75,
		Keywords: []string{"webflow"}},
	{Name: "WordPress", Category: CategoryPlatform, Priority: 60,
		Keywords: []string{"wordpress", " wp "}},
	{Name: "Framer", Category: CategoryPlatform, Priority: 55,
		Keywords: []string{"framer"}},

	{Name: "Shopify", Category: CategoryExcludedPlatform, Priority: 90,
		Keywords: []string{"shopify"}},
	{Name: "Bubble", Category: CategoryExcludedPlatform, Priority: 90,
		Keywords: []string{"bubble.io", " bubble "}},
	{Name: "GoHighLevel", Category: CategoryExcludedPlatform, Priority: 90,
		Keywords: []string{"gohighlevel", "go high level", " ghl "}},

	{Name: "Migration", Category: CategoryService, Priority: 65,
		Keywords: []string{"migration", "migrate"}},
	{Name: "Redesign", Category: CategoryService, Priority: 62,
		Keywords: []string{"redesign", "revamp"}},
	{Name: "Speed Optimization", Category: CategoryService, Priority: 60,
		Keywords: []string{"page speed", "site speed", "core web vitals"}},
	{Name: "SEO", Category: CategoryService, Priority: 58,
		Keywords: []string{" seo "}},

	{Name: "React", Category: CategoryTechnology, Priority: 50,
		Keywords: []string{"react", "next.js", "nextjs"}},
	{Name: "Airtable", Category: CategoryTechnology, Priority: 45,
		Keywords: []string{"airtable"}},

	{Name: "CMS", Category: CategoryFeature, Priority: 48,
		Keywords: []string{" cms ", "content management"}},
	{Name: "Automation", Category: CategoryFeature, Priority: 47,
		Keywords: []string{"automation", "zapier", "make.com"}},
	{Name: "Integrations", Category: CategoryFeature, Priority: 46,
		Keywords: []string{"api integration", "integrations"}},

	{Name: "Real Estate", Category: CategoryIndustry, Priority: 40,
		Keywords: []string{"real estate", "realtor"}},
	{Name: "Healthcare", Category: CategoryIndustry, Priority: 40,
		Keywords: []string{"healthcare", "medical practice", "clinic"}},
	{Name: "Legal", Category: CategoryIndustry, Priority: 40,
		Keywords: []string{"law firm", "attorney", "legal services"}},
}
