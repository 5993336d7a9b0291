package digest

// Category is a news category key. A single enumeration is shared between
// the builder's topic table and the renderer's display table, so the two
// sides can never disagree on which categories exist.
type Category string

const (
	National      Category = "national"
	International Category = "international"
	Economy       Category = "economy"
	Science       Category = "science"
	Education     Category = "education"
	Environment   Category = "environment"
	Technology    Category = "technology"
	Health        Category = "health"
)

// Order is the fixed declaration order used for building and rendering.
var Order = []Category{
	National,
	International,
	Economy,
	Science,
	Education,
	Environment,
	Technology,
	Health,
}

// topics maps each category to the search queries issued for it.
var topics = map[Category][]string{
	National:      {"India government scheme", "Parliament law India", "Supreme Court India judgment", "NEP education India"},
	International: {"global news India", "India foreign relations", "UN WHO India"},
	Economy:       {"India economy", "RBI inflation India", "stock market India", "company news India", "budget India"},
	Science:       {"scientific discovery", "space mission", "research breakthrough"},
	Education:     {"JEE NEET 2024", "UPSC exam", "board exam result India", "scholarship India"},
	Environment:   {"climate change India", "cyclone flood India", "environment policy India"},
	Technology:    {"AI technology India", "ISRO mission", "cybersecurity India", "tech news India"},
	Health:        {"health news India", "medical breakthrough", "disease outbreak"},
}

// Topics returns the search queries for the given category.
func Topics(c Category) []string {
	return topics[c]
}

// Valid reports whether c is a known category key.
func Valid(c Category) bool {
	_, ok := topics[c]
	return ok
}
