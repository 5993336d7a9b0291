package fetcher

import "context"

// Article is a raw news article as returned by the search API. The shape is
// owned by the API; fields are consumed read-only.
type Article struct {
	Title       string
	Description string
	Source      string
	URL         string
	PublishedAt string
}

// Fetcher is an interface for searching news articles from a source.
type Fetcher interface {
	Search(ctx context.Context, query string) ([]Article, error)
}
