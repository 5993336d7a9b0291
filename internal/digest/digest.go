// Package digest collects articles for each category and assembles them into
// a single digest value.
package digest

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/fl196/daily-news-bot/internal/fetcher"
	"github.com/fl196/daily-news-bot/internal/summarizer"
)

// Digest is one day's collected news, keyed by category. Article order
// within a category follows fetch order, with duplicates removed.
type Digest struct {
	Date     time.Time
	Articles map[Category][]summarizer.Summary
}

// Total returns the number of articles across all categories.
func (d *Digest) Total() int {
	return lo.SumBy(lo.Values(d.Articles), func(s []summarizer.Summary) int { return len(s) })
}

// CategoryCount returns the number of categories with at least one article.
func (d *Digest) CategoryCount() int {
	return lo.CountBy(lo.Values(d.Articles), func(s []summarizer.Summary) bool { return len(s) > 0 })
}

// Builder fetches every topic query per category and builds a Digest.
// Per-query fetch failures are logged and degrade to zero articles for that
// query; a run always completes with whatever was gathered.
type Builder struct {
	fetcher    fetcher.Fetcher
	categories []Category
	quota      int
	pause      time.Duration
	log        *slog.Logger
	now        func() time.Time
}

// DefaultPause is the flat delay between consecutive search requests.
const DefaultPause = 500 * time.Millisecond

// NewBuilder creates a Builder over the given categories with the
// per-category article quota and the pause between requests. An empty
// category list enables all categories.
func NewBuilder(f fetcher.Fetcher, categories []Category, quota int, pause time.Duration, lg *slog.Logger) *Builder {
	if len(categories) == 0 {
		categories = Order
	}
	return &Builder{
		fetcher:    f,
		categories: categories,
		quota:      quota,
		pause:      pause,
		log:        lg,
		now:        time.Now,
	}
}

// Build runs all queries sequentially and returns the assembled digest.
// It only fails when the context is cancelled mid-run.
func (b *Builder) Build(ctx context.Context) (*Digest, error) {
	d := &Digest{
		Date:     b.now(),
		Articles: make(map[Category][]summarizer.Summary, len(b.categories)),
	}

	for _, cat := range b.categories {
		var collected []fetcher.Article
		for _, query := range Topics(cat) {
			articles, err := b.fetcher.Search(ctx, query)
			if err != nil {
				b.log.Warn("query failed, skipping",
					slog.String("category", string(cat)),
					slog.String("query", query),
					slog.Any("err", err))
			} else {
				collected = append(collected, articles...)
			}

			if err := ctx.Err(); err != nil {
				return nil, err
			}

			// flat pause between requests, to stay under the API's
			// abuse thresholds
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(b.pause):
			}
		}

		unique := lo.UniqBy(
			lo.Filter(collected, func(a fetcher.Article, _ int) bool { return a.URL != "" }),
			func(a fetcher.Article) string { return a.URL },
		)
		if len(unique) > b.quota {
			unique = unique[:b.quota]
		}

		d.Articles[cat] = lo.Map(unique, func(a fetcher.Article, _ int) summarizer.Summary {
			return summarizer.Summarize(a)
		})
	}

	return d, nil
}
