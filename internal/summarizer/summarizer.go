// Package summarizer maps raw articles to the fixed-shape summaries that end
// up in the digest. All mappings are pure and total: missing fields degrade
// to placeholder defaults instead of errors.
package summarizer

import (
	"strings"

	"github.com/fl196/daily-news-bot/internal/fetcher"
)

const (
	maxTitleLen   = 100
	maxSummaryLen = 150

	defaultTitle   = "No Title"
	defaultSummary = "No details available"
	defaultSource  = "Unknown"
)

// Summary is a single article as it appears in the digest.
type Summary struct {
	Title   string
	Summary string
	Source  string
	URL     string
}

// Summarize converts a raw article to a Summary. The title is hard-capped at
// 100 characters, the description is word-safe truncated to 150.
func Summarize(a fetcher.Article) Summary {
	title := a.Title
	if title == "" {
		title = defaultTitle
	}
	if r := []rune(title); len(r) > maxTitleLen {
		title = string(r[:maxTitleLen])
	}

	source := a.Source
	if source == "" {
		source = defaultSource
	}

	return Summary{
		Title:   title,
		Summary: CleanText(a.Description, maxSummaryLen),
		Source:  source,
		URL:     a.URL,
	}
}

// CleanText collapses internal whitespace runs to single spaces and truncates
// the result to maxLen characters. Truncation backs up to the last space so
// words are not cut mid-way, then appends an ellipsis; when the truncated
// slice contains no space the ellipsis is appended without a boundary
// correction.
func CleanText(text string, maxLen int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return defaultSummary
	}

	runes := []rune(collapsed)
	if len(runes) < maxLen {
		return collapsed
	}

	cut := string(runes[:maxLen])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
