package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
)

const (
	defaultBaseURL = "https://newsapi.org/v2"
	pageSize       = 8
	maxArticles    = 6

	// the API marks withdrawn articles with this placeholder title
	removedTitle = "[Removed]"
)

// NewsAPI response shapes.

type searchResponse struct {
	Status   string       `json:"status"`
	Articles []rawArticle `json:"articles"`
}

type rawArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Source      rawSource `json:"source"`
	URL         string    `json:"url"`
	PublishedAt string    `json:"publishedAt"`
}

type rawSource struct {
	Name string `json:"name"`
}

// NewsAPI fetches articles from the NewsAPI "everything" endpoint.
type NewsAPI struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewNewsAPI creates a NewsAPI fetcher with the given API key.
func NewNewsAPI(apiKey string) *NewsAPI {
	rq := requester.New(
		http.Client{Timeout: 30 * time.Second},
		middleware.JSON,
		middleware.Header("User-Agent", "NewsBot/1.0"),
	)
	return &NewsAPI{
		client:  rq.Client(),
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// Search issues one request for the given query and returns up to 6 articles
// in the API's publish-time order. Entries with empty or placeholder titles
// are dropped.
func (f *NewsAPI) Search(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("apiKey", f.apiKey)
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))

	reqURL := fmt.Sprintf("%s/everything?%s", f.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("newsapi: failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("newsapi: failed to read response: %w", err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("newsapi: failed to parse JSON: %w", err)
	}

	if sr.Status != "ok" {
		return nil, fmt.Errorf("newsapi: unexpected status %q", sr.Status)
	}

	articles := make([]Article, 0, len(sr.Articles))
	for _, a := range sr.Articles {
		if a.Title == "" || a.Title == removedTitle {
			continue
		}
		articles = append(articles, Article{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source.Name,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
		if len(articles) == maxArticles {
			break
		}
	}

	return articles, nil
}
