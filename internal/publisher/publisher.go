package publisher

import (
	"context"

	"github.com/fl196/daily-news-bot/internal/digest"
)

// Publisher delivers a digest to some output destination.
type Publisher interface {
	Publish(ctx context.Context, d *digest.Digest) error
}
