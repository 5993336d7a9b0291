package publisher

import (
	"context"
	"fmt"

	"github.com/fl196/daily-news-bot/internal/digest"
)

// Stdout prints the plain-text rendering of the digest. Useful for local
// dry runs without SMTP credentials.
type Stdout struct{}

func NewStdout() *Stdout {
	return &Stdout{}
}

func (p *Stdout) Publish(_ context.Context, d *digest.Digest) error {
	fmt.Println(BuildText(d))
	return nil
}
