// Package runner orchestrates the fetch -> digest -> publish pipeline.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fl196/daily-news-bot/internal/digest"
	"github.com/fl196/daily-news-bot/internal/publisher"
)

// ErrEmptyDigest is returned when a run finds no articles at all. The run is
// unsuccessful but the process keeps waiting for the next trigger.
var ErrEmptyDigest = errors.New("runner: no articles found, nothing to send")

// Builder assembles a digest for one run.
type Builder interface {
	Build(ctx context.Context) (*digest.Digest, error)
}

// Runner executes the full pipeline once per call.
type Runner struct {
	builder    Builder
	publishers []publisher.Publisher
	log        *slog.Logger
}

func New(b Builder, pubs []publisher.Publisher, lg *slog.Logger) *Runner {
	return &Runner{
		builder:    b,
		publishers: pubs,
		log:        lg,
	}
}

// Run builds today's digest and publishes it. A digest with no articles
// suppresses publishing entirely. Individual publisher failures are
// tolerated; Run fails only when every publisher failed.
func (r *Runner) Run(ctx context.Context) error {
	lg := r.log.With(slog.String("run_id", uuid.NewString()))
	lg.Info("starting pipeline run")

	d, err := r.builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("runner: build digest: %w", err)
	}

	total := d.Total()
	if total == 0 {
		lg.Warn("no articles found, skipping send")
		return ErrEmptyDigest
	}
	lg.Info("digest built",
		slog.Int("articles", total),
		slog.Int("categories", d.CategoryCount()))

	var failed int
	for _, pub := range r.publishers {
		if err := pub.Publish(ctx, d); err != nil {
			failed++
			lg.Error("publish failed", slog.String("publisher", fmt.Sprintf("%T", pub)), slog.Any("err", err))
			continue
		}
		lg.Info("published", slog.String("publisher", fmt.Sprintf("%T", pub)))
	}

	if failed == len(r.publishers) && len(r.publishers) > 0 {
		return fmt.Errorf("runner: all %d publishers failed", failed)
	}

	lg.Info("pipeline run completed", slog.Int("articles", total))
	return nil
}
