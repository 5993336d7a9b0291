// Package main is the entrypoint for the daily news bot.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/fl196/daily-news-bot/internal/config"
	"github.com/fl196/daily-news-bot/internal/digest"
	"github.com/fl196/daily-news-bot/internal/fetcher"
	"github.com/fl196/daily-news-bot/internal/publisher"
	"github.com/fl196/daily-news-bot/internal/runner"
	"github.com/fl196/daily-news-bot/internal/schedule"
)

var opts struct {
	Config   string `short:"c" long:"config" env:"CONFIG" default:"config.yaml" description:"path to config file"`
	Once     bool   `long:"once" description:"run the pipeline once and exit"`
	JSONLogs bool   `long:"json-logs" env:"JSON_LOGS" description:"turn on json logs"`
	Debug    bool   `long:"dbg" env:"DEBUG" description:"turn on debug mode"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	setupLog()
	lg := slog.Default()

	cfg, err := config.Load(opts.Config)
	if err != nil {
		lg.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	f := fetcher.NewNewsAPI(cfg.News.APIKey)
	builder := digest.NewBuilder(f, cfg.DigestCategories(), cfg.News.ArticlesPerCategory,
		digest.DefaultPause, lg.With(slog.String("prefix", "digest")))

	var pubs []publisher.Publisher
	switch cfg.Output {
	case "stdout":
		pubs = append(pubs, publisher.NewStdout())
	default:
		pubs = append(pubs, publisher.NewEmail(
			cfg.Email.SMTPServer,
			cfg.Email.SMTPPort,
			cfg.Email.SenderEmail,
			cfg.Email.SenderPassword,
			cfg.Email.RecipientEmail,
		))
	}

	r := runner.New(builder, pubs, lg.With(slog.String("prefix", "runner")))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.Once {
		lg.Info("running digest (once mode)")
		if err := r.Run(ctx); err != nil {
			lg.Error("run failed", slog.Any("err", err))
		}
		return
	}

	sched := schedule.New(lg.With(slog.String("prefix", "schedule")))
	err = sched.Daily(cfg.Scheduler.Time, func() {
		if err := r.Run(ctx); err != nil {
			lg.Error("scheduled run failed", slog.Any("err", err))
		}
	})
	if err != nil {
		lg.Error("failed to schedule daily run", slog.Any("err", err))
		os.Exit(1)
	}
	sched.Start()
	lg.Info("scheduler started", slog.String("daily_at", cfg.Scheduler.Time))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	lg.Info("caught signal, shutting down", slog.String("signal", sig.String()))

	cancel()
	sched.Stop()
}

func setupLog() {
	handler := &slog.HandlerOptions{Level: slog.LevelInfo}
	if opts.Debug {
		handler.Level = slog.LevelDebug
		handler.AddSource = true
	}

	if opts.JSONLogs {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, handler)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, handler)))
}
