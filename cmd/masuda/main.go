package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/trstruth/masuda/internal/config"
	pkglog "github.com/trstruth/masuda/pkg/log"
)

func main() {
	fs := pflag.NewFlagSet("masuda", pflag.ExitOnError)
	config.Flags(fs)
	fs.Parse(os.Args[1:])

	// Load configuration
	cfg, err := config.Load(fs)
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "masuda",
	})

	ctx, logger, _ := pkglog.WithRun(context.Background(), pkglog.L())

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	searcher, err := cfg.NewSearcher()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create searcher")
	}
	f, err := cfg.NewFilter()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build filter")
	}

	logger.Info().
		Str(pkglog.FieldGame, searcher.Game().String()).
		Str(pkglog.FieldMethod, searcher.Method().String()).
		Str(pkglog.FieldSeed, hex32(searcher.Seed())).
		Uint64(pkglog.FieldFrames, searcher.FrameLimit()).
		Int(pkglog.FieldWorkers, cfg.Search.Workers).
		Bool(pkglog.FieldFilter, f != nil).
		Msg("search started")

	start := time.Now()
	w := newWriter(os.Stdout, cfg.Output.Format)
	matches := 0

	if cfg.Search.Workers > 1 {
		// Interrupts cancel the workers; the lazy path is left to the default handler.
		sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		results, err := searcher.SearchParallel(sigCtx, f, cfg.Search.Workers)
		stop()
		if err != nil {
			logger.Fatal().Err(err).Msg("search aborted")
		}
		for _, r := range results {
			if cfg.Search.MaxResults > 0 && matches == cfg.Search.MaxResults {
				break
			}
			if err := w.write(r); err != nil {
				logger.Fatal().Err(err).Msg("failed to write result")
			}
			matches++
		}
	} else {
		for r := range searcher.Results(f) {
			if err := w.write(r); err != nil {
				logger.Fatal().Err(err).Msg("failed to write result")
			}
			matches++
			if cfg.Search.MaxResults > 0 && matches == cfg.Search.MaxResults {
				break
			}
		}
	}

	if err := w.flush(); err != nil {
		logger.Fatal().Err(err).Msg("failed to flush output")
	}

	logger.Info().
		Int(pkglog.FieldMatches, matches).
		Uint64(pkglog.FieldFrames, searcher.FrameLimit()).
		Float64(pkglog.FieldLatency, float64(time.Since(start).Milliseconds())).
		Msg("search completed")
}
