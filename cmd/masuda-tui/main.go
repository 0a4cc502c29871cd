package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/trstruth/masuda/internal/config"
	"github.com/trstruth/masuda/internal/tui"
	pkglog "github.com/trstruth/masuda/pkg/log"
)

func main() {
	fs := pflag.NewFlagSet("masuda-tui", pflag.ExitOnError)
	config.Flags(fs)
	fs.Parse(os.Args[1:])

	var live config.Live
	cfg, err := config.Watch(fs, func(c *config.Config, err error) {
		l := pkglog.L()
		if err != nil {
			l.Error().Err(err).Msg("failed to reload config")
			return
		}
		if err := live.Update(c); err != nil {
			l.Error().Err(err).Msg("ignoring reloaded config")
		}
	})
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// The screen owns the terminal, so only errors are logged unless asked otherwise.
	level := cfg.Log.Level
	if !fs.Changed("log-level") {
		level = "error"
	}
	pkglog.Init(pkglog.Config{
		Level:       level,
		ServiceName: "masuda-tui",
	})
	logger := pkglog.L()

	// Fail on a bad game or method before taking over the terminal.
	if err := live.Init(cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to create searcher")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize screen")
	}
	defer screen.Fini()

	tui.NewApp(screen, live.Session, logger).Run()
}
