package log

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level       string    `mapstructure:"level"`
	Pretty      bool      `mapstructure:"pretty"`
	ServiceName string    `mapstructure:"service_name"`
	Output      io.Writer `mapstructure:"-"`
}

var (
	global zerolog.Logger
	once   sync.Once
)

func init() {
	// Commands print results on stdout, so logs never go there.
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// New creates a logger writing JSON lines, or console output when Pretty is
// set, to cfg.Output (stderr if nil). The program name is attached to every
// entry when ServiceName is set.
func New(cfg Config) zerolog.Logger {
	ctx := zerolog.New(sink(cfg)).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.ServiceName != "" {
		ctx = ctx.Str(FieldService, cfg.ServiceName)
	}
	return ctx.Logger()
}

func sink(cfg Config) io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	return out
}

// Init replaces the global logger once per process; later calls are no-ops.
// Output from the standard library logger is routed through it.
func Init(cfg Config) {
	once.Do(func() {
		global = New(cfg)

		stdlog.SetFlags(0)
		stdlog.SetOutput(global.With().Str("source", "stdlog").Logger())
	})
}

// L returns the global logger.
func L() zerolog.Logger {
	return global
}

// parseLevel maps a level name to zerolog, defaulting to info. "off" and
// "disabled" silence everything.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
