package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	pkgconfig "github.com/trstruth/masuda/pkg/config"
	"github.com/trstruth/masuda/pkg/log"
)

type Config struct {
	Search  SearchConfig
	Profile ProfileConfig
	Filter  FilterConfig
	Output  OutputConfig
	Log     LogConfig
}

type SearchConfig struct {
	Game       string `mapstructure:"game"`
	Method     string `mapstructure:"method"`
	Frames     uint64 `mapstructure:"frames"`
	MaxResults int    `mapstructure:"max_results"`
	Workers    int    `mapstructure:"workers"`
}

type ProfileConfig struct {
	TID uint16 `mapstructure:"tid"`
	SID uint16 `mapstructure:"sid"`
}

type FilterConfig struct {
	Shiny   bool     `mapstructure:"shiny"`
	HP      string   `mapstructure:"hp"`
	Atk     string   `mapstructure:"atk"`
	Def     string   `mapstructure:"def"`
	SpA     string   `mapstructure:"spa"`
	SpD     string   `mapstructure:"spd"`
	Spe     string   `mapstructure:"spe"`
	Natures []string `mapstructure:"natures"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // text | json
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// flagKeys maps config keys to the flags registered by Flags.
var flagKeys = map[string]string{
	"search.game":        "game",
	"search.method":      "method",
	"search.frames":      "frames",
	"search.max_results": "max-results",
	"search.workers":     "workers",
	"profile.tid":        "tid",
	"profile.sid":        "sid",
	"filter.shiny":       "shiny",
	"filter.hp":          "hp",
	"filter.atk":         "atk",
	"filter.def":         "def",
	"filter.spa":         "spa",
	"filter.spd":         "spd",
	"filter.spe":         "spe",
	"filter.natures":     "nature",
	"output.format":      "format",
	"log.level":          "log-level",
	"log.pretty":         "log-pretty",
}

// Flags registers the command line flags understood by Load.
func Flags(fs *pflag.FlagSet) {
	fs.String("game", "emerald", "Game whose initial seed is used (fire_red, leaf_green, emerald, ruby, sapphire).")
	fs.String("method", "1", "PID/IV generation method (1, 2 or 4).")
	fs.Uint64("frames", 100000, "Number of frames to enumerate.")
	fs.Int("max-results", 0, "Stop after this many matches (0 for no limit).")
	fs.Int("workers", 1, "Number of parallel workers; 1 searches lazily on one goroutine.")
	fs.Uint16("tid", 0, "Trainer ID used for the shiny check.")
	fs.Uint16("sid", 0, "Secret ID used for the shiny check.")
	fs.Bool("shiny", false, "Only report shiny frames.")
	fs.String("hp", "any", "HP IV comparison (any, =N, >N, <N).")
	fs.String("atk", "any", "Attack IV comparison.")
	fs.String("def", "any", "Defense IV comparison.")
	fs.String("spa", "any", "Special Attack IV comparison.")
	fs.String("spd", "any", "Special Defense IV comparison.")
	fs.String("spe", "any", "Speed IV comparison.")
	fs.StringSlice("nature", nil, "Allowed natures; repeat or separate with commas.")
	fs.String("format", "text", "Output format (text or json).")
	fs.String("log-level", "info", "Log level.")
	fs.Bool("log-pretty", false, "Human readable logs on stderr.")
}

// Load merges defaults, ./config/masuda.yaml, MASUDA_* environment variables
// and flags from fs (if non-nil), in increasing precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v, err := newViper(fs)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Watch loads the configuration like Load and calls onChange with the
// reloaded configuration whenever the config file is written. Flags keep
// their precedence over the file.
func Watch(fs *pflag.FlagSet, onChange func(*Config, error)) (*Config, error) {
	v, err := newViper(fs)
	if err != nil {
		return nil, err
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		l := log.L()
		l.Info().Str("file", e.Name).Str("op", e.Op.String()).Msg("config changed")
		onChange(decode(v))
	})
	v.WatchConfig()

	return cfg, nil
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v, err := pkgconfig.Load("./config", "masuda", "masuda")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("search.game", "emerald")
	v.SetDefault("search.method", "1")
	v.SetDefault("search.frames", 100000)
	v.SetDefault("search.max_results", 0)
	v.SetDefault("search.workers", 1)
	v.SetDefault("profile.tid", 0)
	v.SetDefault("profile.sid", 0)
	v.SetDefault("filter.shiny", false)
	v.SetDefault("filter.hp", "any")
	v.SetDefault("filter.atk", "any")
	v.SetDefault("filter.def", "any")
	v.SetDefault("filter.spa", "any")
	v.SetDefault("filter.spd", "any")
	v.SetDefault("filter.spe", "any")
	v.SetDefault("filter.natures", []string{})
	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("search.game", "MASUDA_GAME")
	v.BindEnv("search.method", "MASUDA_METHOD")
	v.BindEnv("search.frames", "MASUDA_FRAMES")
	v.BindEnv("search.workers", "MASUDA_WORKERS")
	v.BindEnv("profile.tid", "MASUDA_TID")
	v.BindEnv("profile.sid", "MASUDA_SID")
	v.BindEnv("filter.natures", "MASUDA_NATURES")
	v.BindEnv("log.level", "LOG_LEVEL")

	if fs != nil {
		if err := pkgconfig.BindFlags(v, fs, flagKeys); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
