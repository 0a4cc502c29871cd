package config

import (
	"sync/atomic"

	"github.com/trstruth/masuda/pkg/pokemon"
	"github.com/trstruth/masuda/pkg/search"
)

// Live holds the latest usable configuration of a long-running front-end.
// Its zero value is empty; call Init before Session.
type Live struct {
	cur atomic.Pointer[Config]
}

// Init sets the first configuration. A configuration stored by an earlier
// Update is newer and is kept.
func (l *Live) Init(cfg *Config) error {
	if _, err := cfg.NewSearcher(); err != nil {
		return err
	}
	l.cur.CompareAndSwap(nil, cfg)
	return nil
}

// Update replaces the configuration. A configuration whose game or method
// does not parse is rejected and the previous one stays in effect.
func (l *Live) Update(cfg *Config) error {
	if _, err := cfg.NewSearcher(); err != nil {
		return err
	}
	l.cur.Store(cfg)
	return nil
}

// Current returns the configuration in effect, or nil before Init.
func (l *Live) Current() *Config {
	return l.cur.Load()
}

// Session returns a searcher at its initial seed together with the trainer
// profile, both taken from the same configuration.
func (l *Live) Session() (*search.Searcher, pokemon.Profile) {
	cfg := l.cur.Load()
	s, _ := cfg.NewSearcher()
	return s, cfg.TrainerProfile()
}
