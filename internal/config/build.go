package config

import (
	"fmt"
	"strings"

	"github.com/trstruth/masuda/pkg/filter"
	"github.com/trstruth/masuda/pkg/lcrng"
	"github.com/trstruth/masuda/pkg/pokemon"
	"github.com/trstruth/masuda/pkg/search"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Validate checks the fields that have no natural parse step.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unsupported output format %q", c.Output.Format)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Search.Workers)
	}
	if c.Search.MaxResults < 0 {
		return fmt.Errorf("max_results must not be negative, got %d", c.Search.MaxResults)
	}
	return nil
}

// NewSearcher parses the game and method and creates a Searcher.
func (c *Config) NewSearcher() (*search.Searcher, error) {
	game, err := lcrng.ParseGame(c.Search.Game)
	if err != nil {
		return nil, fmt.Errorf("search.game: %w", err)
	}
	method, err := lcrng.ParseMethod(c.Search.Method)
	if err != nil {
		return nil, fmt.Errorf("search.method: %w", err)
	}
	return search.New(game, method, c.Search.Frames), nil
}

// TrainerProfile returns the configured trainer profile.
func (c *Config) TrainerProfile() pokemon.Profile {
	return pokemon.NewProfile(c.Profile.TID, c.Profile.SID)
}

// NewFilter builds the filter described by the filter section. It returns
// nil when nothing is constrained so the search can skip matching entirely.
func (c *Config) NewFilter() (*filter.Filter, error) {
	fc := c.Filter
	f := filter.New(c.TrainerProfile())
	constrained := false

	exprs := []struct {
		key   string
		expr  string
		build func(filter.StatComparison) filter.StatFilter
	}{
		{"filter.hp", fc.HP, filter.HP},
		{"filter.atk", fc.Atk, filter.Attack},
		{"filter.def", fc.Def, filter.Defense},
		{"filter.spa", fc.SpA, filter.SpecialAttack},
		{"filter.spd", fc.SpD, filter.SpecialDefense},
		{"filter.spe", fc.Spe, filter.Speed},
	}
	for _, e := range exprs {
		cmp, err := filter.ParseStatComparison(e.expr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.key, err)
		}
		if cmp.Op != filter.OpAny {
			f.WithStat(e.build(cmp))
			constrained = true
		}
	}

	for _, raw := range fc.Natures {
		for _, name := range strings.Split(raw, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			n, err := pokemon.ParseNature(name)
			if err != nil {
				return nil, fmt.Errorf("filter.natures: %w", err)
			}
			f.WithNature(n)
			constrained = true
		}
	}

	if fc.Shiny {
		f.Shiny()
		constrained = true
	}

	if !constrained {
		return nil, nil
	}
	return f, nil
}
