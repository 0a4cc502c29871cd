// Package filter builds predicates over generated Pokemon.
package filter

import "github.com/trstruth/masuda/pkg/pokemon"

// Filter matches a Pokemon when every stat comparison holds, its nature is in
// the nature set (an empty set allows all natures) and, if required, it is
// shiny for the profile.
//
// Builder methods modify the filter in place and return it for chaining.
// A Filter must not be modified while a search is using it.
type Filter struct {
	profile pokemon.Profile
	shiny   bool
	stats   [pokemon.NumStats]StatComparison
	natures uint32 // bit n set = Nature(n) allowed
}

// New creates a filter that matches everything.
func New(profile pokemon.Profile) *Filter {
	return &Filter{profile: profile}
}

// Shiny requires matches to be shiny for the filter's profile.
func (f *Filter) Shiny() *Filter {
	f.shiny = true
	return f
}

// WithStat sets the comparison for one stat, replacing any earlier one.
func (f *Filter) WithStat(sf StatFilter) *Filter {
	if int(sf.Stat) < pokemon.NumStats {
		f.stats[sf.Stat] = sf.Comparison
	}
	return f
}

// WithNature adds n to the allowed natures.
func (f *Filter) WithNature(n pokemon.Nature) *Filter {
	if int(n) < pokemon.NumNatures {
		f.natures |= 1 << n
	}
	return f
}

// WithNatures adds every nature in ns.
func (f *Filter) WithNatures(ns ...pokemon.Nature) *Filter {
	for _, n := range ns {
		f.WithNature(n)
	}
	return f
}

// Matches reports whether p satisfies the filter.
func (f *Filter) Matches(p pokemon.Pokemon) bool {
	for i := range f.stats {
		if !f.stats[i].Matches(p.IVs.Get(pokemon.Stat(i))) {
			return false
		}
	}

	if f.natures != 0 && f.natures&(1<<p.Nature()) == 0 {
		return false
	}

	if f.shiny && !p.Shiny(f.profile) {
		return false
	}
	return true
}

// Comparison returns the comparison configured for s.
func (f *Filter) Comparison(s pokemon.Stat) StatComparison {
	if int(s) >= pokemon.NumStats {
		return Any()
	}
	return f.stats[s]
}

// Natures returns the allowed natures in table order, or nil when any nature is allowed.
func (f *Filter) Natures() []pokemon.Nature {
	if f.natures == 0 {
		return nil
	}
	var ns []pokemon.Nature
	for _, n := range pokemon.Natures {
		if f.natures&(1<<n) != 0 {
			ns = append(ns, n)
		}
	}
	return ns
}

// ShinyRequired reports whether Shiny was called.
func (f *Filter) ShinyRequired() bool {
	return f.shiny
}

// Profile returns the trainer profile used for the shininess check.
func (f *Filter) Profile() pokemon.Profile {
	return f.profile
}
