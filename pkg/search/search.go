// Package search enumerates generator frames and collects the ones whose
// Pokemon pass a filter.
package search

import (
	"context"
	"fmt"
	"iter"

	"github.com/trstruth/masuda/pkg/filter"
	"github.com/trstruth/masuda/pkg/lcrng"
	"github.com/trstruth/masuda/pkg/pokemon"
)

// Result is a matching frame.
type Result struct {
	Frame   uint64
	Pokemon pokemon.Pokemon
}

func (r Result) String() string {
	return fmt.Sprintf("frame %d: %s", r.Frame, r.Pokemon)
}

// Searcher walks frames of a single generator. It is not safe for concurrent use.
type Searcher struct {
	game       lcrng.Game
	method     lcrng.Method
	frameLimit uint64
	rng        *lcrng.LinearCongruential
}

// New creates a Searcher seeded for game that derives frames with method and
// stops after frameLimit frames.
func New(game lcrng.Game, method lcrng.Method, frameLimit uint64) *Searcher {
	return &Searcher{
		game:       game,
		method:     method,
		frameLimit: frameLimit,
		rng:        lcrng.New(game.InitialSeed()),
	}
}

// Accessors for the searcher's configuration and current generator state.
func (s *Searcher) Game() lcrng.Game     { return s.game }
func (s *Searcher) Method() lcrng.Method { return s.method }
func (s *Searcher) FrameLimit() uint64   { return s.frameLimit }
func (s *Searcher) Seed() uint32         { return s.rng.Seed() }

// Results lazily yields matching frames in increasing order. A nil filter
// matches every frame.
//
// Each frame consumed advances the searcher's generator, and frame numbers
// restart at zero on every call. To replay from the initial seed, create a
// new Searcher.
func (s *Searcher) Results(f *filter.Filter) iter.Seq[Result] {
	return s.ResultsContext(context.Background(), f)
}

// ResultsContext is Results that also stops once ctx is done. The context is
// checked every 65536 frames, so a selective filter over a large frame range
// can still be abandoned; callers tell the two endings apart with ctx.Err().
func (s *Searcher) ResultsContext(ctx context.Context, f *filter.Filter) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for frame := uint64(0); frame < s.frameLimit; frame++ {
			if frame%cancelCheckInterval == 0 && ctx.Err() != nil {
				return
			}
			p := s.rng.Generate(s.method)
			if f != nil && !f.Matches(p) {
				continue
			}
			if !yield(Result{Frame: frame, Pokemon: p}) {
				return
			}
		}
	}
}

// Search runs all frameLimit frames and returns every match.
func (s *Searcher) Search(f *filter.Filter) []Result {
	var results []Result
	for r := range s.Results(f) {
		results = append(results, r)
	}
	return results
}
