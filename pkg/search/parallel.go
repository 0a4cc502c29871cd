package search

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trstruth/masuda/pkg/filter"
	"github.com/trstruth/masuda/pkg/lcrng"
	"github.com/trstruth/masuda/pkg/log"
)

// cancelCheckInterval is how many frames a worker derives between context checks.
const cancelCheckInterval = 1 << 16

type partition struct {
	start, end uint64
}

func partitions(total uint64, workers int) []partition {
	if workers < 1 {
		workers = 1
	}
	if uint64(workers) > total {
		workers = int(total)
	}
	if workers == 0 {
		return nil
	}

	size := total / uint64(workers)
	rem := total % uint64(workers)
	parts := make([]partition, 0, workers)
	var start uint64
	for i := 0; i < workers; i++ {
		n := size
		if uint64(i) < rem {
			n++
		}
		parts = append(parts, partition{start: start, end: start + n})
		start += n
	}
	return parts
}

// SearchParallel splits the frame range across workers and returns the same
// results Search would, in the same order. Each worker jumps its own
// generator to the start of its partition. f is shared read-only.
//
// On success the searcher's generator ends where Search would leave it. On
// cancellation the context error is returned and the generator is untouched.
func (s *Searcher) SearchParallel(ctx context.Context, f *filter.Filter, workers int) ([]Result, error) {
	start := time.Now()
	l := log.Ctx(ctx)

	parts := partitions(s.frameLimit, workers)
	found := make([][]Result, len(parts))
	seed := s.rng.Seed()

	g, gCtx := errgroup.WithContext(ctx)
	for i, part := range parts {
		g.Go(func() error {
			l.Debug().
				Int(log.FieldWorker, i).
				Uint64("start", part.start).
				Uint64("end", part.end).
				Msg("partition started")

			rng := lcrng.New(seed)
			rng.Jump(part.start)

			var results []Result
			for frame := part.start; frame < part.end; frame++ {
				if (frame-part.start)%cancelCheckInterval == 0 {
					if err := gCtx.Err(); err != nil {
						return err
					}
				}
				p := rng.Generate(s.method)
				if f != nil && !f.Matches(p) {
					continue
				}
				results = append(results, Result{Frame: frame, Pokemon: p})
			}
			found[i] = results

			l.Debug().
				Int(log.FieldWorker, i).
				Int(log.FieldMatches, len(results)).
				Msg("partition finished")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []Result
	for _, r := range found {
		results = append(results, r...)
	}
	s.rng.Jump(s.frameLimit)

	l.Debug().
		Int(log.FieldWorkers, len(parts)).
		Int(log.FieldMatches, len(results)).
		Float64(log.FieldLatency, float64(time.Since(start).Milliseconds())).
		Msg("parallel search completed")

	return results, nil
}
