package search

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/trstruth/masuda/pkg/filter"
	"github.com/trstruth/masuda/pkg/lcrng"
	"github.com/trstruth/masuda/pkg/pokemon"
)

func TestSearchNoFilter(t *testing.T) {
	s := New(lcrng.FireRed, lcrng.MethodOne, 5)
	results := s.Search(nil)
	if len(results) != 5 {
		t.Fatalf("len(results) = %d, want 5", len(results))
	}

	wantPIDs := []uint32{0xe97e0000, 0x5271e97e, 0x31b05271, 0x8e4231b0, 0xe2cc8e42}
	for i, r := range results {
		if r.Frame != uint64(i) {
			t.Errorf("results[%d].Frame = %d", i, r.Frame)
		}
		if r.Pokemon.PID != wantPIDs[i] {
			t.Errorf("frame %d: PID = %#x, want %#x", i, r.Pokemon.PID, wantPIDs[i])
		}
	}
	if want := pokemon.NewIndividualValues(17, 19, 20, 13, 12, 16); results[0].Pokemon.IVs != want {
		t.Errorf("frame 0 IVs = %v, want %v", results[0].Pokemon.IVs, want)
	}
}

func TestSearchMethodTwo(t *testing.T) {
	results := New(lcrng.Emerald, lcrng.MethodTwo, 5).Search(nil)
	if want := pokemon.NewIndividualValues(16, 13, 12, 18, 3, 2); results[0].Pokemon.IVs != want {
		t.Errorf("frame 0 IVs = %v, want %v", results[0].Pokemon.IVs, want)
	}
	if want := pokemon.NewIndividualValues(27, 30, 25, 1, 31, 19); results[4].Pokemon.IVs != want {
		t.Errorf("frame 4 IVs = %v, want %v", results[4].Pokemon.IVs, want)
	}
}

func TestSearchRubySeed(t *testing.T) {
	results := New(lcrng.Ruby, lcrng.MethodOne, 3).Search(nil)
	want := []struct {
		pid    uint32
		nature pokemon.Nature
		ivs    pokemon.IndividualValues
	}{
		{0xbc23fb79, pokemon.Calm, pokemon.NewIndividualValues(22, 13, 5, 17, 5, 27)},
		{0x15b6bc23, pokemon.Lonely, pokemon.NewIndividualValues(27, 17, 5, 11, 30, 24)},
		{0x163b15b6, pokemon.Lax, pokemon.NewIndividualValues(24, 11, 30, 17, 6, 27)},
	}
	for i, w := range want {
		p := results[i].Pokemon
		if p.PID != w.pid || p.Nature() != w.nature || p.IVs != w.ivs {
			t.Errorf("frame %d = %s, want %08x %s %s", i, p, w.pid, w.nature, w.ivs)
		}
	}
}

func TestSearchFiltered(t *testing.T) {
	tests := []struct {
		name   string
		filter *filter.Filter
		frames []uint64
	}{
		{
			name:   "perfect speed",
			filter: filter.New(pokemon.Profile{}).WithStat(filter.Speed(filter.EqualTo(31))),
			frames: []uint64{43, 48, 76},
		},
		{
			name:   "bold",
			filter: filter.New(pokemon.Profile{}).WithNature(pokemon.Bold),
			frames: []uint64{7, 10, 14, 35, 59, 66, 86},
		},
		{
			name: "hp and attack",
			filter: filter.New(pokemon.Profile{}).
				WithStat(filter.HP(filter.GreaterThan(20))).
				WithStat(filter.Attack(filter.LessThan(10))),
			frames: []uint64{8, 11, 22, 23, 42, 49, 53, 54, 77, 80, 87, 88, 93, 97},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := New(lcrng.Emerald, lcrng.MethodOne, 100).Search(tt.filter)
			var frames []uint64
			for _, r := range results {
				if !tt.filter.Matches(r.Pokemon) {
					t.Errorf("frame %d does not satisfy the filter", r.Frame)
				}
				frames = append(frames, r.Frame)
			}
			if !slices.Equal(frames, tt.frames) {
				t.Fatalf("frames = %v, want %v", frames, tt.frames)
			}
		})
	}
}

func TestSearchShiny(t *testing.T) {
	f := filter.New(pokemon.NewProfile(10101, 12345)).Shiny()
	for r := range New(lcrng.Emerald, lcrng.MethodOne, 50000).Results(f) {
		if r.Frame != 20382 || r.Pokemon.PID != 0x5fe348af {
			t.Fatalf("first shiny = %s, want frame 20382 pid 5fe348af", r)
		}
		if want := pokemon.NewIndividualValues(4, 17, 26, 21, 15, 31); r.Pokemon.IVs != want {
			t.Fatalf("IVs = %v, want %v", r.Pokemon.IVs, want)
		}
		return
	}
	t.Fatal("no shiny frame found")
}

func TestSearchZeroFrames(t *testing.T) {
	if got := New(lcrng.Emerald, lcrng.MethodOne, 0).Search(nil); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestResultsStopsEarly(t *testing.T) {
	f := filter.New(pokemon.Profile{}).WithNature(pokemon.Bold)
	want := New(lcrng.Emerald, lcrng.MethodOne, 100).Search(f)

	s := New(lcrng.Emerald, lcrng.MethodOne, 100)
	var got []Result
	for r := range s.Results(f) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}
	if !slices.Equal(got, want[:3]) {
		t.Fatalf("lazy prefix = %v, want %v", got, want[:3])
	}

	// Only frames 0..14 were consumed.
	ref := lcrng.New(0)
	ref.Jump(15)
	if s.Seed() != ref.Seed() {
		t.Fatalf("seed = %#x, want %#x", s.Seed(), ref.Seed())
	}
}

func TestResultsContinuesFromCurrentSeed(t *testing.T) {
	s := New(lcrng.Emerald, lcrng.MethodOne, 5)
	first := s.Search(nil)
	second := s.Search(nil)

	if second[0].Frame != 0 {
		t.Fatalf("second run starts at frame %d, want 0", second[0].Frame)
	}
	if second[0].Pokemon == first[0].Pokemon {
		t.Fatal("second run replayed the initial seed")
	}

	fresh := New(lcrng.Emerald, lcrng.MethodOne, 10).Search(nil)
	if second[0].Pokemon != fresh[5].Pokemon {
		t.Fatalf("second run frame 0 = %s, want %s", second[0].Pokemon, fresh[5].Pokemon)
	}
}

func TestSearchParallelMatchesSearch(t *testing.T) {
	f := filter.New(pokemon.Profile{}).
		WithStat(filter.HP(filter.GreaterThan(20))).
		WithStat(filter.Attack(filter.LessThan(10)))

	for _, method := range []lcrng.Method{lcrng.MethodOne, lcrng.MethodTwo, lcrng.MethodFour} {
		seq := New(lcrng.Sapphire, method, 5000)
		want := seq.Search(f)

		for _, workers := range []int{1, 2, 3, 7, 16} {
			par := New(lcrng.Sapphire, method, 5000)
			got, err := par.SearchParallel(context.Background(), f, workers)
			if err != nil {
				t.Fatalf("%s/%d: SearchParallel: %v", method, workers, err)
			}
			if !slices.Equal(got, want) {
				t.Fatalf("%s/%d: %d results differ from sequential %d", method, workers, len(got), len(want))
			}
			if par.Seed() != seq.Seed() {
				t.Fatalf("%s/%d: seed = %#x, want %#x", method, workers, par.Seed(), seq.Seed())
			}
		}
	}
}

func TestSearchParallelNoFilter(t *testing.T) {
	got, err := New(lcrng.Emerald, lcrng.MethodOne, 10).SearchParallel(context.Background(), nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[9].Pokemon.PID != 4234080044 {
		t.Fatalf("frame 9 PID = %d, want 4234080044", got[9].Pokemon.PID)
	}
	if want := pokemon.NewIndividualValues(5, 22, 18, 30, 26, 22); got[9].Pokemon.IVs != want {
		t.Fatalf("frame 9 IVs = %v, want %v", got[9].Pokemon.IVs, want)
	}
}

func TestSearchParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(lcrng.Emerald, lcrng.MethodOne, 1000)
	if _, err := s.SearchParallel(ctx, nil, 4); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if s.Seed() != 0 {
		t.Fatalf("seed moved to %#x after cancellation", s.Seed())
	}
}

func TestPartitions(t *testing.T) {
	tests := []struct {
		total   uint64
		workers int
		want    []partition
	}{
		{10, 3, []partition{{0, 4}, {4, 7}, {7, 10}}},
		{4, 8, []partition{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
		{5, 0, []partition{{0, 5}}},
		{0, 4, nil},
	}
	for _, tt := range tests {
		if got := partitions(tt.total, tt.workers); !slices.Equal(got, tt.want) {
			t.Errorf("partitions(%d, %d) = %v, want %v", tt.total, tt.workers, got, tt.want)
		}
	}
}

func TestResultString(t *testing.T) {
	r := Result{Frame: 0, Pokemon: pokemon.New(0xe97e0000, pokemon.NewIndividualValues(17, 19, 20, 13, 12, 16))}
	if got, want := r.String(), "frame 0: e97e0000 Naive 17/19/20/13/12/16"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func BenchmarkSearch(b *testing.B) {
	f := filter.New(pokemon.Profile{}).WithStat(filter.Speed(filter.EqualTo(31)))
	for b.Loop() {
		New(lcrng.Emerald, lcrng.MethodOne, 10000).Search(f)
	}
}

func TestResultsContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nothing can match, so without cancellation this would walk 2^40 frames.
	f := filter.New(pokemon.Profile{}).WithStat(filter.HP(filter.GreaterThan(31)))
	s := New(lcrng.Emerald, lcrng.MethodOne, 1<<40)
	for r := range s.ResultsContext(ctx, f) {
		t.Fatalf("unexpected result %s", r)
	}
	if s.Seed() != 0 {
		t.Fatalf("seed = %#x, want generator untouched", s.Seed())
	}
}

func TestResultsContextStopsMidRange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(lcrng.Emerald, lcrng.MethodOne, 1<<40)
	var n int
	for range s.ResultsContext(ctx, nil) {
		n++
		if n == 10 {
			cancel()
		}
	}
	if n != cancelCheckInterval {
		t.Fatalf("yielded %d frames, want %d", n, cancelCheckInterval)
	}
}
