package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/trstruth/masuda/pkg/filter"
	"github.com/trstruth/masuda/pkg/log"
	"github.com/trstruth/masuda/pkg/pokemon"
	"github.com/trstruth/masuda/pkg/search"
)

// MaxShown is the number of results displayed after a search.
const MaxShown = 10

var (
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleCell    = tcell.StyleDefault
	styleActive  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleFocused = tcell.StyleDefault.Reverse(true)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleResult  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Session supplies a Searcher at its initial seed and the trainer profile
// for the shiny check. It is called once per search.
type Session func() (*search.Searcher, pokemon.Profile)

// App drives the form on a tcell screen. Searches run on their own goroutine
// and report back through the screen's event queue.
type App struct {
	screen  tcell.Screen
	form    *Form
	session Session
	logger  zerolog.Logger

	results []search.Result
	status  string

	// gen identifies the latest search; results from older ones are dropped.
	gen    uint64
	cancel context.CancelFunc
}

type searchDone struct {
	gen     uint64
	results []search.Result
	err     error
	frames  uint64
	label   string
}

func NewApp(screen tcell.Screen, session Session, logger zerolog.Logger) *App {
	return &App{
		screen:  screen,
		form:    NewForm(),
		session: session,
		logger:  logger,
		status:  "press Enter to search",
	}
}

// Run processes events until the user quits.
func (a *App) Run() {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			act := keyAction(ev.Key(), ev.Rune())
			switch act {
			case ActionQuit:
				a.stop()
				return
			case ActionSearch:
				a.start()
			case ActionCancel:
				if a.cancel != nil {
					a.stop()
					a.status = "search cancelled"
				}
			default:
				a.form.Apply(act)
			}
		case *tcell.EventInterrupt:
			if d, ok := ev.Data().(searchDone); ok {
				a.finish(d)
			}
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			return
		}
		a.draw()
	}
}

// start cancels any running search and launches a new one.
func (a *App) start() {
	a.stop()

	s, profile := a.session()
	f := a.form.Filter(profile)
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	gen := a.gen
	label := fmt.Sprintf("%s, %s", s.Game(), s.Method())

	a.results = nil
	a.status = fmt.Sprintf("searching %d frames (%s), c to cancel", s.FrameLimit(), label)

	go func() {
		start := time.Now()
		results, err := FirstResults(ctx, s, f, MaxShown)

		a.logger.Debug().
			Err(err).
			Int(log.FieldMatches, len(results)).
			Uint64(log.FieldFrames, s.FrameLimit()).
			Float64(log.FieldLatency, float64(time.Since(start).Milliseconds())).
			Msg("search finished")

		done := searchDone{gen: gen, results: results, err: err, frames: s.FrameLimit(), label: label}
		if err := a.screen.PostEvent(tcell.NewEventInterrupt(done)); err != nil {
			a.logger.Warn().Err(err).Msg("dropped search results")
		}
	}()
}

// stop cancels the running search, if any, and invalidates its results.
func (a *App) stop() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.gen++
}

func (a *App) finish(d searchDone) {
	if d.gen != a.gen {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.results = d.results

	switch {
	case errors.Is(d.err, context.Canceled):
		a.status = "search cancelled"
	case len(d.results) == 0:
		a.status = fmt.Sprintf("no matches in %d frames", d.frames)
	default:
		a.status = fmt.Sprintf("first %d matches (%s)", len(d.results), d.label)
	}
}

// FirstResults returns at most n matches of f from s. It stops early when
// ctx is done and then returns the context error with the matches so far.
func FirstResults(ctx context.Context, s *search.Searcher, f *filter.Filter, n int) ([]search.Result, error) {
	var results []search.Result
	if n <= 0 {
		return results, nil
	}
	for r := range s.ResultsContext(ctx, f) {
		results = append(results, r)
		if len(results) == n {
			return results, nil
		}
	}
	return results, ctx.Err()
}

func keyAction(k tcell.Key, r rune) Action {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionSearch
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyRune:
		switch r {
		case 'k':
			return ActionUp
		case 'j':
			return ActionDown
		case 'h':
			return ActionLeft
		case 'l':
			return ActionRight
		case '+', '=':
			return ActionInc
		case '-', '_':
			return ActionDec
		case ' ', 'x':
			return ActionToggle
		case 'c':
			return ActionCancel
		case 'q':
			return ActionQuit
		}
	}
	return ActionNone
}

func (a *App) draw() {
	a.screen.Clear()

	y := 0
	a.text(0, y, "masuda filter builder", styleActive)
	y += 2

	for _, row := range a.form.View() {
		a.text(0, y, row.Label, styleLabel)
		x := 10
		for _, c := range row.Cells {
			style := styleCell
			if c.Active {
				style = styleActive
			}
			if c.Focused {
				style = styleFocused
			}
			a.text(x, y, c.Text, style)
			x += len(c.Text) + 2
		}
		y++
	}

	y++
	a.text(0, y, a.status, styleHelp)
	y++
	for _, r := range a.results {
		a.text(2, y, r.String(), styleResult)
		y++
	}

	_, h := a.screen.Size()
	a.text(0, h-1, "arrows/hjkl move  +/- change  space toggle  enter search  c cancel  esc quit", styleHelp)
	a.screen.Show()
}

func (a *App) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
