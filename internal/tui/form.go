// Package tui implements the interactive filter builder.
package tui

import (
	"fmt"

	"github.com/trstruth/masuda/pkg/filter"
	"github.com/trstruth/masuda/pkg/pokemon"
)

// Action is a form input, decoupled from the terminal key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionInc
	ActionDec
	ActionToggle
	ActionSearch
	ActionCancel
	ActionQuit
)

const (
	natureColumns = 5
	natureRows    = (pokemon.NumNatures + natureColumns - 1) / natureColumns

	rowShiny       = 0
	rowFirstStat   = 1
	rowFirstNature = rowFirstStat + pokemon.NumStats
	numRows        = rowFirstNature + natureRows
)

var ops = [...]filter.Op{filter.OpAny, filter.OpEqualTo, filter.OpGreaterThan, filter.OpLessThan}

// Form holds the editable filter state and the cursor position. The zero
// value is not usable; call NewForm.
type Form struct {
	shiny   bool
	stats   [pokemon.NumStats]filter.StatComparison
	natures [pokemon.NumNatures]bool

	row, col int
}

func NewForm() *Form {
	return &Form{}
}

// Cursor returns the focused row and column.
func (f *Form) Cursor() (row, col int) {
	return f.row, f.col
}

// Apply updates the form for a. Search, Cancel and Quit are left to the caller.
func (f *Form) Apply(a Action) {
	switch a {
	case ActionUp:
		if f.row > 0 {
			f.row--
		}
		f.clampCol()
	case ActionDown:
		if f.row < numRows-1 {
			f.row++
		}
		f.clampCol()
	case ActionLeft:
		if f.col > 0 {
			f.col--
		}
	case ActionRight:
		if f.col < f.columns(f.row)-1 {
			f.col++
		}
	case ActionInc:
		f.adjust(1)
	case ActionDec:
		f.adjust(-1)
	case ActionToggle:
		f.toggle()
	}
}

func (f *Form) columns(row int) int {
	switch {
	case row == rowShiny:
		return 1
	case row < rowFirstNature:
		return 2
	default:
		n := pokemon.NumNatures - (row-rowFirstNature)*natureColumns
		return min(n, natureColumns)
	}
}

func (f *Form) clampCol() {
	if n := f.columns(f.row); f.col >= n {
		f.col = n - 1
	}
}

func (f *Form) adjust(delta int) {
	if f.row < rowFirstStat || f.row >= rowFirstNature {
		f.toggle()
		return
	}
	c := &f.stats[f.row-rowFirstStat]
	if f.col == 0 {
		c.Op = ops[(opIndex(c.Op)+delta+len(ops))%len(ops)]
		return
	}
	v := int(c.Value) + delta
	if v < 0 || v > pokemon.MaxIV {
		return
	}
	c.Value = uint8(v)
}

func (f *Form) toggle() {
	switch {
	case f.row == rowShiny:
		f.shiny = !f.shiny
	case f.row < rowFirstNature:
		if f.col == 0 {
			f.adjust(1)
		}
	default:
		i := (f.row-rowFirstNature)*natureColumns + f.col
		f.natures[i] = !f.natures[i]
	}
}

func opIndex(op filter.Op) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}
	return 0
}

// Filter builds a filter from the current form state.
func (f *Form) Filter(profile pokemon.Profile) *filter.Filter {
	flt := filter.New(profile)
	if f.shiny {
		flt.Shiny()
	}
	for i, c := range f.stats {
		if c.Op == filter.OpAny {
			continue
		}
		flt.WithStat(filter.StatFilter{Stat: pokemon.Stats[i], Comparison: c})
	}
	for i, on := range f.natures {
		if on {
			flt.WithNature(pokemon.Natures[i])
		}
	}
	return flt
}

// Cell is one selectable element of a row.
type Cell struct {
	Text    string
	Active  bool
	Focused bool
}

// Row is a labelled line of the form.
type Row struct {
	Label string
	Cells []Cell
}

// View returns the form laid out as rows for rendering.
func (f *Form) View() []Row {
	rows := make([]Row, 0, numRows)

	rows = append(rows, Row{
		Label: "Shiny",
		Cells: []Cell{{Text: checkbox(f.shiny), Active: f.shiny}},
	})

	for i, c := range f.stats {
		active := c.Op != filter.OpAny
		value := "--"
		if active {
			value = fmt.Sprintf("%2d", c.Value)
		}
		rows = append(rows, Row{
			Label: pokemon.Stats[i].String(),
			Cells: []Cell{
				{Text: opSymbol(c.Op), Active: active},
				{Text: value, Active: active},
			},
		})
	}

	for r := 0; r < natureRows; r++ {
		row := Row{}
		if r == 0 {
			row.Label = "Natures"
		}
		for c := 0; c < f.columns(rowFirstNature+r); c++ {
			i := r*natureColumns + c
			row.Cells = append(row.Cells, Cell{
				Text:   fmt.Sprintf("%s %-7s", checkbox(f.natures[i]), pokemon.Natures[i]),
				Active: f.natures[i],
			})
		}
		rows = append(rows, row)
	}

	rows[f.row].Cells[f.col].Focused = true
	return rows
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func opSymbol(op filter.Op) string {
	switch op {
	case filter.OpEqualTo:
		return "="
	case filter.OpGreaterThan:
		return ">"
	case filter.OpLessThan:
		return "<"
	default:
		return "*"
	}
}
