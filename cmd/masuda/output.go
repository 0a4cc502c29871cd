package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/trstruth/masuda/internal/config"
	"github.com/trstruth/masuda/pkg/search"
)

type ivsJSON struct {
	HP  uint8 `json:"hp"`
	Atk uint8 `json:"atk"`
	Def uint8 `json:"def"`
	SpA uint8 `json:"spa"`
	SpD uint8 `json:"spd"`
	Spe uint8 `json:"spe"`
}

type resultJSON struct {
	Frame   uint64  `json:"frame"`
	PID     string  `json:"pid"`
	Nature  string  `json:"nature"`
	Ability uint8   `json:"ability"`
	Gender  string  `json:"gender_50f"`
	IVs     ivsJSON `json:"ivs"`
}

type writer struct {
	buf  *bufio.Writer
	json *json.Encoder
}

func newWriter(out io.Writer, format string) *writer {
	w := &writer{buf: bufio.NewWriter(out)}
	if strings.EqualFold(format, config.FormatJSON) {
		w.json = json.NewEncoder(w.buf)
	}
	return w
}

func (w *writer) write(r search.Result) error {
	if w.json == nil {
		_, err := fmt.Fprintln(w.buf, r)
		return err
	}

	p := r.Pokemon
	return w.json.Encode(resultJSON{
		Frame:   r.Frame,
		PID:     hex32(p.PID),
		Nature:  p.Nature().String(),
		Ability: p.Ability(),
		Gender:  p.Gender50F().String(),
		IVs: ivsJSON{
			HP:  p.IVs.HP,
			Atk: p.IVs.Atk,
			Def: p.IVs.Def,
			SpA: p.IVs.SpA,
			SpD: p.IVs.SpD,
			Spe: p.IVs.Spe,
		},
	})
}

func (w *writer) flush() error {
	return w.buf.Flush()
}

func hex32(v uint32) string {
	return fmt.Sprintf("%08x", v)
}
