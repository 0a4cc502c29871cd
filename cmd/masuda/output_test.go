package main

import (
	"bytes"
	"testing"

	"github.com/trstruth/masuda/pkg/pokemon"
	"github.com/trstruth/masuda/pkg/search"
)

func TestWriter(t *testing.T) {
	r := search.Result{
		Frame:   3,
		Pokemon: pokemon.New(0x8e4231b0, pokemon.NewIndividualValues(12, 22, 24, 30, 11, 5)),
	}

	tests := []struct {
		format string
		want   string
	}{
		{"text", "frame 3: 8e4231b0 Bashful 12/22/24/30/11/5\n"},
		{"JSON", `{"frame":3,"pid":"8e4231b0","nature":"Bashful","ability":0,"gender_50f":"Male","ivs":{"hp":12,"atk":22,"def":24,"spa":30,"spd":11,"spe":5}}` + "\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		w := newWriter(&buf, tt.format)
		if err := w.write(r); err != nil {
			t.Fatal(err)
		}
		if err := w.flush(); err != nil {
			t.Fatal(err)
		}
		if buf.String() != tt.want {
			t.Errorf("%s: got %q, want %q", tt.format, buf.String(), tt.want)
		}
	}
}
