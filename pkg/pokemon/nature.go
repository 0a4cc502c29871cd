package pokemon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownNature is returned when a nature name does not match any entry in Natures.
var ErrUnknownNature = errors.New("unknown nature")

// Nature is an index into the Natures table.
type Nature uint8

const (
	Hardy Nature = iota
	Lonely
	Brave
	Adamant
	Naughty
	Bold
	Docile
	Relaxed
	Impish
	Lax
	Timid
	Hasty
	Serious
	Jolly
	Naive
	Modest
	Mild
	Quiet
	Bashful
	Rash
	Calm
	Gentle
	Sassy
	Careful
	Quirky
)

// NumNatures is the size of the nature table.
const NumNatures = 25

// Natures lists every nature in PID order: a PID selects Natures[(pid%100)%25].
var Natures = [NumNatures]Nature{
	Hardy, Lonely, Brave, Adamant, Naughty,
	Bold, Docile, Relaxed, Impish, Lax,
	Timid, Hasty, Serious, Jolly, Naive,
	Modest, Mild, Quiet, Bashful, Rash,
	Calm, Gentle, Sassy, Careful, Quirky,
}

var natureNames = [NumNatures]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

func (n Nature) String() string {
	if int(n) >= NumNatures {
		return fmt.Sprintf("Nature(%d)", n)
	}
	return natureNames[n]
}

// ParseNature looks a nature up by name, ignoring case and surrounding space.
func ParseNature(name string) (Nature, error) {
	name = strings.TrimSpace(name)
	for i, s := range natureNames {
		if strings.EqualFold(s, name) {
			return Nature(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNature, name)
}
