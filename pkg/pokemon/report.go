package pokemon

import (
	"fmt"
	"strings"
)

// Report describes the PID-derived attributes of a single Pokemon.
type Report struct {
	PID     uint32
	Nature  Nature
	Ability uint8
	Gender  Gender // 50% female ratio
	Shiny   *bool  // nil when no profile was supplied
}

// Describe builds a Report for pid. profile may be nil.
func Describe(pid uint32, profile *Profile) Report {
	p := New(pid, IndividualValues{})
	r := Report{
		PID:     pid,
		Nature:  p.Nature(),
		Ability: p.Ability(),
		Gender:  p.Gender50F(),
	}
	if profile != nil {
		shiny := p.Shiny(*profile)
		r.Shiny = &shiny
	}
	return r
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "nature: %s\n", r.Nature)
	fmt.Fprintf(&b, "ability: %d\n", r.Ability)
	fmt.Fprintf(&b, "gender (50/50): %s\n", r.Gender)
	if r.Shiny == nil {
		b.WriteString("shiny: unknown\n")
	} else {
		fmt.Fprintf(&b, "shiny: %t\n", *r.Shiny)
	}
	return b.String()
}
