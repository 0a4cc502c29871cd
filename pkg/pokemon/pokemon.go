package pokemon

import "fmt"

// Pokemon is the entity produced by one generator frame.
type Pokemon struct {
	PID uint32
	IVs IndividualValues
}

// New creates a Pokemon from a PID and its IVs.
func New(pid uint32, ivs IndividualValues) Pokemon {
	return Pokemon{PID: pid, IVs: ivs}
}

// Ability is the last bit of the PID.
func (p Pokemon) Ability() uint8 {
	return uint8(p.PID % 2)
}

// Nature takes the last two decimal digits of the PID modulo 25.
func (p Pokemon) Nature() Nature {
	return Natures[(p.PID%100)%25]
}

// GenderNumber is the low byte of the PID.
func (p Pokemon) GenderNumber() uint8 {
	return uint8(p.PID & 0xFF)
}

// Gender compares the gender number against a ratio cutoff.
func (p Pokemon) Gender(cutoff uint8) Gender {
	if p.GenderNumber() <= cutoff {
		return Female
	}
	return Male
}

// Gender for species with a 12.5%, 25%, 50% or 75% female ratio.
func (p Pokemon) Gender12_5F() Gender { return p.Gender(CutoffOneEighthFemale) }
func (p Pokemon) Gender25F() Gender   { return p.Gender(CutoffOneQuarterFemale) }
func (p Pokemon) Gender50F() Gender   { return p.Gender(CutoffHalfFemale) }
func (p Pokemon) Gender75F() Gender   { return p.Gender(CutoffThreeQuarterFemale) }

// Shiny reports whether the Pokemon is shiny for the given trainer.
func (p Pokemon) Shiny(profile Profile) bool {
	return IsShiny(p.PID, profile.TID, profile.SID)
}

// IsShiny XORs the PID halves with the trainer and secret IDs and requires
// bits 15 through 3 of the result to be clear.
func IsShiny(pid uint32, tid, sid uint16) bool {
	hi := uint16(pid >> 16)
	lo := uint16(pid)
	x := hi ^ lo ^ tid ^ sid
	for bit := 15; bit >= 3; bit-- {
		if (x>>bit)&1 != 0 {
			return false
		}
	}
	return true
}

func (p Pokemon) String() string {
	return fmt.Sprintf("%08x %s %s", p.PID, p.Nature(), p.IVs)
}
