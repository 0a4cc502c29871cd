package pokemon

import "fmt"

// Stat identifies one of the six individual values.
type Stat uint8

const (
	HP Stat = iota
	Attack
	Defense
	SpecialAttack
	SpecialDefense
	Speed
)

// NumStats is the number of individual values a Pokemon carries.
const NumStats = 6

// Stats lists every stat in canonical order.
var Stats = [NumStats]Stat{HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed}

var statNames = [NumStats]string{"HP", "Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed"}

func (s Stat) String() string {
	if int(s) >= NumStats {
		return fmt.Sprintf("Stat(%d)", s)
	}
	return statNames[s]
}

// MaxIV is the largest value a single IV can take.
const MaxIV = 31

const ivMask = 0x1F

// IndividualValues holds the six 5-bit IVs.
type IndividualValues struct {
	HP  uint8
	Atk uint8
	Def uint8
	SpA uint8
	SpD uint8
	Spe uint8
}

// NewIndividualValues builds IVs in canonical order.
func NewIndividualValues(hp, atk, def, spa, spd, spe uint8) IndividualValues {
	return IndividualValues{HP: hp, Atk: atk, Def: def, SpA: spa, SpD: spd, Spe: spe}
}

// IVsFromNumbers unpacks IVs from two consecutive 16-bit generator outputs.
//
//	n1: x|DefIV|AtkIV|HP IV
//	n2: x|SpDIV|SpAIV|SpeIV
//
// The top bit of each number is unused. For n1=0x5233, n2=0xE470 the result
// is 19/17/20/3/25/16.
func IVsFromNumbers(n1, n2 uint16) IndividualValues {
	return IndividualValues{
		HP:  uint8(n1 & ivMask),
		Atk: uint8((n1 >> 5) & ivMask),
		Def: uint8((n1 >> 10) & ivMask),
		Spe: uint8(n2 & ivMask),
		SpA: uint8((n2 >> 5) & ivMask),
		SpD: uint8((n2 >> 10) & ivMask),
	}
}

// Get returns the IV for s.
func (iv IndividualValues) Get(s Stat) uint8 {
	switch s {
	case HP:
		return iv.HP
	case Attack:
		return iv.Atk
	case Defense:
		return iv.Def
	case SpecialAttack:
		return iv.SpA
	case SpecialDefense:
		return iv.SpD
	case Speed:
		return iv.Spe
	}
	return 0
}

func (iv IndividualValues) String() string {
	return fmt.Sprintf("%d/%d/%d/%d/%d/%d", iv.HP, iv.Atk, iv.Def, iv.SpA, iv.SpD, iv.Spe)
}
