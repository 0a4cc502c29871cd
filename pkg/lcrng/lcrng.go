// Package lcrng implements the 32-bit linear congruential generator used by
// the third-generation games and the per-frame PID/IV derivation methods.
package lcrng

import "github.com/trstruth/masuda/pkg/pokemon"

// Generator constants. All arithmetic wraps modulo 2^32.
const (
	Multiplier uint32 = 0x41C64E6D
	Increment  uint32 = 0x6073
)

// LinearCongruential is a stateful generator. It is not safe for concurrent use.
type LinearCongruential struct {
	seed       uint32
	multiplier uint32
	increment  uint32
}

// New creates a generator with the given initial seed.
func New(seed uint32) *LinearCongruential {
	return &LinearCongruential{
		seed:       seed,
		multiplier: Multiplier,
		increment:  Increment,
	}
}

// Seed returns the current state.
func (l *LinearCongruential) Seed() uint32 {
	return l.seed
}

// SetSeed replaces the current state.
func (l *LinearCongruential) SetSeed(seed uint32) {
	l.seed = seed
}

// Step advances the generator once, discarding the output.
func (l *LinearCongruential) Step() {
	l.NextU32()
}

// NextU32 advances the generator and returns the new state.
func (l *LinearCongruential) NextU32() uint32 {
	l.seed = l.seed*l.multiplier + l.increment
	return l.seed
}

// NextU16 advances the generator and returns the upper 16 bits of the new state.
func (l *LinearCongruential) NextU16() uint16 {
	return uint16(l.NextU32() >> 16)
}

// GeneratePID draws two numbers. The second becomes the high half of the
// PID and the first the low half.
func (l *LinearCongruential) GeneratePID() uint32 {
	n1 := l.NextU16()
	n2 := l.NextU16()
	return uint32(n2)<<16 | uint32(n1)
}

// Generate returns the Pokemon produced on the current frame and moves to the
// next frame. The observable seed advances exactly once regardless of method.
func (l *LinearCongruential) Generate(m Method) pokemon.Pokemon {
	p := Derive(l.seed, m)
	l.Step()
	return p
}

// Method1 is Generate(MethodOne).
func (l *LinearCongruential) Method1() pokemon.Pokemon { return l.Generate(MethodOne) }

// Method2 is Generate(MethodTwo).
func (l *LinearCongruential) Method2() pokemon.Pokemon { return l.Generate(MethodTwo) }

// Method4 is Generate(MethodFour).
func (l *LinearCongruential) Method4() pokemon.Pokemon { return l.Generate(MethodFour) }

// Derive computes the Pokemon a frame with the given seed yields under m.
//
//	MethodOne:  [PID] [PID] [IVs] [IVs]
//	MethodTwo:  [PID] [PID] [xxxx] [IVs] [IVs]
//	MethodFour: [PID] [PID] [IVs] [xxxx] [IVs]
//
// The xxxx draws are consumed and ignored.
func Derive(seed uint32, m Method) pokemon.Pokemon {
	g := LinearCongruential{seed: seed, multiplier: Multiplier, increment: Increment}

	pid := g.GeneratePID()
	var n1, n2 uint16
	switch m {
	case MethodTwo:
		g.Step()
		n1 = g.NextU16()
		n2 = g.NextU16()
	case MethodFour:
		n1 = g.NextU16()
		g.Step()
		n2 = g.NextU16()
	default:
		n1 = g.NextU16()
		n2 = g.NextU16()
	}

	return pokemon.New(pid, pokemon.IVsFromNumbers(n1, n2))
}
