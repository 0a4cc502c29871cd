package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/trstruth/masuda/pkg/pokemon"
)

// ErrInvalidComparison is returned by ParseStatComparison for malformed input.
var ErrInvalidComparison = errors.New("invalid stat comparison")

// Op is the kind of comparison applied to a single IV.
type Op uint8

const (
	OpAny Op = iota
	OpEqualTo
	OpGreaterThan
	OpLessThan
)

var opSymbols = [...]string{OpAny: "any", OpEqualTo: "=", OpGreaterThan: ">", OpLessThan: "<"}

func (o Op) String() string {
	if int(o) < len(opSymbols) {
		return opSymbols[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// StatComparison is a predicate over one IV. The zero value matches anything.
type StatComparison struct {
	Op    Op
	Value uint8
}

// Constructors for each comparison kind. Any matches every IV.
func Any() StatComparison                { return StatComparison{} }
func EqualTo(v uint8) StatComparison     { return StatComparison{Op: OpEqualTo, Value: v} }
func GreaterThan(v uint8) StatComparison { return StatComparison{Op: OpGreaterThan, Value: v} }
func LessThan(v uint8) StatComparison    { return StatComparison{Op: OpLessThan, Value: v} }

// Matches applies the comparison to iv.
func (c StatComparison) Matches(iv uint8) bool {
	switch c.Op {
	case OpEqualTo:
		return iv == c.Value
	case OpGreaterThan:
		return iv > c.Value
	case OpLessThan:
		return iv < c.Value
	default:
		return true
	}
}

func (c StatComparison) String() string {
	if c.Op == OpAny {
		return "any"
	}
	return c.Op.String() + strconv.Itoa(int(c.Value))
}

// ParseStatComparison parses "any", "=N", ">N", "<N" or a bare "N".
// An empty string or "*" is Any. N must be an IV in [0,31].
func ParseStatComparison(s string) (StatComparison, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "any", "*":
		return Any(), nil
	}

	op := OpEqualTo
	rest := s
	switch {
	case strings.HasPrefix(s, "=="):
		rest = s[2:]
	case strings.HasPrefix(s, "="):
		rest = s[1:]
	case strings.HasPrefix(s, ">"):
		op, rest = OpGreaterThan, s[1:]
	case strings.HasPrefix(s, "<"):
		op, rest = OpLessThan, s[1:]
	}

	v, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 8)
	if err != nil {
		return Any(), fmt.Errorf("%w: %q: %v", ErrInvalidComparison, s, err)
	}
	if v > pokemon.MaxIV {
		return Any(), fmt.Errorf("%w: %q: value must be between 0 and %d", ErrInvalidComparison, s, pokemon.MaxIV)
	}
	return StatComparison{Op: op, Value: uint8(v)}, nil
}

// StatFilter pairs a comparison with the stat it applies to.
type StatFilter struct {
	Stat       pokemon.Stat
	Comparison StatComparison
}

// Helpers that bind a comparison to one stat, for use with Filter.WithStat.
func HP(c StatComparison) StatFilter             { return StatFilter{pokemon.HP, c} }
func Attack(c StatComparison) StatFilter         { return StatFilter{pokemon.Attack, c} }
func Defense(c StatComparison) StatFilter        { return StatFilter{pokemon.Defense, c} }
func SpecialAttack(c StatComparison) StatFilter  { return StatFilter{pokemon.SpecialAttack, c} }
func SpecialDefense(c StatComparison) StatFilter { return StatFilter{pokemon.SpecialDefense, c} }
func Speed(c StatComparison) StatFilter          { return StatFilter{pokemon.Speed, c} }
