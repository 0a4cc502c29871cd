package lcrng

// Jump advances the generator by n steps in O(log n).
//
// Each step is the affine map x -> a*x + c. Squaring the map doubles the
// distance it covers, so n is consumed bit by bit while the accumulated map
// picks up the powers that are set.
func (l *LinearCongruential) Jump(n uint64) {
	accMult, accPlus := uint32(1), uint32(0)
	curMult, curPlus := l.multiplier, l.increment
	for n != 0 {
		if n&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus *= curMult + 1
		curMult *= curMult
		n >>= 1
	}
	l.seed = accMult*l.seed + accPlus
}
