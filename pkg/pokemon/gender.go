package pokemon

// Gender is derived from the low byte of a PID.
type Gender uint8

const (
	Female Gender = iota
	Male
)

func (g Gender) String() string {
	if g == Female {
		return "Female"
	}
	return "Male"
}

// Gender cutoffs: a PID whose low byte is at or below the cutoff is female.
const (
	CutoffOneEighthFemale    uint8 = 30
	CutoffOneQuarterFemale   uint8 = 63
	CutoffHalfFemale         uint8 = 126
	CutoffThreeQuarterFemale uint8 = 190
)
