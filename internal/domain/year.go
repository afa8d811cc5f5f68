package domain

import "fmt"

// Bounds of the supported Gregorian year domain. Year 4 AD is the
// conventional anchor of the cycle (jiǎ-zǐ, ordinal 1); preserve it
// exactly, no astronomical correction.
const (
	MinYear = 4
	MaxYear = 9999

	CycleLength = 60
	StemCount   = 10
	BranchCount = 12
)

// CyclePosition locates a Gregorian year within the 60-year sexagenary cycle.
// StemIndex and BranchIndex always derive from the same offset, so they share
// the same parity; only 60 of the naive 120 pairs can occur.
type CyclePosition struct {
	Year        int
	StemIndex   int // 0..9
	BranchIndex int // 0..11
	Ordinal     int // 1..60, 1-based position within the cycle
}

// Resolve maps a Gregorian year to its cycle position.
// Fails with KindYearRange when year is outside [MinYear, MaxYear].
func Resolve(year int) (CyclePosition, error) {
	if year < MinYear || year > MaxYear {
		return CyclePosition{}, &OpError{
			Op:   "domain.resolve",
			Kind: KindYearRange,
			Err:  fmt.Errorf("year %d out of range [%d, %d]", year, MinYear, MaxYear),
		}
	}

	offset := floorMod(year-MinYear, CycleLength)
	return CyclePosition{
		Year:        year,
		StemIndex:   offset % StemCount,
		BranchIndex: offset % BranchCount,
		Ordinal:     offset + 1,
	}, nil
}

// PositionForOrdinal returns the cycle position for a 1-based ordinal in [1, 60].
// The Year field is set to the first AD year carrying that ordinal.
func PositionForOrdinal(ordinal int) (CyclePosition, error) {
	if ordinal < 1 || ordinal > CycleLength {
		return CyclePosition{}, &OpError{
			Op:   "domain.position_for_ordinal",
			Kind: KindTableIndex,
			Err:  fmt.Errorf("ordinal %d out of range [1, %d]", ordinal, CycleLength),
		}
	}

	offset := ordinal - 1
	return CyclePosition{
		Year:        MinYear + offset,
		StemIndex:   offset % StemCount,
		BranchIndex: offset % BranchCount,
		Ordinal:     ordinal,
	}, nil
}

// floorMod is a modulo with an always non-negative result. The supported
// domain excludes negative offsets, but the cycle arithmetic must stay
// well-defined if the lower bound ever moves before 4 AD.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
