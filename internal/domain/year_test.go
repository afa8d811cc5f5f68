package domain

import (
	"strings"
	"testing"
)

func TestResolveAnchor(t *testing.T) {
	pos, err := Resolve(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Ordinal != 1 || pos.StemIndex != 0 || pos.BranchIndex != 0 {
		t.Fatalf("expected (1, 0, 0) for year 4, got (%d, %d, %d)", pos.Ordinal, pos.StemIndex, pos.BranchIndex)
	}
}

func TestResolveKnownYears(t *testing.T) {
	cases := []struct {
		year    int
		ordinal int
	}{
		{63, 60},
		{64, 1},
		{1984, 1},
		{1985, 2},
		{2000, 17},
		{2020, 37},
		{2024, 41},
		{2025, 42},
		{2043, 60},
		{2044, 1},
	}
	for _, c := range cases {
		pos, err := Resolve(c.year)
		if err != nil {
			t.Fatalf("Resolve(%d): unexpected error: %v", c.year, err)
		}
		if pos.Ordinal != c.ordinal {
			t.Errorf("Resolve(%d).Ordinal = %d, want %d", c.year, pos.Ordinal, c.ordinal)
		}
		if pos.Year != c.year {
			t.Errorf("Resolve(%d).Year = %d, want %d", c.year, pos.Year, c.year)
		}
	}
}

func TestResolvePeriodicityAndParity(t *testing.T) {
	for year := MinYear; year+CycleLength <= MaxYear; year++ {
		pos, err := Resolve(year)
		if err != nil {
			t.Fatalf("Resolve(%d): unexpected error: %v", year, err)
		}
		if pos.Ordinal < 1 || pos.Ordinal > CycleLength {
			t.Fatalf("Resolve(%d).Ordinal = %d, outside [1, %d]", year, pos.Ordinal, CycleLength)
		}
		if pos.StemIndex%2 != pos.BranchIndex%2 {
			t.Fatalf("Resolve(%d): mismatched parity (%d, %d)", year, pos.StemIndex, pos.BranchIndex)
		}

		next, err := Resolve(year + CycleLength)
		if err != nil {
			t.Fatalf("Resolve(%d): unexpected error: %v", year+CycleLength, err)
		}
		if next.Ordinal != pos.Ordinal || next.StemIndex != pos.StemIndex || next.BranchIndex != pos.BranchIndex {
			t.Fatalf("Resolve(%d) and Resolve(%d) disagree", year, year+CycleLength)
		}
	}
}

func TestResolveOutOfRange(t *testing.T) {
	for _, year := range []int{3, 0, -100, 10000} {
		_, err := Resolve(year)
		if err == nil {
			t.Fatalf("Resolve(%d): expected error", year)
		}
		if !IsKind(err, KindYearRange) {
			t.Fatalf("Resolve(%d): expected kind %s, got %v", year, KindYearRange, err)
		}
		msg := err.Error()
		if !strings.Contains(msg, "4") || !strings.Contains(msg, "9999") {
			t.Errorf("Resolve(%d): message should state the bounds, got %q", year, msg)
		}
	}

	if _, err := Resolve(MaxYear); err != nil {
		t.Fatalf("Resolve(%d): unexpected error: %v", MaxYear, err)
	}
}

func TestPositionForOrdinal(t *testing.T) {
	for ordinal := 1; ordinal <= CycleLength; ordinal++ {
		pos, err := PositionForOrdinal(ordinal)
		if err != nil {
			t.Fatalf("PositionForOrdinal(%d): unexpected error: %v", ordinal, err)
		}
		if pos.Ordinal != ordinal {
			t.Fatalf("PositionForOrdinal(%d).Ordinal = %d", ordinal, pos.Ordinal)
		}

		resolved, err := Resolve(pos.Year)
		if err != nil {
			t.Fatalf("Resolve(%d): unexpected error: %v", pos.Year, err)
		}
		if resolved != pos {
			t.Fatalf("PositionForOrdinal(%d) = %+v, Resolve(%d) = %+v", ordinal, pos, pos.Year, resolved)
		}
	}

	for _, ordinal := range []int{0, -1, 61} {
		if _, err := PositionForOrdinal(ordinal); !IsKind(err, KindTableIndex) {
			t.Errorf("PositionForOrdinal(%d): expected kind %s, got %v", ordinal, KindTableIndex, err)
		}
	}
}

func TestFloorMod(t *testing.T) {
	cases := []struct {
		a, n, want int
	}{
		{0, 60, 0},
		{59, 60, 59},
		{60, 60, 0},
		{-1, 60, 59},
		{-60, 60, 0},
		{-61, 60, 59},
	}
	for _, c := range cases {
		if got := floorMod(c.a, c.n); got != c.want {
			t.Errorf("floorMod(%d, %d) = %d, want %d", c.a, c.n, got, c.want)
		}
	}
}
