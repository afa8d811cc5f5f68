package domain

import "fmt"

// LocalizedName is the rendered year-name in one language. Han is the
// two-character stem+branch pair, identical across all five languages.
type LocalizedName struct {
	Display string
	Han     string
}

// onOverrides holds the handful of Japanese on'yomi readings that do not
// follow from plain stem+branch concatenation (euphonic fusion, apostrophes,
// and the historical kasshi variant). Keyed by cycle ordinal.
var onOverrides = map[int]string{
	1:  "kōshi(kasshi)",
	2:  "itchū",
	39: "jin'in",
	58: "shin'yū",
}

// Localize renders the year-name of a cycle position in the given language.
// Fails with KindUnknownLanguage for codes outside the fixed set and with
// KindTableIndex for out-of-range indices or parity-mismatched pairs
// (unreachable for positions built by Resolve, kept as a guard for
// hand-constructed values).
func Localize(pos CyclePosition, lang Language) (LocalizedName, error) {
	if pos.StemIndex < 0 || pos.StemIndex >= StemCount ||
		pos.BranchIndex < 0 || pos.BranchIndex >= BranchCount {
		return LocalizedName{}, &OpError{
			Op:   "domain.localize",
			Kind: KindTableIndex,
			Err:  fmt.Errorf("indices (%d, %d) outside stem [0,%d) / branch [0,%d)", pos.StemIndex, pos.BranchIndex, StemCount, BranchCount),
		}
	}
	if pos.StemIndex%2 != pos.BranchIndex%2 {
		return LocalizedName{}, &OpError{
			Op:   "domain.localize",
			Kind: KindTableIndex,
			Err:  fmt.Errorf("stem %d and branch %d have mismatched parity; the pair never occurs in the cycle", pos.StemIndex, pos.BranchIndex),
		}
	}

	stem := stems[pos.StemIndex]
	branch := branches[pos.BranchIndex]
	han := stem.Han + branch.Han

	switch lang {
	case LangChinese:
		return LocalizedName{Display: stem.Pinyin + "-" + branch.Pinyin, Han: han}, nil

	case LangKorean:
		return LocalizedName{Display: stem.Korean + branch.Korean + " " + stem.Hangul + branch.Hangul, Han: han}, nil

	case LangJapanese:
		on := stem.OnReading + branch.OnReading
		if o, ok := onOverrides[ordinalFor(pos.StemIndex, pos.BranchIndex)]; ok {
			on = o
		}
		return LocalizedName{Display: on + "/" + stem.KunReading + "-" + branch.KunReading, Han: han}, nil

	case LangVietnamese:
		return LocalizedName{Display: stem.Vietnamese + " " + branch.Vietnamese, Han: han}, nil

	case LangEnglish:
		return LocalizedName{Display: Polarity(pos.StemIndex) + " " + Element(pos.StemIndex) + " " + branch.Animal, Han: han}, nil
	}

	_, err := ParseLanguage(string(lang))
	return LocalizedName{}, err
}

// ordinalFor recovers the 1-based cycle ordinal from a parity-consistent
// stem/branch pair (CRT over the 10- and 12-cycles). Callers guard parity,
// so the loop always terminates with a match.
func ordinalFor(stemIndex, branchIndex int) int {
	for offset := stemIndex; offset < CycleLength; offset += StemCount {
		if offset%BranchCount == branchIndex {
			return offset + 1
		}
	}
	return 0 // unreachable for parity-consistent pairs
}

// Catalog is the domain-backed implementation of ports.NameCatalog.
type Catalog struct{}

func (Catalog) Localize(pos CyclePosition, lang Language) (LocalizedName, error) {
	return Localize(pos, lang)
}
