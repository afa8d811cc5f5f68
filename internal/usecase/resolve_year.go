package usecase

import (
	"context"

	"github.com/jjunho/lunar-year/internal/domain"
	"github.com/jjunho/lunar-year/internal/ports"
)

type ResolveYear struct {
	names ports.NameCatalog
}

func NewResolveYear(nc ports.NameCatalog) *ResolveYear {
	return &ResolveYear{names: nc}
}

// Result is a fully rendered year-name, ready for text or JSON output.
type Result struct {
	Year         int    `json:"year"`
	CycleOrdinal int    `json:"cycle_ordinal"`
	StemIndex    int    `json:"stem_index"`
	BranchIndex  int    `json:"branch_index"`
	Language     string `json:"language"`
	Display      string `json:"display"`
	Han          string `json:"han"`
}

// Execute resolves a Gregorian year within the sexagenary cycle and renders
// its name in the given language.
func (uc *ResolveYear) Execute(ctx context.Context, year int, lang domain.Language) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	pos, err := domain.Resolve(year)
	if err != nil {
		return Result{}, err
	}

	name, err := uc.names.Localize(pos, lang)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Year:         pos.Year,
		CycleOrdinal: pos.Ordinal,
		StemIndex:    pos.StemIndex,
		BranchIndex:  pos.BranchIndex,
		Language:     string(lang),
		Display:      name.Display,
		Han:          name.Han,
	}, nil
}
