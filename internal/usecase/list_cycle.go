package usecase

import (
	"context"

	"github.com/jjunho/lunar-year/internal/domain"
	"github.com/jjunho/lunar-year/internal/ports"
)

type ListCycle struct {
	names ports.NameCatalog
}

func NewListCycle(nc ports.NameCatalog) *ListCycle {
	return &ListCycle{names: nc}
}

// Execute renders all 60 cycle entries in the given language, in ordinal
// order. The Year field of each entry is the first AD year of that ordinal.
func (uc *ListCycle) Execute(ctx context.Context, lang domain.Language) ([]Result, error) {
	out := make([]Result, 0, domain.CycleLength)
	for ordinal := 1; ordinal <= domain.CycleLength; ordinal++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pos, err := domain.PositionForOrdinal(ordinal)
		if err != nil {
			return nil, err
		}

		name, err := uc.names.Localize(pos, lang)
		if err != nil {
			return nil, err
		}

		out = append(out, Result{
			Year:         pos.Year,
			CycleOrdinal: pos.Ordinal,
			StemIndex:    pos.StemIndex,
			BranchIndex:  pos.BranchIndex,
			Language:     string(lang),
			Display:      name.Display,
			Han:          name.Han,
		})
	}
	return out, nil
}
