package ports

import "github.com/jjunho/lunar-year/internal/domain"

// NameCatalog renders a resolved cycle position in a target language.
type NameCatalog interface {
	Localize(pos domain.CyclePosition, lang domain.Language) (domain.LocalizedName, error)
}
