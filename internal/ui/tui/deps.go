package tui

import (
	"log/slog"

	"github.com/jjunho/lunar-year/internal/domain"
	"github.com/jjunho/lunar-year/internal/ports"
)

// Deps carries the wiring the TUI needs from the caller.
type Deps struct {
	Catalog  ports.NameCatalog
	Logger   *slog.Logger
	Year     int             // year whose cycle entry starts selected
	Language domain.Language // initial display language
}
