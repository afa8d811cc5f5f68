package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jjunho/lunar-year/internal/domain"
	"github.com/jjunho/lunar-year/internal/infra/config"
	"github.com/jjunho/lunar-year/internal/infra/configfinder"
	"github.com/jjunho/lunar-year/internal/ports"
	"github.com/jjunho/lunar-year/internal/usecase"
)

// parseYear validates the year argument arriving as untyped CLI input.
// Range checking belongs to the domain; this only rejects non-integers.
func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("year must be an integer, got %q", s)
	}
	return year, nil
}

// pickLanguage resolves the output language with precedence:
// positional argument > --language flag > config default.
func pickLanguage(positional, flag string, cfg domain.Config) (domain.Language, error) {
	switch {
	case positional != "":
		return domain.ParseLanguage(positional)
	case flag != "":
		return domain.ParseLanguage(flag)
	}
	return cfg.Defaults.Language, nil
}

// loadConfig finds and loads lunar.yaml. A missing config file is fine
// (defaults apply); a present but broken one is surfaced to the user.
func loadConfig() (domain.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return domain.DefaultConfig(), nil
	}

	var locator ports.ConfigLocator = configfinder.NewFinder()
	path, err := locator.Find(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	return config.Load(path)
}

func formatResult(res usecase.Result, separator string) string {
	return res.Display + separator + res.Han
}
