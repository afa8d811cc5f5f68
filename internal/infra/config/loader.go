package config

import (
	"os"

	"github.com/jjunho/lunar-year/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads lunar.yaml from path and maps it onto the domain config.
// Missing fields keep their defaults; an unknown default language is an
// invalid config, not a silently ignored one.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapConfig(path, dto)
}

func mapConfig(path string, dto YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if dto.Defaults.Language != "" {
		lang, err := domain.ParseLanguage(dto.Defaults.Language)
		if err != nil {
			return domain.Config{}, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		cfg.Defaults.Language = lang
	}

	if dto.Output.Separator != "" {
		cfg.Output.Separator = dto.Output.Separator
	}

	return cfg, nil
}
