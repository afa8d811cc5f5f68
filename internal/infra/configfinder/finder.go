package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/jjunho/lunar-year/internal/domain"
)

// Finder locates a lunar.yaml config file by searching upward from a
// starting directory. Absence of a config file is not fatal to callers;
// they fall back to defaults.
type Finder struct {
	ConfigFile string // defaults to "lunar.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: "lunar.yaml"}
}

func (f *Finder) Find(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.find",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If caller passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cfgPath, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "configfinder.find",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
