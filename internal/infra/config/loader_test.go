package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jjunho/lunar-year/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lunar.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
defaults:
  language: viet
output:
  separator: "  "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Language != domain.LangVietnamese {
		t.Errorf("expected language viet, got %q", cfg.Defaults.Language)
	}
	if cfg.Output.Separator != "  " {
		t.Errorf("expected two-space separator, got %q", cfg.Output.Separator)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
defaults:
  language: kor
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Language != domain.LangKorean {
		t.Errorf("expected language kor, got %q", cfg.Defaults.Language)
	}
	if cfg.Output.Separator != "\t" {
		t.Errorf("expected default tab separator, got %q", cfg.Output.Separator)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "not_there.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected kind %s, got %v", domain.KindNotFound, err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "defaults: [not, a, map")

	_, err := Load(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected kind %s, got %v", domain.KindInvalidConfig, err)
	}
}

func TestLoadUnknownDefaultLanguage(t *testing.T) {
	path := writeConfig(t, `
defaults:
  language: spanish
`)

	_, err := Load(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected kind %s, got %v", domain.KindInvalidConfig, err)
	}
}
