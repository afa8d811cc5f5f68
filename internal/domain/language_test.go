package domain

import (
	"strings"
	"testing"
)

func TestParseLanguageValidCodes(t *testing.T) {
	for _, lang := range Languages() {
		got, err := ParseLanguage(string(lang))
		if err != nil {
			t.Fatalf("ParseLanguage(%q): unexpected error: %v", lang, err)
		}
		if got != lang {
			t.Fatalf("ParseLanguage(%q) = %q", lang, got)
		}
	}
}

func TestParseLanguageUnknown(t *testing.T) {
	for _, code := range []string{"spanish", "en", "CHI", ""} {
		_, err := ParseLanguage(code)
		if err == nil {
			t.Fatalf("ParseLanguage(%q): expected error", code)
		}
		if !IsKind(err, KindUnknownLanguage) {
			t.Fatalf("ParseLanguage(%q): expected kind %s, got %v", code, KindUnknownLanguage, err)
		}

		msg := err.Error()
		for _, valid := range []string{"chi", "kor", "jap", "viet", "eng"} {
			if !strings.Contains(msg, valid) {
				t.Errorf("ParseLanguage(%q): message should list %q, got %q", code, valid, msg)
			}
		}
	}
}

func TestLanguageLongNames(t *testing.T) {
	want := map[Language]string{
		LangChinese:    "Chinese",
		LangKorean:     "Korean",
		LangJapanese:   "Japanese",
		LangVietnamese: "Vietnamese",
		LangEnglish:    "English",
	}
	for lang, name := range want {
		if got := lang.LongName(); got != name {
			t.Errorf("LongName(%q) = %q, want %q", lang, got, name)
		}
	}
}
