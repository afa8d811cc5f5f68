package domain

import (
	"fmt"
	"strings"
)

// Language is one of the five fixed output languages.
type Language string

const (
	LangChinese    Language = "chi"
	LangKorean     Language = "kor"
	LangJapanese   Language = "jap"
	LangVietnamese Language = "viet"
	LangEnglish    Language = "eng"
)

// Languages returns the supported codes in stable display order.
func Languages() []Language {
	return []Language{LangChinese, LangKorean, LangJapanese, LangVietnamese, LangEnglish}
}

// LongName returns the human-readable name of the language.
func (l Language) LongName() string {
	switch l {
	case LangChinese:
		return "Chinese"
	case LangKorean:
		return "Korean"
	case LangJapanese:
		return "Japanese"
	case LangVietnamese:
		return "Vietnamese"
	case LangEnglish:
		return "English"
	}
	return string(l)
}

// ParseLanguage validates an untyped code arriving from external input
// (CLI argument, config file). Fails with KindUnknownLanguage; the message
// enumerates the valid codes.
func ParseLanguage(code string) (Language, error) {
	switch Language(code) {
	case LangChinese, LangKorean, LangJapanese, LangVietnamese, LangEnglish:
		return Language(code), nil
	}
	return "", &OpError{
		Op:   "domain.parse_language",
		Kind: KindUnknownLanguage,
		Err:  fmt.Errorf("unknown language %q, valid codes: %s", code, strings.Join(languageCodes(), ", ")),
	}
}

func languageCodes() []string {
	langs := Languages()
	codes := make([]string, len(langs))
	for i, l := range langs {
		codes[i] = string(l)
	}
	return codes
}
