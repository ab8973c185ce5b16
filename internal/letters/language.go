// Package letters renders localized support letters from bundled templates.
// Rendering is pure and deterministic; delivery and persistence are layered
// on top by Service.
package letters

import (
	"strings"

	"hopeconnect/internal/common/errors"
)

// Language is a supported template language.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
	Chinese Language = "zh"

	DefaultLanguage = English
)

// Languages lists every supported language in catalogue order.
var Languages = []Language{English, Spanish, French, German, Chinese}

// ParseLanguage accepts "fr", "FR" or "fr-CA" style codes.
func ParseLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	for _, l := range Languages {
		if string(l) == code {
			return l, true
		}
	}
	return "", false
}

// ResolveLanguage never fails: unknown codes fall back to DefaultLanguage.
func ResolveLanguage(code string) Language {
	if l, ok := ParseLanguage(code); ok {
		return l
	}
	return DefaultLanguage
}

// LetterType is the purpose of a letter.
type LetterType string

const (
	Housing    LetterType = "housing"
	Employment LetterType = "employment"
	Services   LetterType = "services"
	General    LetterType = "general"
)

var LetterTypes = []LetterType{Housing, Employment, Services, General}

// ParseLetterType has no fallback; anything outside LetterTypes is a
// validation error.
func ParseLetterType(s string) (LetterType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range LetterTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.NewUnknownLetterTypeError(s)
}

// Gender selects a pronoun set.
type Gender int

const (
	Neutral Gender = iota
	Male
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "neutral"
	}
}

// ParseGender maps "male" and "female" (any case) to their values. Everything
// else, including "", is Neutral.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male
	case "female":
		return Female
	default:
		return Neutral
	}
}
