package domain

import (
	"fmt"
	"strings"
)

// Language identifies a reference-code language
type Language string

const (
	LanguageJava   Language = "java"
	LanguageCPP    Language = "cpp"
	LanguagePython Language = "python"
	LanguagePseudo Language = "pseudo"
)

// Languages returns the reference languages in cycle order
func Languages() []Language {
	return []Language{LanguageJava, LanguageCPP, LanguagePython, LanguagePseudo}
}

// ParseLanguage converts user input to a Language
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "java":
		return LanguageJava, nil
	case "cpp", "c++":
		return LanguageCPP, nil
	case "python", "py":
		return LanguagePython, nil
	case "pseudo", "pseudocode", "pseudo-code":
		return LanguagePseudo, nil
	}
	return "", fmt.Errorf("parse language %q: %w", s, ErrUnsupportedLanguage)
}

// Next returns the following language in cycle order
func (l Language) Next() Language {
	langs := Languages()
	for i, lang := range langs {
		if lang == l {
			return langs[(i+1)%len(langs)]
		}
	}
	return langs[0]
}

// Label returns a display label
func (l Language) Label() string {
	switch l {
	case LanguageJava:
		return "Java"
	case LanguageCPP:
		return "C++"
	case LanguagePython:
		return "Python"
	case LanguagePseudo:
		return "Pseudo-code"
	}
	return string(l)
}
