package domain

// Language is a supported interface language code
type Language string

const (
	LanguageUzbek   Language = "uz"
	LanguageRussian Language = "ru"
	LanguageEnglish Language = "en"
)

// DefaultLanguage is used for users who never picked a language
const DefaultLanguage = LanguageEnglish

// Languages lists all supported codes
var Languages = []Language{LanguageUzbek, LanguageRussian, LanguageEnglish}

// Valid reports whether l is a supported language code
func (l Language) Valid() bool {
	switch l {
	case LanguageUzbek, LanguageRussian, LanguageEnglish:
		return true
	}
	return false
}

// ParseLanguage returns the language for code, or the default if unknown
func ParseLanguage(code string) Language {
	l := Language(code)
	if l.Valid() {
		return l
	}
	return DefaultLanguage
}
