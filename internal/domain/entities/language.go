package entities

// Language is an ISO 639-1 code of a supported language.
type Language string

const (
	LanguageRussian Language = "ru"
	LanguageChinese Language = "zh"
)

// Languages lists supported languages in display order.
var Languages = []Language{LanguageRussian, LanguageChinese}

// ParseLanguage returns the language for the given code.
func ParseLanguage(code string) (Language, bool) {
	l := Language(code)
	return l, l.Valid()
}

func (l Language) Valid() bool {
	return l == LanguageRussian || l == LanguageChinese
}

// Complement returns the only language that can be paired with l.
// Native and target languages are always complementary.
func (l Language) Complement() Language {
	switch l {
	case LanguageRussian:
		return LanguageChinese
	case LanguageChinese:
		return LanguageRussian
	default:
		return ""
	}
}
