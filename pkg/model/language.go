package model

type Language string

const (
	English  Language = "en"
	Japanese Language = "ja"

	DefaultLanguage = English
)

func Languages() []Language {
	return []Language{English, Japanese}
}

// ParseLanguage resolves a stored short code; anything unrecognised is reported as not found.
func ParseLanguage(code string) (Language, bool) {
	switch Language(code) {
	case English:
		return English, true
	case Japanese:
		return Japanese, true
	default:
		return DefaultLanguage, false
	}
}

func (l Language) Toggle() Language {
	if l == English {
		return Japanese
	}

	return English
}

func (l Language) DisplayName() string {
	if l == Japanese {
		return "日本語"
	}

	return "English"
}

func (l Language) String() string {
	return string(l)
}
