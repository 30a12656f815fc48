package classifier

// Supported language codes.
const (
	LangHindi   = "hi"
	LangEnglish = "en"
)

// NormalizeLang clamps an arbitrary language code to a supported one.
func NormalizeLang(lang string) string {
	switch lang {
	case LangHindi, LangEnglish:
		return lang
	}
	return ""
}

// DetectLanguage guesses the language of a transcript by comparing
// Devanagari and Latin letter counts. Transliterated Hindi written in
// Latin script is reported as English; the explanation templates handle
// both registers.
func DetectLanguage(text string) string {
	devanagari, latin := 0, 0
	for _, r := range text {
		switch {
		case r >= 0x0900 && r <= 0x097F:
			devanagari++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}
	if devanagari > latin {
		return LangHindi
	}
	return LangEnglish
}
