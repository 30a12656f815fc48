package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "devanagari text", text: "किसानों के लिए कोई योजना बताइए", expected: LangHindi},
		{name: "latin text", text: "tell me about farmer schemes", expected: LangEnglish},
		{name: "transliterated hindi reads as english", text: "kisan yojana ke baare mein batao", expected: LangEnglish},
		{name: "mostly devanagari with latin url", text: "वेबसाइट pmkisan पर जाएँ और फ़ॉर्म भरें क्योंकि यह ज़रूरी है", expected: LangHindi},
		{name: "empty text", text: "", expected: LangEnglish},
		{name: "digits only", text: "6000", expected: LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLanguage(tt.text))
		})
	}
}

func TestNormalizeLang(t *testing.T) {
	assert.Equal(t, LangHindi, NormalizeLang("hi"))
	assert.Equal(t, LangEnglish, NormalizeLang("en"))
	assert.Equal(t, "", NormalizeLang(""))
	assert.Equal(t, "", NormalizeLang("fr"))
}
