package classifier

import (
	"testing"

	"yojana-sahayak/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify_KeywordMatching(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		expected   models.Category
	}{
		{
			name:       "transliterated farmer keyword",
			transcript: "kisan yojana ke baare mein batao",
			expected:   models.CategoryFarmer,
		},
		{
			name:       "devanagari farmer keyword",
			transcript: "किसान के लिए कौन सी योजना है",
			expected:   models.CategoryFarmer,
		},
		{
			name:       "english farmer keyword",
			transcript: "Tell me about crop insurance",
			expected:   models.CategoryFarmer,
		},
		{
			name:       "english student keyword",
			transcript: "how can I get a scholarship",
			expected:   models.CategoryStudent,
		},
		{
			name:       "devanagari student keyword",
			transcript: "छात्र के लिए योजना",
			expected:   models.CategoryStudent,
		},
		{
			name:       "english woman keyword",
			transcript: "schemes for women in my village",
			expected:   models.CategoryWoman,
		},
		{
			name:       "devanagari woman keyword",
			transcript: "महिला योजना बताइए",
			expected:   models.CategoryWoman,
		},
		{
			name:       "uppercase input is lowered",
			transcript: "KISAN YOJANA",
			expected:   models.CategoryFarmer,
		},
		{
			name:       "keyword inside a longer word",
			transcript: "landholding support",
			expected:   models.CategoryFarmer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.transcript))
		})
	}
}

func TestClassify_DefaultCategory(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
	}{
		{name: "empty transcript", transcript: ""},
		{name: "whitespace only", transcript: "   "},
		{name: "no keyword at all", transcript: "namaste, aap kaise hain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, DefaultCategory, Classify(tt.transcript))
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// When several keyword sets match, the first declared category wins
	// regardless of position or match count.
	tests := []struct {
		name       string
		transcript string
		expected   models.Category
	}{
		{
			name:       "farmer beats student",
			transcript: "student schemes for a kisan family",
			expected:   models.CategoryFarmer,
		},
		{
			name:       "student beats woman",
			transcript: "महिला के लिए पढ़ाई की योजना",
			expected:   models.CategoryStudent,
		},
		{
			name:       "woman keywords repeated still lose to one student keyword",
			transcript: "woman woman woman scholarship",
			expected:   models.CategoryStudent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.transcript))
		})
	}
}
