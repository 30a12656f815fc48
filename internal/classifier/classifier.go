// Package classifier maps a spoken-query transcript to a scheme category.
package classifier

import (
	"strings"

	"yojana-sahayak/internal/models"
)

// DefaultCategory is returned when no keyword set matches.
const DefaultCategory = models.CategoryFarmer

type keywordSet struct {
	category models.Category
	keywords []string
}

// Keyword sets cover both Devanagari and Latin-transliterated terms.
// Order is the tie-break: when several sets match, the first declared
// category wins regardless of match position or count.
var keywordSets = []keywordSet{
	{
		category: models.CategoryFarmer,
		keywords: []string{"किसान", "खेती", "कृषि", "farmer", "kisan", "crop", "land"},
	},
	{
		category: models.CategoryStudent,
		keywords: []string{"विद्यार्थी", "छात्र", "पढ़ाई", "student", "scholarship", "education"},
	},
	{
		category: models.CategoryWoman,
		keywords: []string{"महिला", "स्त्री", "बेटी", "woman", "women", "girl"},
	},
}

// Classify returns the category whose keyword set first matches the
// transcript as a substring. Empty or unmatched input yields
// DefaultCategory; Classify never fails.
func Classify(transcript string) models.Category {
	t := strings.ToLower(transcript)
	for _, ks := range keywordSets {
		for _, kw := range ks.keywords {
			if strings.Contains(t, kw) {
				return ks.category
			}
		}
	}
	return DefaultCategory
}
