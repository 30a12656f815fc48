package catalog

import (
	"testing"

	"yojana-sahayak/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByCategory_CoversEveryCategory(t *testing.T) {
	seen := map[string]bool{}
	for _, category := range models.Categories() {
		scheme := ByCategory(category)
		require.NotNil(t, scheme, "category %s has no built-in scheme", category)

		assert.Equal(t, category, scheme.Category)
		assert.True(t, scheme.IsComplete(), "built-in scheme %s must be complete", scheme.SchemeID)
		assert.NotEmpty(t, scheme.Documents)
		assert.NotEmpty(t, scheme.Steps)
		assert.False(t, seen[scheme.SchemeID], "duplicate scheme id %s", scheme.SchemeID)
		seen[scheme.SchemeID] = true
	}
}

func TestByCategory_KnownSchemes(t *testing.T) {
	tests := []struct {
		category models.Category
		schemeID string
	}{
		{models.CategoryFarmer, "PM_KISAN"},
		{models.CategoryStudent, "PM_VIDYALAKSHMI"},
		{models.CategoryWoman, "PM_UJJWALA"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.schemeID, ByCategory(tt.category).SchemeID)
		})
	}
}

func TestByCategory_BilingualText(t *testing.T) {
	for _, scheme := range All() {
		for _, field := range []models.LocalizedText{scheme.Name, scheme.Eligibility, scheme.Benefit} {
			assert.NotEmpty(t, field["hi"], "scheme %s missing hindi text", scheme.SchemeID)
			assert.NotEmpty(t, field["en"], "scheme %s missing english text", scheme.SchemeID)
		}
		for i, step := range scheme.Steps {
			assert.NotEmpty(t, step.Description.In("hi"), "scheme %s step %d missing hindi", scheme.SchemeID, i)
			assert.NotEmpty(t, step.Description.In("en"), "scheme %s step %d missing english", scheme.SchemeID, i)
			assert.NotEmpty(t, step.Action, "scheme %s step %d missing action", scheme.SchemeID, i)
		}
	}
}

func TestByID(t *testing.T) {
	scheme := ByID("PM_KISAN")
	require.NotNil(t, scheme)
	assert.Equal(t, models.CategoryFarmer, scheme.Category)

	assert.Nil(t, ByID("NO_SUCH_SCHEME"))
	assert.Nil(t, ByID(""))
}

func TestByCategory_UnknownCategoryStillResolves(t *testing.T) {
	scheme := ByCategory(models.Category("pensioner"))
	require.NotNil(t, scheme)
	assert.True(t, scheme.IsComplete())
}
