package service

import (
	"context"
	"errors"
	"testing"

	"yojana-sahayak/internal/catalog"
	"yojana-sahayak/internal/models"
	"yojana-sahayak/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	scheme *models.Scheme
	err    error
	calls  int
}

func (f *fakeStore) GetByCategory(ctx context.Context, category models.Category) (*models.Scheme, error) {
	f.calls++
	return f.scheme, f.err
}

func storedScheme() *models.Scheme {
	return &models.Scheme{
		SchemeID:    "PM_KISAN_V2",
		Category:    models.CategoryFarmer,
		Name:        models.LocalizedText{"en": "PM Kisan (store copy)"},
		Eligibility: models.LocalizedText{"en": "Farmers with land records."},
		Benefit:     models.LocalizedText{"en": "₹6,000 per year."},
		Documents:   []models.LocalizedText{{"en": "Aadhaar Card"}},
		Steps: []models.Step{
			{Description: models.LocalizedText{"en": "Register online"}, Action: models.ActionLink},
		},
	}
}

func TestResolve_StoreHit(t *testing.T) {
	store := &fakeStore{scheme: storedScheme()}
	resolver := NewResolverService(store, logger.NewTestLogger(t))

	res := resolver.Resolve(context.Background(), models.CategoryFarmer)

	assert.Equal(t, SourceStore, res.Source)
	assert.Equal(t, "PM_KISAN_V2", res.Scheme.SchemeID)
	assert.Equal(t, 1, store.calls, "exactly one store attempt, no retries")
}

func TestResolve_FallsBackToCatalog(t *testing.T) {
	incomplete := storedScheme()
	incomplete.Steps = nil

	tests := []struct {
		name  string
		store SchemeStore
	}{
		{name: "store error", store: &fakeStore{err: errors.New("connection timeout")}},
		{name: "store miss", store: &fakeStore{err: errors.New("scheme not found")}},
		{name: "incomplete record fails closed", store: &fakeStore{scheme: incomplete}},
		{name: "no store configured", store: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolverService(tt.store, logger.NewTestLogger(t))

			res := resolver.Resolve(context.Background(), models.CategoryWoman)

			require.NotNil(t, res.Scheme)
			assert.Equal(t, SourceFallback, res.Source)
			assert.Equal(t, catalog.ByCategory(models.CategoryWoman).SchemeID, res.Scheme.SchemeID)
			assert.NotEmpty(t, res.Scheme.Documents)
			assert.NotEmpty(t, res.Scheme.Steps)
		})
	}
}

func TestResolve_AlwaysCompleteForEveryCategory(t *testing.T) {
	resolver := NewResolverService(&fakeStore{err: errors.New("store down")}, logger.NewTestLogger(t))

	for _, category := range models.Categories() {
		res := resolver.Resolve(context.Background(), category)
		require.NotNil(t, res.Scheme, "category %s", category)
		assert.True(t, res.Scheme.IsComplete(), "category %s", category)
	}
}
