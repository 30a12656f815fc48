package service

import (
	"context"

	"yojana-sahayak/internal/catalog"
	"yojana-sahayak/internal/models"

	"go.uber.org/zap"
)

// SchemeStore is the external lookup-by-category scheme source.
// Implemented by repository.SchemeRepository; tests substitute fakes.
type SchemeStore interface {
	GetByCategory(ctx context.Context, category models.Category) (*models.Scheme, error)
}

// ResolutionSource tags which path produced a scheme.
type ResolutionSource string

const (
	SourceStore    ResolutionSource = "store"
	SourceFallback ResolutionSource = "fallback"
)

// Resolution is the typed result of a scheme lookup. The scheme is
// always populated; Source records whether the store or the built-in
// catalog served it.
type Resolution struct {
	Scheme *models.Scheme
	Source ResolutionSource
}

// ResolverService returns a scheme for a category. It never fails: any
// store miss, error or incomplete record degrades to the built-in
// catalog, which holds exactly one entry per category.
type ResolverService struct {
	store  SchemeStore
	logger *zap.Logger
}

// NewResolverService creates a resolver. A nil store is allowed and
// means every resolution comes from the catalog.
func NewResolverService(store SchemeStore, logger *zap.Logger) *ResolverService {
	return &ResolverService{
		store:  store,
		logger: logger,
	}
}

// Resolve performs a single store attempt, no retries, then falls back.
func (s *ResolverService) Resolve(ctx context.Context, category models.Category) Resolution {
	if s.store != nil {
		scheme, err := s.store.GetByCategory(ctx, category)
		switch {
		case err != nil:
			s.logger.Warn("Scheme store lookup failed, using built-in catalog",
				zap.String("category", string(category)),
				zap.Error(err),
			)
		case !scheme.IsComplete():
			// Generation must never run on partial data.
			s.logger.Warn("Scheme store returned incomplete record, using built-in catalog",
				zap.String("category", string(category)),
				zap.String("scheme_id", scheme.SchemeID),
			)
		default:
			return Resolution{Scheme: scheme, Source: SourceStore}
		}
	}

	return Resolution{Scheme: catalog.ByCategory(category), Source: SourceFallback}
}
