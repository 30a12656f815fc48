package service

import (
	"context"

	"yojana-sahayak/internal/models"

	"go.uber.org/zap"
)

// Generator is the external text-generation service. Implemented by
// llm.OpenAIGenerator; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// ExplanationSource tags which path produced the explanation text.
type ExplanationSource string

const (
	SourceModel    ExplanationSource = "model"
	SourceTemplate ExplanationSource = "template"
)

// Explanation is the typed result of explanation generation. Both paths
// return the same informational content; Source records which one ran.
type Explanation struct {
	Text   string
	Source ExplanationSource
}

// ExplainService turns a resolved scheme plus the user's query into a
// natural-language explanation. A single generation attempt is made; any
// failure degrades to the deterministic template.
type ExplainService struct {
	generator Generator
	logger    *zap.Logger
}

// NewExplainService creates the service. A nil generator is allowed and
// means every explanation is template-rendered.
func NewExplainService(generator Generator, logger *zap.Logger) *ExplainService {
	return &ExplainService{
		generator: generator,
		logger:    logger,
	}
}

// Explain never returns an error for a well-formed scheme.
func (s *ExplainService) Explain(ctx context.Context, scheme *models.Scheme, userQuery, lang string) Explanation {
	if s.generator != nil {
		text, err := s.generator.Generate(ctx, SystemPrompt(lang), BuildPrompt(scheme, userQuery, lang))
		if err == nil && text != "" {
			return Explanation{Text: text, Source: SourceModel}
		}
		s.logger.Warn("Explanation generation failed, using template",
			zap.String("scheme_id", scheme.SchemeID),
			zap.Error(err),
		)
	}

	return Explanation{Text: FallbackExplanation(scheme, lang), Source: SourceTemplate}
}
