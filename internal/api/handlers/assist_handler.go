package handlers

import (
	"context"
	"time"

	"yojana-sahayak/internal/catalog"
	"yojana-sahayak/internal/classifier"
	"yojana-sahayak/internal/dto"
	"yojana-sahayak/internal/models"
	"yojana-sahayak/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ServiceName    = "yojana-sahayak"
	ServiceVersion = "1.0.0"
)

// QueryLogStore persists interaction logs. A nil store disables logging.
type QueryLogStore interface {
	Insert(ctx context.Context, entry *models.QueryLog) error
}

// AssistHandler serves the voice-assistant pipeline endpoints.
type AssistHandler struct {
	resolver  *service.ResolverService
	explainer *service.ExplainService
	speech    *service.SpeechService
	queryLogs QueryLogStore
	logger    *zap.Logger
}

func NewAssistHandler(
	resolver *service.ResolverService,
	explainer *service.ExplainService,
	speech *service.SpeechService,
	queryLogs QueryLogStore,
	logger *zap.Logger,
) *AssistHandler {
	return &AssistHandler{
		resolver:  resolver,
		explainer: explainer,
		speech:    speech,
		queryLogs: queryLogs,
		logger:    logger,
	}
}

// Health reports service liveness.
func (h *AssistHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
		Version: ServiceVersion,
	})
}

// Query runs the full pipeline: classify -> resolve -> explain ->
// synthesize. Every stage degrades rather than errors, so a valid
// request always gets a scheme explanation back.
func (h *AssistHandler) Query(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Transcript == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Transcript is required",
		})
	}

	lang := classifier.NormalizeLang(req.Lang)
	if lang == "" {
		lang = classifier.DetectLanguage(req.Transcript)
	}

	category := classifier.Classify(req.Transcript)
	resolution := h.resolver.Resolve(c.Context(), category)
	explanation := h.explainer.Explain(c.Context(), resolution.Scheme, req.Transcript, lang)

	var audioURL *string
	if url, ok := h.speech.Synthesize(c.Context(), explanation.Text, resolution.Scheme.SchemeID); ok {
		audioURL = &url
	}

	h.logQuery(c.Context(), &req, lang, category, resolution.Scheme.SchemeID, explanation.Source)

	scheme := dto.NewSchemeView(resolution.Scheme, lang)
	scheme.Explanation = explanation.Text
	scheme.ExplanationSource = string(explanation.Source)

	return c.JSON(dto.QueryResponse{
		Transcript: req.Transcript,
		Lang:       lang,
		Category:   string(category),
		Scheme:     scheme,
		AudioURL:   audioURL,
	})
}

// Transcribe is a stub: speech-to-text runs in an external collaborator,
// so this endpoint only returns a placeholder transcript the client can
// replace with its own recognizer output.
func (h *AssistHandler) Transcribe(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Audio payload is required",
		})
	}

	lang := classifier.NormalizeLang(c.Query("lang"))
	transcript := "Tell me about farmer schemes"
	if lang == classifier.LangHindi {
		transcript = "किसानों के लिए कोई योजना बताइए"
	}

	return c.JSON(dto.TranscribeResponse{
		Transcript: transcript,
		Confidence: 0,
	})
}

// Audio synthesizes a fresh template explanation for a scheme id and
// returns a signed URL, or 404 when the scheme is unknown or no
// server-side audio could be produced.
func (h *AssistHandler) Audio(c *fiber.Ctx) error {
	schemeID := c.Params("schemeId")
	scheme := catalog.ByID(schemeID)
	if scheme == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	}

	lang := classifier.NormalizeLang(c.Query("lang"))
	if lang == "" {
		lang = classifier.LangHindi
	}

	text := service.FallbackExplanation(scheme, lang)
	url, ok := h.speech.Synthesize(c.Context(), text, scheme.SchemeID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Audio unavailable",
		})
	}

	return c.JSON(dto.AudioResponse{AudioURL: url})
}

func (h *AssistHandler) logQuery(
	ctx context.Context,
	req *dto.QueryRequest,
	lang string,
	category models.Category,
	schemeID string,
	source service.ExplanationSource,
) {
	if h.queryLogs == nil {
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()[:12]
	}

	entry := &models.QueryLog{
		ID:             uuid.New(),
		SessionID:      sessionID,
		Lang:           lang,
		Transcript:     req.Transcript,
		Category:       category,
		SchemeID:       schemeID,
		ResponseSource: string(source),
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.queryLogs.Insert(ctx, entry); err != nil {
		h.logger.Warn("Query log insert failed", zap.Error(err))
	}
}
