package handlers

import (
	"strconv"

	"yojana-sahayak/internal/catalog"
	"yojana-sahayak/internal/classifier"
	"yojana-sahayak/internal/dto"
	"yojana-sahayak/internal/models"
	"yojana-sahayak/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SchemeHandler serves direct scheme lookups and catalog search.
type SchemeHandler struct {
	resolver *service.ResolverService
	logger   *zap.Logger
}

func NewSchemeHandler(resolver *service.ResolverService, logger *zap.Logger) *SchemeHandler {
	return &SchemeHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// GetByCategory resolves one scheme for a category. Store outages
// degrade to the built-in catalog, so a valid category always gets 200.
func (h *SchemeHandler) GetByCategory(c *fiber.Ctx) error {
	category, ok := models.ParseCategory(c.Params("category"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown category",
		})
	}

	lang := classifier.NormalizeLang(c.Query("lang"))
	if lang == "" {
		lang = classifier.LangHindi
	}

	resolution := h.resolver.Resolve(c.Context(), category)
	return c.JSON(dto.NewSchemeView(resolution.Scheme, lang))
}

// Search runs keyword search over the built-in catalog.
func (h *SchemeHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query is required",
		})
	}

	k, err := strconv.Atoi(c.Query("k", "3"))
	if err != nil {
		k = 3
	}

	lang := classifier.NormalizeLang(c.Query("lang"))
	if lang == "" {
		lang = classifier.LangHindi
	}

	schemes := catalog.Search(query, k)
	results := make([]dto.SchemeView, 0, len(schemes))
	for i := range schemes {
		results = append(results, dto.NewSchemeView(&schemes[i], lang))
	}

	return c.JSON(dto.SearchResponse{
		Query:   query,
		Results: results,
	})
}
