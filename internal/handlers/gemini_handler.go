package handlers

import (
	"vyapar/internal/middleware"
	"vyapar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GeminiHandler exposes the AI product enrichment route.
type GeminiHandler struct {
	aiService   *services.AIService
	authService *services.AuthService
	validate    *validator.Validate
	log         *zap.Logger
}

// NewGeminiHandler creates a new GeminiHandler.
func NewGeminiHandler(aiService *services.AIService, authService *services.AuthService, log *zap.Logger) *GeminiHandler {
	return &GeminiHandler{
		aiService:   aiService,
		authService: authService,
		validate:    newValidator(),
		log:         log,
	}
}

// RegisterRoutes mounts the gemini routes on the given router.
func (h *GeminiHandler) RegisterRoutes(router fiber.Router) {
	gemini := router.Group("/gemini", middleware.AuthRequired(h.authService))
	gemini.Post("/product-details", h.ProductDetails)
}

type productDetailsRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// ProductDetails serves the enrichment content, reporting whether it came
// from the cache or was generated on this request.
func (h *GeminiHandler) ProductDetails(c *fiber.Ctx) error {
	var req productDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	enrichment, err := h.aiService.GetProductDetails(req.ProductID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"source":  enrichment.Source,
		"data": fiber.Map{
			"highlights":      enrichment.Highlights,
			"specifications":  enrichment.Specifications,
			"longDescription": enrichment.LongDescription,
		},
	})
}
