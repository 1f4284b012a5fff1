package handlers

import (
	"vyapar/internal/middleware"
	"vyapar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CompanyHandler exposes seller company onboarding and profile routes.
type CompanyHandler struct {
	companyService *services.CompanyService
	authService    *services.AuthService
	validate       *validator.Validate
	log            *zap.Logger
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService *services.CompanyService, authService *services.AuthService, log *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		authService:    authService,
		validate:       newValidator(),
		log:            log,
	}
}

// RegisterRoutes mounts the company routes on the given router.
func (h *CompanyHandler) RegisterRoutes(router fiber.Router) {
	company := router.Group("/company", middleware.AuthRequired(h.authService))
	company.Post("/", h.Upsert)
	company.Get("/me", h.GetMine)
	company.Put("/me", h.UpdateMine)
}

// Upsert creates or replaces the acting user's company and promotes the
// user to seller.
func (h *CompanyHandler) Upsert(c *fiber.Ctx) error {
	var input services.CompanyInput
	if err := c.BodyParser(&input); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(input); err != nil {
		return respondValidation(c, err)
	}

	company, err := h.companyService.Upsert(userID(c), input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondCreated(c, company, "Company saved successfully")
}

func (h *CompanyHandler) GetMine(c *fiber.Ctx) error {
	company, err := h.companyService.GetMine(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, company)
}

func (h *CompanyHandler) UpdateMine(c *fiber.Ctx) error {
	var input services.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}

	company, err := h.companyService.UpdateMine(userID(c), input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, company)
}
