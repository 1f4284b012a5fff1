package handlers

import (
	"vyapar/internal/middleware"
	"vyapar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EnquiryHandler exposes buyer lead submission and the seller-side enquiry
// workflow.
type EnquiryHandler struct {
	enquiryService *services.EnquiryService
	companyService *services.CompanyService
	authService    *services.AuthService
	validate       *validator.Validate
	log            *zap.Logger
}

// NewEnquiryHandler creates a new EnquiryHandler.
func NewEnquiryHandler(enquiryService *services.EnquiryService, companyService *services.CompanyService, authService *services.AuthService, log *zap.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryService: enquiryService,
		companyService: companyService,
		authService:    authService,
		validate:       newValidator(),
		log:            log,
	}
}

// RegisterRoutes mounts the enquiry routes on the given router.
func (h *EnquiryHandler) RegisterRoutes(router fiber.Router) {
	inquiries := router.Group("/inquiries", middleware.AuthRequired(h.authService))
	inquiries.Post("/", h.Create)
	inquiries.Get("/seller", h.ListForSeller)
	inquiries.Put("/:id/status", h.UpdateStatus)
}

func (h *EnquiryHandler) Create(c *fiber.Ctx) error {
	var input services.CreateEnquiryInput
	if err := c.BodyParser(&input); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(input); err != nil {
		return respondValidation(c, err)
	}

	enquiry, err := h.enquiryService.Create(userID(c), input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondCreated(c, enquiry, "Enquiry submitted successfully")
}

func (h *EnquiryHandler) ListForSeller(c *fiber.Ctx) error {
	scope, err := h.companyService.Resolve(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	enquiries, err := h.enquiryService.ListForSeller(scope)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, enquiries)
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *EnquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	scope, err := h.companyService.Resolve(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	enquiry, err := h.enquiryService.UpdateStatus(scope, c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, enquiry)
}
