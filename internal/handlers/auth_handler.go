package handlers

import (
	"vyapar/internal/middleware"
	"vyapar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login and profile routes.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
	log         *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    newValidator(),
		log:         log,
	}
}

// RegisterRoutes mounts the user routes on the given router.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Post("/register", h.Register)
	users.Post("/login", h.Login)
	users.Get("/me", middleware.AuthRequired(h.authService), h.Me)
	users.Post("/me/onboarding/complete", middleware.AuthRequired(h.authService), h.CompleteOnboarding)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(input); err != nil {
		return respondValidation(c, err)
	}

	user, token, err := h.authService.Register(input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondCreated(c, fiber.Map{
		"user":  user,
		"token": token,
	}, "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.GetProfile(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, user)
}

func (h *AuthHandler) CompleteOnboarding(c *fiber.Ctx) error {
	user, err := h.authService.CompleteOnboarding(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, user)
}
