package handlers

import (
	"errors"
	"regexp"

	"vyapar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var indianMobile = regexp.MustCompile(`^[6-9]\d{9}$`)

// newValidator builds the request validator with the custom Indian mobile
// number rule used on enquiry payloads.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return indianMobile.MatchString(fl.Field().String())
	})
	return v
}

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondCreated(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// respondError maps a service error to its HTTP status. Unknown errors are
// logged in full and reported with a generic message so internal detail never
// reaches clients.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidStatus):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden), errors.Is(err, services.ErrCompanyNotFound):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrDuplicate):
		status = fiber.StatusConflict
	}

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		return respondMessage(c, status, svcErr.Error())
	}

	log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))
	return respondMessage(c, fiber.StatusInternalServerError, "Internal server error")
}

func respondValidation(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0]
		return respondMessage(c, fiber.StatusBadRequest, "Validation failed on field "+field.Field())
	}
	return respondMessage(c, fiber.StatusBadRequest, "Validation failed")
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
