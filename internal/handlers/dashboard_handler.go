package handlers

import (
	"vyapar/internal/middleware"
	"vyapar/internal/models"
	"vyapar/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler exposes the seller dashboard views.
type DashboardHandler struct {
	dashboardService *services.DashboardService
	companyService   *services.CompanyService
	authService      *services.AuthService
	log              *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService, companyService *services.CompanyService, authService *services.AuthService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		companyService:   companyService,
		authService:      authService,
		log:              log,
	}
}

// RegisterRoutes mounts the dashboard routes on the given router.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	dashboard := router.Group("/seller/dashboard",
		middleware.AuthRequired(h.authService),
		middleware.RequireRole(models.RoleSeller, models.RoleAdmin))
	dashboard.Get("/summary", h.Summary)
	dashboard.Get("/activity", h.Activity)
	dashboard.Get("/analytics", h.Analytics)
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	scope, err := h.companyService.Resolve(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	summary, err := h.dashboardService.Summary(scope)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, summary)
}

func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	scope, err := h.companyService.Resolve(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	activities, err := h.dashboardService.Activity(scope, c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, activities)
}

func (h *DashboardHandler) Analytics(c *fiber.Ctx) error {
	scope, err := h.companyService.Resolve(userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	analytics, err := h.dashboardService.Analytics(scope, c.Query("period", "30d"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c, analytics)
}
