package handlers

import (
	"github.com/gofiber/fiber/v2"

	"loandesk/internal/core/services"
	"loandesk/internal/pkg/response"
)

// MetricsHandler handles admin metrics endpoints
type MetricsHandler struct {
	metricsService *services.MetricsService
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(metricsService *services.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

// Metrics handles the aggregated counts endpoint
// @Summary Admin metrics
// @Description Returns user counts by role and loan totals
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /admin/metrics [get]
func (h *MetricsHandler) Metrics(c *fiber.Ctx) error {
	metrics, err := h.metricsService.GetAdminMetrics(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load metrics")
	}

	return response.Success(c, "", metrics)
}
