package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agisales/proposals-api/internal/application/analytics"
	"github.com/agisales/proposals-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *analytics.MetricsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.MetricsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetMetrics devuelve las métricas derivadas de la colección de propuestas.
// GET /api/dashboard/metrics
//
// Respuesta: DashboardMetricsDTO (contadores por status, approvalRate,
// totalValue, proposalsByMonth[≤6], topProducts[≤5]). Sin parámetros; el
// snapshot se toma en el servidor.
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.uc.GetMetrics(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(metrics)
}
