package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/emergencias-api/internal/application/analytics"
)

// DashboardHandler expone el resumen agregado del tablero.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del tablero: KPIs, series por fecha y ranking
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        hospital  query  string  false  "solo admin"
// @Param        desde     query  string  false  "YYYY-MM-DD inclusivo"
// @Param        hasta     query  string  false  "YYYY-MM-DD inclusivo"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(GetActor(c), c.Query("hospital"), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
