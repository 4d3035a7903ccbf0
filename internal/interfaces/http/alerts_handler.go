package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almakhzan/warehouse-api/internal/application/alerts"
	"github.com/almakhzan/warehouse-api/internal/application/dto"
)

// AlertsHandler expone las alertas de stock bajo y garantía por vencer.
type AlertsHandler struct {
	uc *alerts.UseCase
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(uc *alerts.UseCase) *AlertsHandler {
	return &AlertsHandler{uc: uc}
}

// LowStock godoc
// @Summary      Productos por debajo del umbral de stock
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockAlertDTO
// @Router       /api/alerts/low-stock [get]
func (h *AlertsHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// WarrantyExpiring godoc
// @Summary      Unidades con garantía por vencer
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarrantyAlertDTO
// @Router       /api/alerts/warranty [get]
func (h *AlertsHandler) WarrantyExpiring(c *fiber.Ctx) error {
	out, err := h.uc.WarrantyExpiring(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
