package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/application/usecase"
)

// ReasonHandler maneja los motivos configurables (protegido).
type ReasonHandler struct {
	uc *usecase.ReasonUseCase
}

// NewReasonHandler construye el handler.
func NewReasonHandler(uc *usecase.ReasonUseCase) *ReasonHandler {
	return &ReasonHandler{uc: uc}
}

// Create godoc
// @Summary      Crear motivo
// @Tags         reasons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReasonRequest  true  "kind + label"
// @Success      201   {object}  entity.Reason
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reasons [post]
func (h *ReasonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReasonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return crudError(c, err, "motivo")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar motivos
// @Tags         reasons
// @Security     Bearer
// @Produce      json
// @Param        kind  query  string  false  "purchase | dispatch | scrap"
// @Success      200  {array}  entity.Reason
// @Router       /api/reasons [get]
func (h *ReasonHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("kind"))
	if err != nil {
		return crudError(c, err, "motivo")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar motivo
// @Tags         reasons
// @Security     Bearer
// @Param        id  path  string  true  "ID del motivo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reasons/{id} [delete]
func (h *ReasonHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return crudError(c, err, "motivo")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
