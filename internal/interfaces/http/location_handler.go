package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/application/usecase"
	"github.com/almakhzan/warehouse-api/internal/domain"
)

// LocationHandler maneja la jerarquía provincia → área → cliente (protegido).
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// CreateProvince godoc
// @Summary      Crear provincia
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProvinceRequest  true  "Nombre"
// @Success      201   {object}  entity.Province
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/provinces [post]
func (h *LocationHandler) CreateProvince(c *fiber.Ctx) error {
	var in dto.CreateProvinceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateProvince(in)
	if err != nil {
		return locationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProvinces godoc
// @Summary      Listar provincias
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Province
// @Router       /api/provinces [get]
func (h *LocationHandler) ListProvinces(c *fiber.Ctx) error {
	out, err := h.uc.ListProvinces()
	if err != nil {
		return locationError(c, err)
	}
	return c.JSON(out)
}

// DeleteProvince godoc
// @Summary      Eliminar provincia sin áreas
// @Tags         locations
// @Security     Bearer
// @Param        id  path  string  true  "ID de la provincia"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/provinces/{id} [delete]
func (h *LocationHandler) DeleteProvince(c *fiber.Ctx) error {
	if err := h.uc.DeleteProvince(c.Params("id")); err != nil {
		return locationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateArea godoc
// @Summary      Crear área dentro de una provincia
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAreaRequest  true  "Provincia + nombre"
// @Success      201   {object}  entity.Area
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/areas [post]
func (h *LocationHandler) CreateArea(c *fiber.Ctx) error {
	var in dto.CreateAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateArea(in)
	if err != nil {
		return locationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAreas godoc
// @Summary      Listar áreas
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        province_id  query  string  false  "Filtrar por provincia"
// @Success      200  {array}  entity.Area
// @Router       /api/areas [get]
func (h *LocationHandler) ListAreas(c *fiber.Ctx) error {
	out, err := h.uc.ListAreas(c.Query("province_id"))
	if err != nil {
		return locationError(c, err)
	}
	return c.JSON(out)
}

// DeleteArea godoc
// @Summary      Eliminar área sin clientes
// @Tags         locations
// @Security     Bearer
// @Param        id  path  string  true  "ID del área"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [delete]
func (h *LocationHandler) DeleteArea(c *fiber.Ctx) error {
	if err := h.uc.DeleteArea(c.Params("id")); err != nil {
		return locationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateClient godoc
// @Summary      Crear cliente dentro de un área
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Área + datos del cliente"
// @Success      201   {object}  entity.Client
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *LocationHandler) CreateClient(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateClient(in)
	if err != nil {
		return locationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListClients godoc
// @Summary      Listar clientes
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        area_id  query  string  false  "Filtrar por área"
// @Success      200  {array}  entity.Client
// @Router       /api/clients [get]
func (h *LocationHandler) ListClients(c *fiber.Ctx) error {
	out, err := h.uc.ListClients(c.Query("area_id"))
	if err != nil {
		return locationError(c, err)
	}
	return c.JSON(out)
}

// UpdateClient godoc
// @Summary      Actualizar cliente
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.CreateClientRequest  true  "Datos a actualizar"
// @Success      200   {object}  entity.Client
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *LocationHandler) UpdateClient(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateClient(c.Params("id"), in)
	if err != nil {
		return locationError(c, err)
	}
	return c.JSON(out)
}

// DeleteClient godoc
// @Summary      Eliminar cliente
// @Tags         locations
// @Security     Bearer
// @Param        id  path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *LocationHandler) DeleteClient(c *fiber.Ctx) error {
	if err := h.uc.DeleteClient(c.Params("id")); err != nil {
		return locationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// locationError mapea los sentinelas de la jerarquía a respuestas HTTP.
func locationError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrAreaNotInProvince:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PROVINCE_NOT_FOUND", Message: "la provincia referenciada no existe"})
	case domain.ErrClientNotInArea:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "AREA_NOT_FOUND", Message: "el área referenciada no existe"})
	}
	return crudError(c, err, "ubicación")
}
