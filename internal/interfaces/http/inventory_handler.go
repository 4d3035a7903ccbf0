package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/application/inventory"
	"github.com/almakhzan/warehouse-api/internal/domain"
)

// InventoryHandler maneja recepciones, despachos, bajas y consultas de unidades.
type InventoryHandler struct {
	receiving   *inventory.ReceivingUseCase
	dispatching *inventory.DispatchingUseCase
	query       *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	receiving *inventory.ReceivingUseCase,
	dispatching *inventory.DispatchingUseCase,
	query *inventory.QueryUseCase,
) *InventoryHandler {
	return &InventoryHandler{receiving: receiving, dispatching: dispatching, query: query}
}

// ReceiveBatch godoc
// @Summary      Recibir un lote de unidades sueltas
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveBatchRequest  true  "Líneas + datos de compra"
// @Success      201   {array}  string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/receive [post]
func (h *InventoryHandler) ReceiveBatch(c *fiber.Ctx) error {
	var in dto.ReceiveBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ids, err := h.receiving.ReceiveBatch(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ids)
}

// ReceiveBundle godoc
// @Summary      Recibir instancias de un paquete
// @Description  Expande la lista de materiales del paquete y crea una unidad
// @Description  por componente; serials debe venir en el orden de expansión.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveBundleRequest  true  "Paquete + seriales"
// @Success      201   {array}  string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/receive-bundle [post]
func (h *InventoryHandler) ReceiveBundle(c *fiber.Ctx) error {
	var in dto.ReceiveBundleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ids, err := h.receiving.ReceiveBundle(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ids)
}

// Dispatch godoc
// @Summary      Despachar unidades hacia un cliente
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.DispatchRequest  true  "Unidades + destino"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/dispatch [post]
func (h *InventoryHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.DispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.dispatching.Dispatch(c.UserContext(), in); err != nil {
		return inventoryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UndoDispatch godoc
// @Summary      Deshacer el despacho de una unidad
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID de la unidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/undo-dispatch [post]
func (h *InventoryHandler) UndoDispatch(c *fiber.Ctx) error {
	if err := h.dispatching.UndoDispatch(c.UserContext(), c.Params("id")); err != nil {
		return inventoryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Scrap godoc
// @Summary      Dar de baja unidades
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ScrapRequest  true  "Unidades a dar de baja"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/scrap [post]
func (h *InventoryHandler) Scrap(c *fiber.Ctx) error {
	var in dto.ScrapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.dispatching.Scrap(c.UserContext(), in); err != nil {
		return inventoryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListItems godoc
// @Summary      Listar unidades físicas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        status           query  string  false  "in_stock | dispatched | scrapped | damaged_on_arrival"
// @Param        product_id       query  string  false  "Filtrar por producto"
// @Param        category         query  string  false  "Filtrar por categoría"
// @Param        supplier_id      query  string  false  "Filtrar por proveedor"
// @Param        client_id        query  string  false  "Filtrar por cliente (destino o despacho)"
// @Param        bundle_group_id  query  string  false  "Filtrar por instancia de paquete"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	var in dto.ItemListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.query.List(c.UserContext(), in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(out)
}

// GetItem godoc
// @Summary      Obtener una unidad por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	out, err := h.query.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(out)
}

// inventoryError mapea los sentinelas del dominio a respuestas HTTP.
func inventoryError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrDuplicateSerial:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SERIAL", Message: "número de serie ya registrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la operación inválidos"})
	case domain.ErrNotABundle:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_A_BUNDLE", Message: "el producto no es un paquete"})
	case domain.ErrInvalidTransition:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "la unidad no admite esa transición de estado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
