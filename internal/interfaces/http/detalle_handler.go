package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/application/trade"
	"github.com/tu-usuario/agrocomercio-api/pkg/validate"
)

// DetalleHandler maneja las peticiones HTTP para DetalleOperacion. Todos los
// efectos de stock y costo total pasan por aquí.
type DetalleHandler struct {
	uc *trade.DetalleUseCase
}

// NewDetalleHandler construye el handler.
func NewDetalleHandler(uc *trade.DetalleUseCase) *DetalleHandler {
	return &DetalleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear detalle de operación
// @Description  Ajusta el stock del producto según el tipo de operación y recalcula el costo total.
// @Tags         detalles-operacion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDetalleRequest  true  "Datos del detalle"
// @Success      201   {object}  dto.DetalleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /detalles-operacion [post]
func (h *DetalleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDetalleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if msg := validate.Struct(in); msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener detalle por ID
// @Tags         detalles-operacion
// @Produce      json
// @Param        id   path  int  true  "ID del detalle"
// @Success      200  {object}  dto.DetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /detalles-operacion/{id} [get]
func (h *DetalleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return notFound(c, "detalle no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar detalles de operación
// @Tags         detalles-operacion
// @Produce      json
// @Success      200  {array}  dto.DetalleResponse
// @Router       /detalles-operacion [get]
func (h *DetalleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar detalle de operación
// @Description  Solo cantidad y precio unitario; el stock se ajusta por la diferencia de cantidades.
// @Tags         detalles-operacion
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del detalle"
// @Param        body  body  dto.UpdateDetalleRequest  true  "Cantidad y precio nuevos"
// @Success      200   {object}  dto.DetalleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /detalles-operacion/{id} [put]
func (h *DetalleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var in dto.UpdateDetalleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if msg := validate.Struct(in); msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar detalle de operación
// @Description  Revierte el efecto del detalle sobre el stock y recalcula el costo total.
// @Tags         detalles-operacion
// @Produce      json
// @Param        id   path  int  true  "ID del detalle"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /detalles-operacion/{id} [delete]
func (h *DetalleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "detalle eliminado"})
}
