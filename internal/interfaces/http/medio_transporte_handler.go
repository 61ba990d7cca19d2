package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/application/usecase"
	"github.com/tu-usuario/agrocomercio-api/pkg/validate"
)

// MedioTransporteHandler maneja las peticiones HTTP para MedioTransporte.
type MedioTransporteHandler struct {
	uc *usecase.MedioTransporteUseCase
}

// NewMedioTransporteHandler construye el handler.
func NewMedioTransporteHandler(uc *usecase.MedioTransporteUseCase) *MedioTransporteHandler {
	return &MedioTransporteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear medio de transporte
// @Tags         medios-transporte
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedioTransporteRequest  true  "Datos del medio"
// @Success      201   {object}  dto.MedioTransporteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /medios-transporte [post]
func (h *MedioTransporteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedioTransporteRequest
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

// GetByID obtiene un medio de transporte por ID.
func (h *MedioTransporteHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return notFound(c, "medio de transporte no encontrado")
	}
	return c.JSON(out)
}

// List lista todos los medios de transporte.
func (h *MedioTransporteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un medio de transporte.
func (h *MedioTransporteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var in dto.UpdateMedioTransporteRequest
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
	if out == nil {
		return notFound(c, "medio de transporte no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina un medio de transporte.
func (h *MedioTransporteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "medio de transporte eliminado"})
}
