package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/application/usecase"
	"github.com/tu-usuario/agrocomercio-api/pkg/validate"
)

// InspeccionHandler maneja las peticiones HTTP para InspeccionCalidad.
type InspeccionHandler struct {
	uc *usecase.InspeccionUseCase
}

// NewInspeccionHandler construye el handler.
func NewInspeccionHandler(uc *usecase.InspeccionUseCase) *InspeccionHandler {
	return &InspeccionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear inspección de calidad
// @Tags         inspecciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInspeccionRequest  true  "Datos de la inspección"
// @Success      201   {object}  dto.InspeccionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /inspecciones [post]
func (h *InspeccionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInspeccionRequest
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

// GetByID obtiene una inspección por ID.
func (h *InspeccionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return notFound(c, "inspección no encontrada")
	}
	return c.JSON(out)
}

// List lista todas las inspecciones.
func (h *InspeccionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una inspección.
func (h *InspeccionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var in dto.UpdateInspeccionRequest
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
		return notFound(c, "inspección no encontrada")
	}
	return c.JSON(out)
}

// Delete elimina una inspección.
func (h *InspeccionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "inspección eliminada"})
}
