package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/application/usecase"
	"github.com/tu-usuario/agrocomercio-api/pkg/validate"
)

// PuertoHandler maneja las peticiones HTTP para Puerto.
type PuertoHandler struct {
	uc *usecase.PuertoUseCase
}

// NewPuertoHandler construye el handler.
func NewPuertoHandler(uc *usecase.PuertoUseCase) *PuertoHandler {
	return &PuertoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear puerto
// @Tags         puertos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePuertoRequest  true  "Datos del puerto"
// @Success      201   {object}  dto.PuertoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /puertos [post]
func (h *PuertoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePuertoRequest
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

// GetByID obtiene un puerto por ID.
func (h *PuertoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return notFound(c, "puerto no encontrado")
	}
	return c.JSON(out)
}

// List lista todos los puertos.
func (h *PuertoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un puerto.
func (h *PuertoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var in dto.UpdatePuertoRequest
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
		return notFound(c, "puerto no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina un puerto.
func (h *PuertoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "puerto eliminado"})
}
