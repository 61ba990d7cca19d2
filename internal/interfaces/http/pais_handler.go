package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/application/usecase"
	"github.com/tu-usuario/agrocomercio-api/pkg/validate"
)

// PaisHandler maneja las peticiones HTTP para Pais.
type PaisHandler struct {
	uc *usecase.PaisUseCase
}

// NewPaisHandler construye el handler.
func NewPaisHandler(uc *usecase.PaisUseCase) *PaisHandler {
	return &PaisHandler{uc: uc}
}

// Create godoc
// @Summary      Crear país
// @Tags         paises
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaisRequest  true  "Datos del país"
// @Success      201   {object}  dto.PaisResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /paises [post]
func (h *PaisHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaisRequest
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
// @Summary      Obtener país por ID
// @Tags         paises
// @Produce      json
// @Param        id   path  int  true  "ID del país"
// @Success      200  {object}  dto.PaisResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /paises/{id} [get]
func (h *PaisHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return notFound(c, "país no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar países
// @Tags         paises
// @Produce      json
// @Success      200  {array}  dto.PaisResponse
// @Router       /paises [get]
func (h *PaisHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar país
// @Tags         paises
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del país"
// @Param        body  body  dto.UpdatePaisRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PaisResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /paises/{id} [put]
func (h *PaisHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var in dto.UpdatePaisRequest
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
		return notFound(c, "país no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar país
// @Tags         paises
// @Produce      json
// @Param        id   path  int  true  "ID del país"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /paises/{id} [delete]
func (h *PaisHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "país eliminado"})
}
