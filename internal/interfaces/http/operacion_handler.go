package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/application/trade"
	"github.com/tu-usuario/agrocomercio-api/pkg/validate"
)

// OperacionHandler maneja las peticiones HTTP para Operacion, incluidos los
// documentos descargables (PDF y declaración XML).
type OperacionHandler struct {
	uc    *trade.OperacionUseCase
	docUC *trade.DocumentoUseCase
}

// NewOperacionHandler construye el handler.
func NewOperacionHandler(uc *trade.OperacionUseCase, docUC *trade.DocumentoUseCase) *OperacionHandler {
	return &OperacionHandler{uc: uc, docUC: docUC}
}

// Create godoc
// @Summary      Crear operación
// @Description  El costo total siempre arranca en 0; solo los detalles lo modifican.
// @Tags         operaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperacionRequest  true  "Datos de la operación"
// @Success      201   {object}  dto.OperacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /operaciones [post]
func (h *OperacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperacionRequest
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
// @Summary      Obtener operación por ID
// @Tags         operaciones
// @Produce      json
// @Param        id   path  int  true  "ID de la operación"
// @Success      200  {object}  dto.OperacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /operaciones/{id} [get]
func (h *OperacionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return notFound(c, "operación no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar operaciones
// @Tags         operaciones
// @Produce      json
// @Success      200  {array}  dto.OperacionResponse
// @Router       /operaciones [get]
func (h *OperacionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar operación
// @Description  El tipo es inmutable si la operación ya tiene detalles; el costo total no es editable.
// @Tags         operaciones
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la operación"
// @Param        body  body  dto.UpdateOperacionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OperacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /operaciones/{id} [put]
func (h *OperacionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var in dto.UpdateOperacionRequest
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
// @Summary      Eliminar operación
// @Description  Rechazada con 400 si la operación aún tiene detalles.
// @Tags         operaciones
// @Produce      json
// @Param        id   path  int  true  "ID de la operación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /operaciones/{id} [delete]
func (h *OperacionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "operación eliminada"})
}

// DownloadPDF godoc
// @Summary      Descargar resumen PDF de la operación
// @Tags         operaciones
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la operación"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /operaciones/{id}/pdf [get]
func (h *OperacionHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	pdfBytes, filename, err := h.docUC.DescargarOperacionPDF(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// DownloadDeclaracion godoc
// @Summary      Descargar declaración aduanera XML de la operación
// @Tags         operaciones
// @Produce      application/xml
// @Param        id   path  int  true  "ID de la operación"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /operaciones/{id}/declaracion [get]
func (h *OperacionHandler) DownloadDeclaracion(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	xmlBytes, filename, err := h.docUC.DescargarDeclaracionXML(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(xmlBytes)
}
