package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agrocomercio-api/internal/application/analytics"
)

// ReporteHandler maneja las peticiones HTTP de reportes agregados.
type ReporteHandler struct {
	uc *analytics.ReportUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *analytics.ReportUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// OperacionesPorEstado godoc
// @Summary      Operaciones agrupadas por estado
// @Tags         reportes
// @Produce      json
// @Success      200  {array}  dto.ResumenEstadoDTO
// @Router       /reportes/operaciones-por-estado [get]
func (h *ReporteHandler) OperacionesPorEstado(c *fiber.Ctx) error {
	out, err := h.uc.OperacionesPorEstado(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// TopProductosExportados godoc
// @Summary      Productos más exportados
// @Tags         reportes
// @Produce      json
// @Param        limit  query  int  false  "Tamaño del ranking"  default(5)
// @Success      200  {array}  dto.TopProductoDTO
// @Router       /reportes/top-productos-exportados [get]
func (h *ReporteHandler) TopProductosExportados(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", analytics.DefaultTopLimit)
	out, err := h.uc.TopProductosExportados(c.Context(), limit)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// IngresosPorMes godoc
// @Summary      Ingresos por mes de un año
// @Tags         reportes
// @Produce      json
// @Param        anio  query  int  true  "Año a consultar"
// @Success      200  {array}  dto.IngresoMensualDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /reportes/ingresos-por-mes [get]
func (h *ReporteHandler) IngresosPorMes(c *fiber.Ctx) error {
	anio, err := strconv.Atoi(c.Query("anio"))
	if err != nil {
		return badRequest(c, "VALIDATION", "anio es requerido y debe ser numérico")
	}
	out, err := h.uc.IngresosPorMes(c.Context(), anio)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
