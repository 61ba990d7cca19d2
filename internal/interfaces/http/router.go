package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agrocomercio-api/internal/application/analytics"
	"github.com/tu-usuario/agrocomercio-api/internal/application/trade"
	"github.com/tu-usuario/agrocomercio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PaisUC            *usecase.PaisUseCase
	ClienteUC         *usecase.ClienteUseCase
	ProveedorUC       *usecase.ProveedorUseCase
	PuertoUC          *usecase.PuertoUseCase
	MedioTransporteUC *usecase.MedioTransporteUseCase
	CategoriaUC       *usecase.CategoriaUseCase
	ProductoUC        *usecase.ProductoUseCase
	InspeccionUC      *usecase.InspeccionUseCase
	OperacionUC       *trade.OperacionUseCase
	DetalleUC         *trade.DetalleUseCase
	DocumentoUC       *trade.DocumentoUseCase
	ReportUC          *analytics.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	paises := app.Group("/paises")
	paisHandler := NewPaisHandler(deps.PaisUC)
	paises.Post("/", paisHandler.Create)
	paises.Get("/", paisHandler.List)
	paises.Get("/:id", paisHandler.GetByID)
	paises.Put("/:id", paisHandler.Update)
	paises.Delete("/:id", paisHandler.Delete)

	clientes := app.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	proveedores := app.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	puertos := app.Group("/puertos")
	puertoHandler := NewPuertoHandler(deps.PuertoUC)
	puertos.Post("/", puertoHandler.Create)
	puertos.Get("/", puertoHandler.List)
	puertos.Get("/:id", puertoHandler.GetByID)
	puertos.Put("/:id", puertoHandler.Update)
	puertos.Delete("/:id", puertoHandler.Delete)

	medios := app.Group("/medios-transporte")
	medioHandler := NewMedioTransporteHandler(deps.MedioTransporteUC)
	medios.Post("/", medioHandler.Create)
	medios.Get("/", medioHandler.List)
	medios.Get("/:id", medioHandler.GetByID)
	medios.Put("/:id", medioHandler.Update)
	medios.Delete("/:id", medioHandler.Delete)

	categorias := app.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	productos := app.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	operaciones := app.Group("/operaciones")
	operacionHandler := NewOperacionHandler(deps.OperacionUC, deps.DocumentoUC)
	operaciones.Post("/", operacionHandler.Create)
	operaciones.Get("/", operacionHandler.List)
	operaciones.Get("/:id", operacionHandler.GetByID)
	operaciones.Put("/:id", operacionHandler.Update)
	operaciones.Delete("/:id", operacionHandler.Delete)
	operaciones.Get("/:id/pdf", operacionHandler.DownloadPDF)
	operaciones.Get("/:id/declaracion", operacionHandler.DownloadDeclaracion)

	detalles := app.Group("/detalles-operacion")
	detalleHandler := NewDetalleHandler(deps.DetalleUC)
	detalles.Post("/", detalleHandler.Create)
	detalles.Get("/", detalleHandler.List)
	detalles.Get("/:id", detalleHandler.GetByID)
	detalles.Put("/:id", detalleHandler.Update)
	detalles.Delete("/:id", detalleHandler.Delete)

	inspecciones := app.Group("/inspecciones")
	inspeccionHandler := NewInspeccionHandler(deps.InspeccionUC)
	inspecciones.Post("/", inspeccionHandler.Create)
	inspecciones.Get("/", inspeccionHandler.List)
	inspecciones.Get("/:id", inspeccionHandler.GetByID)
	inspecciones.Put("/:id", inspeccionHandler.Update)
	inspecciones.Delete("/:id", inspeccionHandler.Delete)

	reportes := app.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReportUC)
	reportes.Get("/operaciones-por-estado", reporteHandler.OperacionesPorEstado)
	reportes.Get("/top-productos-exportados", reporteHandler.TopProductosExportados)
	reportes.Get("/ingresos-por-mes", reporteHandler.IngresosPorMes)
}
