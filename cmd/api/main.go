package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/agrocomercio-api/internal/application/analytics"
	"github.com/tu-usuario/agrocomercio-api/internal/application/trade"
	"github.com/tu-usuario/agrocomercio-api/internal/application/usecase"
	"github.com/tu-usuario/agrocomercio-api/internal/infrastructure/customs"
	infrapdf "github.com/tu-usuario/agrocomercio-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/agrocomercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/agrocomercio-api/internal/interfaces/http"
	"github.com/tu-usuario/agrocomercio-api/pkg/config"
	"github.com/tu-usuario/agrocomercio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	paisRepo := postgres.NewPaisRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	puertoRepo := postgres.NewPuertoRepository(pool)
	medioRepo := postgres.NewMedioTransporteRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	operacionRepo := postgres.NewOperacionRepository(pool)
	detalleRepo := postgres.NewDetalleRepository(pool)
	inspeccionRepo := postgres.NewInspeccionRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	paisUC := usecase.NewPaisUseCase(paisRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo, paisRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo, paisRepo)
	puertoUC := usecase.NewPuertoUseCase(puertoRepo, paisRepo)
	medioUC := usecase.NewMedioTransporteUseCase(medioRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, categoriaRepo)
	inspeccionUC := usecase.NewInspeccionUseCase(inspeccionRepo, operacionRepo, productoRepo)

	validator := trade.NewOperacionValidator(clienteRepo, proveedorRepo, paisRepo, puertoRepo)
	operacionUC := trade.NewOperacionUseCase(operacionRepo, detalleRepo, validator)
	detalleUC := trade.NewDetalleUseCase(txRunner, detalleRepo, operacionRepo, productoRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	xmlBuilder := customs.NewDeclaracionBuilder()
	documentoUC := trade.NewDocumentoUseCase(
		operacionRepo, detalleRepo, productoRepo,
		clienteRepo, proveedorRepo, paisRepo, puertoRepo, medioRepo,
		pdfGenerator, xmlBuilder,
	)

	reportUC := analytics.NewReportUseCase(reporteRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AgroComercio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PaisUC:            paisUC,
		ClienteUC:         clienteUC,
		ProveedorUC:       proveedorUC,
		PuertoUC:          puertoUC,
		MedioTransporteUC: medioUC,
		CategoriaUC:       categoriaUC,
		ProductoUC:        productoUC,
		InspeccionUC:      inspeccionUC,
		OperacionUC:       operacionUC,
		DetalleUC:         detalleUC,
		DocumentoUC:       documentoUC,
		ReportUC:          reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
