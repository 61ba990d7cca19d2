package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/agrocomercio-api/internal/application/analytics"
	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/application/usecase"
	httpRouter "github.com/tu-usuario/agrocomercio-api/internal/interfaces/http"
	"github.com/tu-usuario/agrocomercio-api/pkg/logger"
)

// buildTestApp app fiber con las rutas de países y reportes sobre fakes en
// memoria; el resto de las rutas no se ejercita aquí.
func buildTestApp(t *testing.T) (*fiber.App, *memReporteRepo) {
	t.Helper()

	reportes := &memReporteRepo{}
	app := fiber.New()
	app.Use(httpRouter.RequestLogger(logger.New(logger.Config{Env: "production", Level: "error"})))
	httpRouter.Router(app, httpRouter.RouterDeps{
		PaisUC:   usecase.NewPaisUseCase(newMemPaisRepo()),
		ReportUC: analytics.NewReportUseCase(reportes),
	})
	return app, reportes
}

// doJSON helper: arma y ejecuta una petición con cuerpo JSON.
func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody helper: decodifica el cuerpo de la respuesta en out.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────── CRUD de países ────────────────────────────

func TestPaisHandler_CrearYObtener(t *testing.T) {
	app, _ := buildTestApp(t)

	// Caso 1: crear devuelve 201 con el ID asignado
	resp := doJSON(t, app, http.MethodPost, "/paises", dto.CreatePaisRequest{
		Nombre:    "Ecuador",
		CodigoISO: "EC",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var creado dto.PaisResponse
	decodeBody(t, resp, &creado)
	assert.NotZero(t, creado.ID)
	assert.Equal(t, "Ecuador", creado.Nombre)

	// Caso 2: el país creado se puede recuperar por ID
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/paises/%d", creado.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var obtenido dto.PaisResponse
	decodeBody(t, resp, &obtenido)
	assert.Equal(t, creado, obtenido)
}

func TestPaisHandler_NoEncontrado(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/paises/999", nil)

	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestPaisHandler_CuerpoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	// sin codigo_iso el DTO no pasa la validación
	resp := doJSON(t, app, http.MethodPost, "/paises", map[string]string{
		"nombre": "Ecuador",
	})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "CodigoISO")
}

func TestPaisHandler_IDNoNumerico(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/paises/abc", nil)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "INVALID_ID", body.Code)
}

func TestPaisHandler_DeleteInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodDelete, "/paises/999", nil)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ─────────────────────────────────── reportes ───────────────────────────────

func TestReporteHandler_LimitePorDefecto(t *testing.T) {
	app, reportes := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/reportes/top-productos-exportados", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, analytics.DefaultTopLimit, reportes.limitRecibido)
}

func TestReporteHandler_LimiteExplicito(t *testing.T) {
	app, reportes := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/reportes/top-productos-exportados?limit=2", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, reportes.limitRecibido)

	var body []dto.TopProductoDTO
	decodeBody(t, resp, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "Plátano", body[0].Producto)
	assert.True(t, body[0].CantidadExportada.Equal(decimal.NewFromInt(500)))
}

func TestReporteHandler_AnioExplicito(t *testing.T) {
	app, reportes := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/reportes/ingresos-por-mes?anio=2025", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2025, reportes.anioRecibido)
}

func TestReporteHandler_AnioRequerido(t *testing.T) {
	app, _ := buildTestApp(t)

	// Caso 1: sin anio
	resp := doJSON(t, app, http.MethodGet, "/reportes/ingresos-por-mes", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)

	// Caso 2: anio no numérico
	resp = doJSON(t, app, http.MethodGet, "/reportes/ingresos-por-mes?anio=ayer", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────── request id ────────────────────────────────

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/paises", nil)
	req.Header.Set("X-Request-ID", "req-de-prueba-123")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-de-prueba-123", resp.Header.Get("X-Request-ID"),
		"un request id entrante debe conservarse en la respuesta")
}

func TestRequestLogger_GeneraRequestID(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/paises", nil)

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"),
		"sin request id entrante se genera uno nuevo")
}
