package trade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/agrocomercio-api/internal/application/trade"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// Fixture relacional: dos países, un cliente alemán, un proveedor ecuatoriano
// y un puerto en cada país.
const (
	paisEcuadorID  int64 = 1
	paisAlemaniaID int64 = 2

	clienteAlemanID     int64 = 1
	proveedorEcuadorID  int64 = 1
	proveedorAlemanID   int64 = 2
	proveedorApatridaID int64 = 3
	clienteApatridaID   int64 = 2
	puertoGuayaquilID   int64 = 1
	puertoHamburgoID    int64 = 2
	idInexistente       int64 = 999
)

func buildValidator() *trade.OperacionValidator {
	paises := newFakePaisRepo(
		entity.Pais{ID: paisEcuadorID, Nombre: "Ecuador", CodigoISO: "EC"},
		entity.Pais{ID: paisAlemaniaID, Nombre: "Alemania", CodigoISO: "DE"},
	)
	clientes := newFakeClienteRepo(
		entity.Cliente{ID: clienteAlemanID, Nombre: "Frucht Import GmbH", PaisID: ptr(paisAlemaniaID)},
		entity.Cliente{ID: clienteApatridaID, Nombre: "Cliente Sin País"},
	)
	proveedores := newFakeProveedorRepo(
		entity.Proveedor{ID: proveedorEcuadorID, Nombre: "AgroAndes S.A.", PaisID: ptr(paisEcuadorID)},
		entity.Proveedor{ID: proveedorAlemanID, Nombre: "Gemüse Export GmbH", PaisID: ptr(paisAlemaniaID)},
		entity.Proveedor{ID: proveedorApatridaID, Nombre: "Proveedor Sin País"},
	)
	puertos := newFakePuertoRepo(
		entity.Puerto{ID: puertoGuayaquilID, Nombre: "Puerto de Guayaquil", PaisID: paisEcuadorID},
		entity.Puerto{ID: puertoHamburgoID, Nombre: "Hamburger Hafen", PaisID: paisAlemaniaID},
	)
	return trade.NewOperacionValidator(clientes, proveedores, paises, puertos)
}

// ─────────────────────────── contraparte requerida ──────────────────────────

func TestValidator_ExportacionSinClienteRechazada(t *testing.T) {
	v := buildValidator()

	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo: entity.OperacionTipoExportacion,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContraparteRequerida, "exportación sin cliente debe rechazarse")
}

func TestValidator_ImportacionSinProveedorRechazada(t *testing.T) {
	v := buildValidator()

	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo: entity.OperacionTipoImportacion,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContraparteRequerida, "importación sin proveedor debe rechazarse")
}

// ──────────────────────── existencia de las referencias ─────────────────────

func TestValidator_ClienteInexistente(t *testing.T) {
	v := buildValidator()

	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:      entity.OperacionTipoExportacion,
		ClienteID: ptr(idInexistente),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidator_ProveedorInexistente(t *testing.T) {
	v := buildValidator()

	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:        entity.OperacionTipoImportacion,
		ProveedorID: ptr(idInexistente),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidator_PaisOrigenInexistente(t *testing.T) {
	v := buildValidator()

	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:         entity.OperacionTipoExportacion,
		ClienteID:    ptr(clienteAlemanID),
		PaisOrigenID: ptr(idInexistente),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────── cliente vs proveedor ──────────────────────────

func TestValidator_ClienteYProveedorDelMismoPais(t *testing.T) {
	v := buildValidator()

	// cliente alemán + proveedor alemán: no hay comercio internacional
	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:        entity.OperacionTipoExportacion,
		ClienteID:   ptr(clienteAlemanID),
		ProveedorID: ptr(proveedorAlemanID),
	})

	assert.ErrorIs(t, err, domain.ErrMismoPais)
}

func TestValidator_ClienteYProveedorAmbosSinPais(t *testing.T) {
	v := buildValidator()

	// dos referencias nulas cuentan como el mismo país
	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:        entity.OperacionTipoExportacion,
		ClienteID:   ptr(clienteApatridaID),
		ProveedorID: ptr(proveedorApatridaID),
	})

	assert.ErrorIs(t, err, domain.ErrMismoPais)
}

func TestValidator_ClienteConPaisYProveedorSinPais(t *testing.T) {
	v := buildValidator()

	// solo una referencia nula: países distintos, se acepta
	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:        entity.OperacionTipoExportacion,
		ClienteID:   ptr(clienteAlemanID),
		ProveedorID: ptr(proveedorApatridaID),
	})

	assert.NoError(t, err)
}

// ─────────────────────────────── puertos y países ───────────────────────────

func TestValidator_PuertoSinPaisRechazado(t *testing.T) {
	v := buildValidator()

	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:           entity.OperacionTipoExportacion,
		ClienteID:      ptr(clienteAlemanID),
		PuertoOrigenID: ptr(puertoGuayaquilID), // sin pais_origen_id
	})

	assert.ErrorIs(t, err, domain.ErrPuertoSinPais)
}

func TestValidator_PaisInexistenteAntesQuePuertoSinPais(t *testing.T) {
	v := buildValidator()

	// la existencia de ambos países se verifica antes que cualquier regla de
	// puertos: aunque el puerto de origen venga sin su país, el país de
	// destino inexistente es el primer incumplimiento
	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:           entity.OperacionTipoExportacion,
		ClienteID:      ptr(clienteAlemanID),
		PuertoOrigenID: ptr(puertoGuayaquilID), // sin pais_origen_id
		PaisDestinoID:  ptr(idInexistente),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrPuertoSinPais)
}

func TestValidator_PuertoDeOtroPaisRechazado(t *testing.T) {
	v := buildValidator()

	// el puerto de Hamburgo no pertenece a Ecuador
	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:           entity.OperacionTipoExportacion,
		ClienteID:      ptr(clienteAlemanID),
		PaisOrigenID:   ptr(paisEcuadorID),
		PuertoOrigenID: ptr(puertoHamburgoID),
	})

	assert.ErrorIs(t, err, domain.ErrPuertoPaisNoCoincide)
}

func TestValidator_PuertoDestinoDeOtroPaisRechazado(t *testing.T) {
	v := buildValidator()

	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:            entity.OperacionTipoExportacion,
		ClienteID:       ptr(clienteAlemanID),
		PaisDestinoID:   ptr(paisAlemaniaID),
		PuertoDestinoID: ptr(puertoGuayaquilID),
	})

	assert.ErrorIs(t, err, domain.ErrPuertoPaisNoCoincide)
}

func TestValidator_OperacionCompletaValida(t *testing.T) {
	v := buildValidator()

	err := v.Validate(context.Background(), trade.OperacionCandidata{
		Tipo:            entity.OperacionTipoExportacion,
		ClienteID:       ptr(clienteAlemanID),
		ProveedorID:     ptr(proveedorEcuadorID),
		PaisOrigenID:    ptr(paisEcuadorID),
		PaisDestinoID:   ptr(paisAlemaniaID),
		PuertoOrigenID:  ptr(puertoGuayaquilID),
		PuertoDestinoID: ptr(puertoHamburgoID),
	})

	assert.NoError(t, err, "una exportación con topología completa y coherente debe aceptarse")
}
