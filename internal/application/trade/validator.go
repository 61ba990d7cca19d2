package trade

import (
	"context"
	"fmt"

	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// OperacionCandidata campos relacionales de una operación a validar (payload
// de create, o el resultado de fusionar un update sobre el estado actual).
type OperacionCandidata struct {
	Tipo            string
	ClienteID       *int64
	ProveedorID     *int64
	PaisOrigenID    *int64
	PaisDestinoID   *int64
	PuertoOrigenID  *int64
	PuertoDestinoID *int64
}

// OperacionValidator valida la topología relacional de una operación contra
// los datos maestros vigentes. Solo hace lecturas, nunca muta estado.
type OperacionValidator struct {
	clienteRepo   repository.ClienteRepository
	proveedorRepo repository.ProveedorRepository
	paisRepo      repository.PaisRepository
	puertoRepo    repository.PuertoRepository
}

// NewOperacionValidator construye el validador.
func NewOperacionValidator(
	clienteRepo repository.ClienteRepository,
	proveedorRepo repository.ProveedorRepository,
	paisRepo repository.PaisRepository,
	puertoRepo repository.PuertoRepository,
) *OperacionValidator {
	return &OperacionValidator{
		clienteRepo:   clienteRepo,
		proveedorRepo: proveedorRepo,
		paisRepo:      paisRepo,
		puertoRepo:    puertoRepo,
	}
}

// Validate aplica las reglas en orden y devuelve el primer incumplimiento como
// error de dominio distinguible (errors.Is). Reglas:
//  1. exportación exige cliente; importación exige proveedor
//  2. cliente y proveedor referenciados deben existir
//  3. si ambos existen, sus países deben ser distintos
//  4. países de origen y destino referenciados deben existir (ambos extremos
//     antes de cualquier regla de puertos)
//  5. puerto sin su país correspondiente se rechaza (origen y luego destino)
//  6. el puerto debe existir y pertenecer al país declarado
func (v *OperacionValidator) Validate(ctx context.Context, c OperacionCandidata) error {
	if c.Tipo == entity.OperacionTipoExportacion && c.ClienteID == nil {
		return fmt.Errorf("las operaciones de exportación deben tener un cliente asociado: %w", domain.ErrContraparteRequerida)
	}
	if c.Tipo == entity.OperacionTipoImportacion && c.ProveedorID == nil {
		return fmt.Errorf("las operaciones de importación deben tener un proveedor asociado: %w", domain.ErrContraparteRequerida)
	}

	var cliente *entity.Cliente
	if c.ClienteID != nil {
		var err error
		cliente, err = v.clienteRepo.GetByID(ctx, *c.ClienteID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return fmt.Errorf("el cliente con id %d no existe: %w", *c.ClienteID, domain.ErrNotFound)
		}
	}

	var proveedor *entity.Proveedor
	if c.ProveedorID != nil {
		var err error
		proveedor, err = v.proveedorRepo.GetByID(ctx, *c.ProveedorID)
		if err != nil {
			return err
		}
		if proveedor == nil {
			return fmt.Errorf("el proveedor con id %d no existe: %w", *c.ProveedorID, domain.ErrNotFound)
		}
	}

	// Comercio internacional: debe haber intercambio entre países distintos
	if cliente != nil && proveedor != nil && mismoPais(cliente.PaisID, proveedor.PaisID) {
		return domain.ErrMismoPais
	}

	// Primero la existencia de ambos países, luego las reglas de puertos.
	if err := v.validarPaisExiste(ctx, "origen", c.PaisOrigenID); err != nil {
		return err
	}
	if err := v.validarPaisExiste(ctx, "destino", c.PaisDestinoID); err != nil {
		return err
	}

	if c.PuertoOrigenID != nil && c.PaisOrigenID == nil {
		return fmt.Errorf("puerto de origen: %w", domain.ErrPuertoSinPais)
	}
	if c.PuertoDestinoID != nil && c.PaisDestinoID == nil {
		return fmt.Errorf("puerto de destino: %w", domain.ErrPuertoSinPais)
	}

	if err := v.validarPuertoDelPais(ctx, "origen", c.PuertoOrigenID, c.PaisOrigenID); err != nil {
		return err
	}
	return v.validarPuertoDelPais(ctx, "destino", c.PuertoDestinoID, c.PaisDestinoID)
}

// validarPaisExiste rechaza una referencia a un país inexistente.
func (v *OperacionValidator) validarPaisExiste(ctx context.Context, extremo string, paisID *int64) error {
	if paisID == nil {
		return nil
	}
	pais, err := v.paisRepo.GetByID(ctx, *paisID)
	if err != nil {
		return err
	}
	if pais == nil {
		return fmt.Errorf("el país de %s con id %d no existe: %w", extremo, *paisID, domain.ErrNotFound)
	}
	return nil
}

// validarPuertoDelPais valida existencia y pertenencia del puerto de un
// extremo; asume que el emparejamiento puerto→país ya fue verificado.
func (v *OperacionValidator) validarPuertoDelPais(ctx context.Context, extremo string, puertoID, paisID *int64) error {
	if puertoID == nil {
		return nil
	}

	puerto, err := v.puertoRepo.GetByID(ctx, *puertoID)
	if err != nil {
		return err
	}
	if puerto == nil {
		return fmt.Errorf("el puerto de %s con id %d no existe: %w", extremo, *puertoID, domain.ErrNotFound)
	}
	if puerto.PaisID != *paisID {
		return fmt.Errorf("el puerto de %s no pertenece al país de %s: %w", extremo, extremo, domain.ErrPuertoPaisNoCoincide)
	}
	return nil
}

// mismoPais compara los países de cliente y proveedor; dos referencias nulas
// cuentan como el mismo país.
func mismoPais(a, b *int64) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
