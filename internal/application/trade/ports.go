package trade

import (
	"context"

	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger de
// stock/costo: cualquier error de fn revierte todos los cambios.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		detalleRepo repository.DetalleRepository,
		productoRepo repository.ProductoRepository,
		operacionRepo repository.OperacionRepository,
	) error) error
}
