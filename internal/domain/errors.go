package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos de uso los
// envuelven con contexto vía fmt.Errorf("...: %w", Err...) y los handlers
// los mapean a códigos HTTP con errors.Is.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("el registro ya existe")
	ErrEnUso        = errors.New("el registro está referenciado por otros registros")

	// Validación relacional de operaciones
	ErrContraparteRequerida = errors.New("la operación requiere contraparte según su tipo")
	ErrMismoPais            = errors.New("el cliente y el proveedor no pueden pertenecer al mismo país")
	ErrPuertoSinPais        = errors.New("si se especifica un puerto debe indicarse el país correspondiente")
	ErrPuertoPaisNoCoincide = errors.New("el puerto no pertenece al país indicado")
	ErrTipoConDetalles      = errors.New("no es posible cambiar el tipo de operación: ya tiene detalles asociados")
	ErrOperacionConDetalles = errors.New("la operación tiene detalles asociados")

	// Ledger de stock
	ErrStockInsuficiente = errors.New("stock insuficiente")
	ErrStockNegativo     = errors.New("el ajuste dejaría el stock en negativo")
)
