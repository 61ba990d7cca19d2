package trade

import (
	"context"
	"fmt"

	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// DetalleParaDocumento línea de detalle enriquecida con datos del producto
// para los documentos imprimibles.
type DetalleParaDocumento struct {
	entity.DetalleOperacion
	ProductoNombre string
	UnidadMedida   string
}

// OperacionParaDocumento operación con todas sus referencias resueltas a
// nombres legibles.
type OperacionParaDocumento struct {
	Operacion       *entity.Operacion
	Cliente         *entity.Cliente
	Proveedor       *entity.Proveedor
	PaisOrigen      *entity.Pais
	PaisDestino     *entity.Pais
	PuertoOrigen    *entity.Puerto
	PuertoDestino   *entity.Puerto
	MedioTransporte *entity.MedioTransporte
	Detalles        []DetalleParaDocumento
}

// OperacionPDFGenerator genera el resumen imprimible de una operación.
type OperacionPDFGenerator interface {
	GenerateOperacionPDF(ctx context.Context, doc *OperacionParaDocumento) ([]byte, error)
}

// DeclaracionXMLBuilder arma la declaración aduanera XML de una operación.
type DeclaracionXMLBuilder interface {
	BuildDeclaracion(doc *OperacionParaDocumento) ([]byte, error)
}

// DocumentoUseCase genera los documentos descargables de una operación: el
// resumen PDF y la declaración aduanera XML.
type DocumentoUseCase struct {
	operacionRepo repository.OperacionRepository
	detalleRepo   repository.DetalleRepository
	productoRepo  repository.ProductoRepository
	clienteRepo   repository.ClienteRepository
	proveedorRepo repository.ProveedorRepository
	paisRepo      repository.PaisRepository
	puertoRepo    repository.PuertoRepository
	medioRepo     repository.MedioTransporteRepository
	pdfGenerator  OperacionPDFGenerator
	xmlBuilder    DeclaracionXMLBuilder
}

// NewDocumentoUseCase construye el caso de uso inyectando todas sus dependencias.
func NewDocumentoUseCase(
	operacionRepo repository.OperacionRepository,
	detalleRepo repository.DetalleRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	proveedorRepo repository.ProveedorRepository,
	paisRepo repository.PaisRepository,
	puertoRepo repository.PuertoRepository,
	medioRepo repository.MedioTransporteRepository,
	pdfGenerator OperacionPDFGenerator,
	xmlBuilder DeclaracionXMLBuilder,
) *DocumentoUseCase {
	return &DocumentoUseCase{
		operacionRepo: operacionRepo,
		detalleRepo:   detalleRepo,
		productoRepo:  productoRepo,
		clienteRepo:   clienteRepo,
		proveedorRepo: proveedorRepo,
		paisRepo:      paisRepo,
		puertoRepo:    puertoRepo,
		medioRepo:     medioRepo,
		pdfGenerator:  pdfGenerator,
		xmlBuilder:    xmlBuilder,
	}
}

// DescargarOperacionPDF genera el resumen PDF de la operación.
// Retorna (bytes, filename, nil) o domain.ErrNotFound si la operación no existe.
func (uc *DocumentoUseCase) DescargarOperacionPDF(ctx context.Context, id int64) ([]byte, string, error) {
	doc, err := uc.cargarDocumento(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdfGenerator.GenerateOperacionPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("operacion_%d.pdf", id), nil
}

// DescargarDeclaracionXML genera la declaración aduanera XML de la operación.
func (uc *DocumentoUseCase) DescargarDeclaracionXML(ctx context.Context, id int64) ([]byte, string, error) {
	doc, err := uc.cargarDocumento(ctx, id)
	if err != nil {
		return nil, "", err
	}
	xmlBytes, err := uc.xmlBuilder.BuildDeclaracion(doc)
	if err != nil {
		return nil, "", fmt.Errorf("declaracion: construcción fallida: %w", err)
	}
	return xmlBytes, fmt.Sprintf("declaracion_%d.xml", id), nil
}

// cargarDocumento arma la vista completa de la operación resolviendo cada
// referencia opcional a su entidad.
func (uc *DocumentoUseCase) cargarDocumento(ctx context.Context, id int64) (*OperacionParaDocumento, error) {
	op, err := uc.operacionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("documento: obtener operación: %w", err)
	}
	if op == nil {
		return nil, fmt.Errorf("la operación con id %d no existe: %w", id, domain.ErrNotFound)
	}

	doc := &OperacionParaDocumento{Operacion: op}

	if op.ClienteID != nil {
		if doc.Cliente, err = uc.clienteRepo.GetByID(ctx, *op.ClienteID); err != nil {
			return nil, fmt.Errorf("documento: obtener cliente: %w", err)
		}
	}
	if op.ProveedorID != nil {
		if doc.Proveedor, err = uc.proveedorRepo.GetByID(ctx, *op.ProveedorID); err != nil {
			return nil, fmt.Errorf("documento: obtener proveedor: %w", err)
		}
	}
	if op.PaisOrigenID != nil {
		if doc.PaisOrigen, err = uc.paisRepo.GetByID(ctx, *op.PaisOrigenID); err != nil {
			return nil, fmt.Errorf("documento: obtener país de origen: %w", err)
		}
	}
	if op.PaisDestinoID != nil {
		if doc.PaisDestino, err = uc.paisRepo.GetByID(ctx, *op.PaisDestinoID); err != nil {
			return nil, fmt.Errorf("documento: obtener país de destino: %w", err)
		}
	}
	if op.PuertoOrigenID != nil {
		if doc.PuertoOrigen, err = uc.puertoRepo.GetByID(ctx, *op.PuertoOrigenID); err != nil {
			return nil, fmt.Errorf("documento: obtener puerto de origen: %w", err)
		}
	}
	if op.PuertoDestinoID != nil {
		if doc.PuertoDestino, err = uc.puertoRepo.GetByID(ctx, *op.PuertoDestinoID); err != nil {
			return nil, fmt.Errorf("documento: obtener puerto de destino: %w", err)
		}
	}
	if op.MedioTransporteID != nil {
		if doc.MedioTransporte, err = uc.medioRepo.GetByID(ctx, *op.MedioTransporteID); err != nil {
			return nil, fmt.Errorf("documento: obtener medio de transporte: %w", err)
		}
	}

	detalles, err := uc.detalleRepo.ListByOperacion(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("documento: obtener detalles: %w", err)
	}
	doc.Detalles = make([]DetalleParaDocumento, 0, len(detalles))
	for _, d := range detalles {
		nombre := fmt.Sprintf("Producto %d", d.ProductoID) // fallback
		unidad := "kg"
		if producto, pErr := uc.productoRepo.GetByID(ctx, d.ProductoID); pErr == nil && producto != nil {
			nombre = producto.Nombre
			unidad = producto.UnidadMedida
		}
		doc.Detalles = append(doc.Detalles, DetalleParaDocumento{
			DetalleOperacion: *d,
			ProductoNombre:   nombre,
			UnidadMedida:     unidad,
		})
	}
	return doc, nil
}
