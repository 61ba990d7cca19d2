package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo     repository.ClienteRepository
	paisRepo repository.PaisRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, paisRepo repository.PaisRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, paisRepo: paisRepo}
}

// Create crea un cliente. Si trae país, este debe existir.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if err := uc.verificarPais(ctx, in.PaisID); err != nil {
		return nil, err
	}
	cliente := &entity.Cliente{
		Nombre:   in.Nombre,
		Tipo:     in.Tipo,
		Email:    in.Email,
		Telefono: in.Telefono,
		PaisID:   in.PaisID,
	}
	if err := uc.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes; q filtra por nombre sin distinguir acentos.
func (uc *ClienteUseCase) List(ctx context.Context, q string) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		if coincide(c.Nombre, q) {
			items = append(items, *toClienteResponse(c))
		}
	}
	return items, nil
}

// Update actualiza un cliente. (nil, nil) si no existe.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	if in.PaisID != nil {
		if err := uc.verificarPais(ctx, in.PaisID); err != nil {
			return nil, err
		}
		cliente.PaisID = in.PaisID
	}
	if in.Nombre != nil {
		cliente.Nombre = *in.Nombre
	}
	if in.Tipo != nil {
		cliente.Tipo = in.Tipo
	}
	if in.Email != nil {
		cliente.Email = in.Email
	}
	if in.Telefono != nil {
		cliente.Telefono = in.Telefono
	}
	if err := uc.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete elimina un cliente por ID.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) error {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return fmt.Errorf("cliente no encontrado: %w", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ClienteUseCase) verificarPais(ctx context.Context, paisID *int64) error {
	if paisID == nil {
		return nil
	}
	pais, err := uc.paisRepo.GetByID(ctx, *paisID)
	if err != nil {
		return err
	}
	if pais == nil {
		return fmt.Errorf("el país con id %d no existe: %w", *paisID, domain.ErrNotFound)
	}
	return nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nombre:   c.Nombre,
		Tipo:     c.Tipo,
		Email:    c.Email,
		Telefono: c.Telefono,
		PaisID:   c.PaisID,
	}
}
