package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// InventoryUseCase CRUD de artículos de inventario acotado al negocio del usuario.
// SoldCount no se edita aquí: lo mantiene el registro de ventas.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List devuelve los artículos del negocio.
func (uc *InventoryUseCase) List(ctx context.Context, businessID int64) ([]dto.InventoryItemResponse, error) {
	items, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return dto.FromInventoryItems(items), nil
}

// Get devuelve un artículo por (businessID, id).
func (uc *InventoryUseCase) Get(ctx context.Context, businessID, id int64) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return dto.FromInventoryItem(item), nil
}

// Create da de alta un artículo. El negocio siempre es el del usuario autenticado.
func (uc *InventoryUseCase) Create(ctx context.Context, businessID int64, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.MissingFields("Missing required fields", "name")
	}
	now := time.Now().UTC()
	item := &entity.InventoryItem{
		BusinessID:   businessID,
		Name:         name,
		SKU:          strings.TrimSpace(in.SKU),
		Description:  in.Description,
		Category:     in.Category,
		Barcode:      strings.TrimSpace(in.Barcode),
		Price:        in.Price.Decimal(),
		Cost:         in.Cost.Decimal(),
		Quantity:     in.Quantity.Int64(),
		ReorderPoint: in.ReorderPoint.Int64(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return dto.FromInventoryItem(item), nil
}

// Update aplica los campos presentes sobre el artículo (businessID, id).
func (uc *InventoryUseCase) Update(ctx context.Context, businessID, id int64, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
		if item.Name == "" {
			return nil, domain.Invalid("Item name cannot be empty")
		}
	}
	if in.SKU != nil {
		item.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Barcode != nil {
		item.Barcode = strings.TrimSpace(*in.Barcode)
	}
	if in.Price != nil {
		item.Price = in.Price.Decimal()
	}
	if in.Cost != nil {
		item.Cost = in.Cost.Decimal()
	}
	if in.Quantity != nil {
		item.Quantity = in.Quantity.Int64()
	}
	if in.ReorderPoint != nil {
		item.ReorderPoint = in.ReorderPoint.Int64()
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return dto.FromInventoryItem(item), nil
}

// Delete elimina el artículo (businessID, id).
func (uc *InventoryUseCase) Delete(ctx context.Context, businessID, id int64) error {
	return uc.repo.Delete(ctx, businessID, id)
}

func validateItem(item *entity.InventoryItem) error {
	if item.Price.IsNegative() || item.Cost.IsNegative() {
		return domain.Invalid("Price and cost cannot be negative")
	}
	if item.Quantity < 0 || item.ReorderPoint < 0 {
		return domain.Invalid("Quantity and reorder point cannot be negative")
	}
	return nil
}
