package repository

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para artículos de inventario.
// Toda búsqueda por ID es compuesta (businessID, id).
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, businessID, id int64) (*entity.InventoryItem, error)
	// GetForUpdate igual que GetByID pero bloquea el registro dentro de una transacción.
	GetForUpdate(ctx context.Context, businessID, id int64) (*entity.InventoryItem, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	// Delete devuelve ErrItemNotFound si no hay coincidencia (id, businessID).
	Delete(ctx context.Context, businessID, id int64) error
}
