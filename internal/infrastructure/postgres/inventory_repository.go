package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, business_id, name, sku, description, category, barcode, price, cost,
	quantity, reorder_point, sold_count, created_at, updated_at`

func scanInventoryItem(s scanner) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := s.Scan(&it.ID, &it.BusinessID, &it.Name, &it.SKU, &it.Description, &it.Category, &it.Barcode,
		&it.Price, &it.Cost, &it.Quantity, &it.ReorderPoint, &it.SoldCount, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste un artículo y asigna su ID.
func (r *InventoryRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (business_id, name, sku, description, category, barcode, price, cost,
			quantity, reorder_point, sold_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		it.BusinessID, it.Name, it.SKU, it.Description, it.Category, it.Barcode, it.Price, it.Cost,
		it.Quantity, it.ReorderPoint, it.SoldCount, it.CreatedAt, it.UpdatedAt,
	).Scan(&it.ID)
	if err != nil {
		if conflict := uniqueConflict(err, uqInventorySKU, domain.ErrSKUTaken); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por (businessID, id).
func (r *InventoryRepo) GetByID(ctx context.Context, businessID, id int64) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1 AND business_id = $2`
	return r.findOne(ctx, query, id, businessID)
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE). Usar dentro de una tx.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, businessID, id int64) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1 AND business_id = $2 FOR UPDATE`
	return r.findOne(ctx, query, id, businessID)
}

func (r *InventoryRepo) findOne(ctx context.Context, query string, args ...any) (*entity.InventoryItem, error) {
	it, err := scanInventoryItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return it, nil
}

// ListByBusiness lista los artículos del negocio ordenados por nombre.
func (r *InventoryRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE business_id = $1 ORDER BY lower(name), id`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return collectRows(rows, scanInventoryItem)
}

// Update actualiza el artículo si coincide (id, businessID).
func (r *InventoryRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $3, sku = $4, description = $5, category = $6, barcode = $7,
			price = $8, cost = $9, quantity = $10, reorder_point = $11, sold_count = $12, updated_at = $13
		WHERE id = $1 AND business_id = $2`
	tag, err := r.q.Exec(ctx, query,
		it.ID, it.BusinessID, it.Name, it.SKU, it.Description, it.Category, it.Barcode,
		it.Price, it.Cost, it.Quantity, it.ReorderPoint, it.SoldCount, it.UpdatedAt,
	)
	if err != nil {
		if conflict := uniqueConflict(err, uqInventorySKU, domain.ErrSKUTaken); conflict != nil {
			return conflict
		}
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete elimina el artículo (businessID, id).
func (r *InventoryRepo) Delete(ctx context.Context, businessID, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
