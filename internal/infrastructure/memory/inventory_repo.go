package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// InventoryRepo implementa repository.InventoryRepository en memoria.
type InventoryRepo struct {
	store *Store
	tx    *state
}

// NewInventoryRepo construye el repositorio.
func NewInventoryRepo(store *Store) *InventoryRepo {
	return &InventoryRepo{store: store}
}

// Create asigna ID y guarda el artículo. El SKU (si viene) es único por negocio.
func (r *InventoryRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	return r.store.update(r.tx, func(st *state) error {
		if skuTaken(st, item.BusinessID, item.SKU, 0) {
			return domain.ErrSKUTaken
		}
		item.ID = st.nextID("inventory")
		st.inventory[item.ID] = copyItem(item)
		return nil
	})
}

// GetByID devuelve el artículo (businessID, id) o nil.
func (r *InventoryRepo) GetByID(_ context.Context, businessID, id int64) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	r.store.view(r.tx, func(st *state) {
		if it, ok := st.inventory[id]; ok && it.BusinessID == businessID {
			out = copyItem(it)
		}
	})
	return out, nil
}

// GetForUpdate igual que GetByID: el TxRunner ya serializa las transacciones.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, businessID, id int64) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, businessID, id)
}

// ListByBusiness devuelve los artículos del negocio ordenados por nombre.
func (r *InventoryRepo) ListByBusiness(_ context.Context, businessID int64) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	r.store.view(r.tx, func(st *state) {
		out = collect(st.inventory, func(it *entity.InventoryItem) bool { return it.BusinessID == businessID }, copyItem)
	})
	slices.SortFunc(out, func(a, b *entity.InventoryItem) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Update reemplaza el artículo si coincide (id, businessID).
func (r *InventoryRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	return r.store.update(r.tx, func(st *state) error {
		cur, ok := st.inventory[item.ID]
		if !ok || cur.BusinessID != item.BusinessID {
			return domain.ErrItemNotFound
		}
		if skuTaken(st, item.BusinessID, item.SKU, item.ID) {
			return domain.ErrSKUTaken
		}
		next := copyItem(item)
		next.CreatedAt = cur.CreatedAt
		st.inventory[item.ID] = next
		return nil
	})
}

// Delete elimina el artículo (businessID, id).
func (r *InventoryRepo) Delete(_ context.Context, businessID, id int64) error {
	return r.store.update(r.tx, func(st *state) error {
		it, ok := st.inventory[id]
		if !ok || it.BusinessID != businessID {
			return domain.ErrItemNotFound
		}
		delete(st.inventory, id)
		return nil
	})
}

func skuTaken(st *state, businessID int64, sku string, exceptID int64) bool {
	if sku == "" {
		return false
	}
	for _, it := range st.inventory {
		if it.BusinessID == businessID && it.SKU == sku && it.ID != exceptID {
			return true
		}
	}
	return false
}

var _ repository.InventoryRepository = (*InventoryRepo)(nil)
