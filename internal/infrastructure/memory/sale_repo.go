package memory

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// SaleRepo implementa repository.SaleRepository en memoria. Las ventas no se modifican.
type SaleRepo struct {
	store *Store
	tx    *state
}

// NewSaleRepo construye el repositorio.
func NewSaleRepo(store *Store) *SaleRepo {
	return &SaleRepo{store: store}
}

// Create asigna ID y guarda la venta.
func (r *SaleRepo) Create(_ context.Context, s *entity.Sale) error {
	return r.store.update(r.tx, func(st *state) error {
		s.ID = st.nextID("sales")
		st.sales[s.ID] = copySale(s)
		return nil
	})
}

// GetByID devuelve la venta (businessID, id) o nil.
func (r *SaleRepo) GetByID(_ context.Context, businessID, id int64) (*entity.Sale, error) {
	var out *entity.Sale
	r.store.view(r.tx, func(st *state) {
		if s, ok := st.sales[id]; ok && s.BusinessID == businessID {
			out = copySale(s)
		}
	})
	return out, nil
}

// ListByBusiness devuelve las ventas del negocio, más recientes primero.
func (r *SaleRepo) ListByBusiness(_ context.Context, businessID int64) ([]*entity.Sale, error) {
	var out []*entity.Sale
	r.store.view(r.tx, func(st *state) {
		out = salesOf(st, businessID)
	})
	return out, nil
}

func salesOf(st *state, businessID int64) []*entity.Sale {
	out := collect(st.sales, func(s *entity.Sale) bool { return s.BusinessID == businessID }, copySale)
	sortNewestFirst(out, func(s *entity.Sale) (int64, int64) { return s.CreatedAt.UnixNano(), s.ID })
	return out
}

var _ repository.SaleRepository = (*SaleRepo)(nil)
