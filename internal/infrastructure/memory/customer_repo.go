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

// CustomerRepo implementa repository.CustomerRepository en memoria.
type CustomerRepo struct {
	store *Store
	tx    *state
}

// NewCustomerRepo construye el repositorio.
func NewCustomerRepo(store *Store) *CustomerRepo {
	return &CustomerRepo{store: store}
}

// Create asigna ID y guarda el cliente.
func (r *CustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	return r.store.update(r.tx, func(st *state) error {
		c.ID = st.nextID("customers")
		st.customers[c.ID] = copyCustomer(c)
		return nil
	})
}

// GetByID devuelve el cliente (businessID, id) o nil.
func (r *CustomerRepo) GetByID(_ context.Context, businessID, id int64) (*entity.Customer, error) {
	var out *entity.Customer
	r.store.view(r.tx, func(st *state) {
		if c, ok := st.customers[id]; ok && c.BusinessID == businessID {
			out = copyCustomer(c)
		}
	})
	return out, nil
}

// GetForUpdate igual que GetByID: el TxRunner ya serializa las transacciones.
func (r *CustomerRepo) GetForUpdate(ctx context.Context, businessID, id int64) (*entity.Customer, error) {
	return r.GetByID(ctx, businessID, id)
}

// ListByBusiness devuelve los clientes del negocio ordenados por nombre.
func (r *CustomerRepo) ListByBusiness(_ context.Context, businessID int64) ([]*entity.Customer, error) {
	var out []*entity.Customer
	r.store.view(r.tx, func(st *state) {
		out = collect(st.customers, func(c *entity.Customer) bool { return c.BusinessID == businessID }, copyCustomer)
	})
	slices.SortFunc(out, func(a, b *entity.Customer) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Update reemplaza el cliente si coincide (id, businessID).
func (r *CustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	return r.store.update(r.tx, func(st *state) error {
		cur, ok := st.customers[c.ID]
		if !ok || cur.BusinessID != c.BusinessID {
			return domain.ErrCustomerNotFound
		}
		next := copyCustomer(c)
		next.CreatedAt = cur.CreatedAt
		st.customers[c.ID] = next
		return nil
	})
}

// Delete elimina el cliente (businessID, id).
func (r *CustomerRepo) Delete(_ context.Context, businessID, id int64) error {
	return r.store.update(r.tx, func(st *state) error {
		c, ok := st.customers[id]
		if !ok || c.BusinessID != businessID {
			return domain.ErrCustomerNotFound
		}
		delete(st.customers, id)
		return nil
	})
}

var _ repository.CustomerRepository = (*CustomerRepo)(nil)
