package memory

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// BusinessRepo implementa repository.BusinessRepository en memoria.
type BusinessRepo struct {
	store *Store
	tx    *state
}

// NewBusinessRepo construye el repositorio.
func NewBusinessRepo(store *Store) *BusinessRepo {
	return &BusinessRepo{store: store}
}

// Create asigna ID y guarda el negocio. El subdominio es único.
func (r *BusinessRepo) Create(_ context.Context, b *entity.Business) error {
	return r.store.update(r.tx, func(st *state) error {
		for _, other := range st.businesses {
			if other.Subdomain == b.Subdomain {
				return domain.ErrSubdomainTaken
			}
		}
		b.ID = st.nextID("businesses")
		st.businesses[b.ID] = copyBusiness(b)
		return nil
	})
}

// GetByID devuelve el negocio o nil.
func (r *BusinessRepo) GetByID(_ context.Context, id int64) (*entity.Business, error) {
	var out *entity.Business
	r.store.view(r.tx, func(st *state) {
		if b, ok := st.businesses[id]; ok {
			out = copyBusiness(b)
		}
	})
	return out, nil
}

// GetBySubdomain devuelve el negocio o nil.
func (r *BusinessRepo) GetBySubdomain(_ context.Context, subdomain string) (*entity.Business, error) {
	var out *entity.Business
	r.store.view(r.tx, func(st *state) {
		for _, b := range st.businesses {
			if b.Subdomain == subdomain {
				out = copyBusiness(b)
				return
			}
		}
	})
	return out, nil
}

// Update reemplaza el negocio. Subdomain se conserva siempre.
func (r *BusinessRepo) Update(_ context.Context, b *entity.Business) error {
	return r.store.update(r.tx, func(st *state) error {
		cur, ok := st.businesses[b.ID]
		if !ok {
			return domain.ErrBusinessNotFound
		}
		next := copyBusiness(b)
		next.Subdomain = cur.Subdomain
		next.CreatedAt = cur.CreatedAt
		st.businesses[b.ID] = next
		return nil
	})
}

var _ repository.BusinessRepository = (*BusinessRepo)(nil)
