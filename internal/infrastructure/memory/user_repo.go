package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository en memoria.
type UserRepo struct {
	store *Store
	tx    *state
}

// NewUserRepo construye el repositorio.
func NewUserRepo(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create asigna ID y guarda el usuario. El email es único globalmente.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	return r.store.update(r.tx, func(st *state) error {
		if emailTaken(st, u.Email, 0) {
			return domain.ErrEmailTaken
		}
		u.ID = st.nextID("users")
		st.users[u.ID] = copyUser(u)
		return nil
	})
}

// GetByID devuelve el usuario o nil.
func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	var out *entity.User
	r.store.view(r.tx, func(st *state) {
		if u, ok := st.users[id]; ok {
			out = copyUser(u)
		}
	})
	return out, nil
}

// GetByEmail busca en todos los negocios.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	var out *entity.User
	r.store.view(r.tx, func(st *state) {
		for _, u := range st.users {
			if u.Email == email {
				out = copyUser(u)
				return
			}
		}
	})
	return out, nil
}

// GetInBusiness devuelve el usuario solo si pertenece al negocio.
func (r *UserRepo) GetInBusiness(_ context.Context, businessID, id int64) (*entity.User, error) {
	var out *entity.User
	r.store.view(r.tx, func(st *state) {
		if u, ok := st.users[id]; ok && u.BusinessID == businessID {
			out = copyUser(u)
		}
	})
	return out, nil
}

// ListByBusiness devuelve los usuarios del negocio por orden de alta.
func (r *UserRepo) ListByBusiness(_ context.Context, businessID int64) ([]*entity.User, error) {
	var out []*entity.User
	r.store.view(r.tx, func(st *state) {
		out = collect(st.users, func(u *entity.User) bool { return u.BusinessID == businessID }, copyUser)
	})
	slices.SortFunc(out, func(a, b *entity.User) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// Update reemplaza el usuario. BusinessID es inmutable.
func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	return r.store.update(r.tx, func(st *state) error {
		cur, ok := st.users[u.ID]
		if !ok {
			return domain.ErrUserNotFound
		}
		if emailTaken(st, u.Email, u.ID) {
			return domain.ErrEmailInUse
		}
		next := copyUser(u)
		next.BusinessID = cur.BusinessID
		next.CreatedAt = cur.CreatedAt
		st.users[u.ID] = next
		return nil
	})
}

// Delete elimina el usuario (businessID, id).
func (r *UserRepo) Delete(_ context.Context, businessID, id int64) error {
	return r.store.update(r.tx, func(st *state) error {
		u, ok := st.users[id]
		if !ok || u.BusinessID != businessID {
			return domain.ErrUserNotFound
		}
		delete(st.users, id)
		return nil
	})
}

func emailTaken(st *state, email string, exceptID int64) bool {
	for _, u := range st.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}

var _ repository.UserRepository = (*UserRepo)(nil)
