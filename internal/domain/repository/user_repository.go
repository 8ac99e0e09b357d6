package repository

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// GetByEmail busca en todos los tenants: el email es único globalmente.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetInBusiness busca por (id, businessID); devuelve nil si el usuario es de otro tenant.
	GetInBusiness(ctx context.Context, businessID, id int64) (*entity.User, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, businessID, id int64) error
}
