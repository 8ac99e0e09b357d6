package repository

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, businessID, id int64) (*entity.Customer, error)
	GetForUpdate(ctx context.Context, businessID, id int64) (*entity.Customer, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, businessID, id int64) error
}
