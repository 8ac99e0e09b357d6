package repository

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business (directorio de tenants).
// Los métodos Get* devuelven (nil, nil) si el registro no existe.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id int64) (*entity.Business, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*entity.Business, error)
	Update(ctx context.Context, business *entity.Business) error
}
