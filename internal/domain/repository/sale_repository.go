package repository

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, businessID, id int64) (*entity.Sale, error)
	// ListByBusiness devuelve las ventas del negocio, más recientes primero.
	ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Sale, error)
}
