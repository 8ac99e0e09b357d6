package repository

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

// ReportRepository puerto de persistencia para reportes.
type ReportRepository interface {
	Create(ctx context.Context, r *entity.Report) error
	GetByID(ctx context.Context, businessID, id int64) (*entity.Report, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Report, error)
}
