package repository

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

// NotificationRepository puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, businessID, id int64) (*entity.Notification, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Notification, error)
	Update(ctx context.Context, n *entity.Notification) error
	Delete(ctx context.Context, businessID, id int64) error
}
