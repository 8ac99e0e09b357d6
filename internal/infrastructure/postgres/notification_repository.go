package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

const notificationColumns = `id, business_id, title, message, type, priority, is_read, created_at`

func scanNotification(s scanner) (*entity.Notification, error) {
	var n entity.Notification
	if err := s.Scan(&n.ID, &n.BusinessID, &n.Title, &n.Message, &n.Type, &n.Priority, &n.IsRead, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// Create persiste la notificación y asigna su ID.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (business_id, title, message, type, priority, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, n.BusinessID, n.Title, n.Message, n.Type, n.Priority, n.IsRead, n.CreatedAt).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por (businessID, id).
func (r *NotificationRepo) GetByID(ctx context.Context, businessID, id int64) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1 AND business_id = $2`
	n, err := scanNotification(r.q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// ListByBusiness lista las notificaciones del negocio, más recientes primero.
func (r *NotificationRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE business_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return collectRows(rows, scanNotification)
}

// Update actualiza la notificación si coincide (id, businessID).
func (r *NotificationRepo) Update(ctx context.Context, n *entity.Notification) error {
	query := `
		UPDATE notifications SET title = $3, message = $4, type = $5, priority = $6, is_read = $7
		WHERE id = $1 AND business_id = $2`
	tag, err := r.q.Exec(ctx, query, n.ID, n.BusinessID, n.Title, n.Message, n.Type, n.Priority, n.IsRead)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

// Delete elimina la notificación (businessID, id).
func (r *NotificationRepo) Delete(ctx context.Context, businessID, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
