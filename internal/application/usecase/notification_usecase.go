package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// NotificationUseCase avisos internos del negocio.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List devuelve las notificaciones del negocio, más recientes primero.
func (uc *NotificationUseCase) List(ctx context.Context, businessID int64) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return dto.FromNotifications(list), nil
}

// Create registra una notificación con type/priority por defecto si no vienen.
func (uc *NotificationUseCase) Create(ctx context.Context, businessID int64, in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	title := strings.TrimSpace(in.Title)
	message := strings.TrimSpace(in.Message)
	if title == "" || message == "" {
		return nil, domain.MissingFields("Missing required fields", "title", "message")
	}
	n := &entity.Notification{
		BusinessID: businessID,
		Title:      title,
		Message:    message,
		Type:       defaultString(in.Type, entity.NotificationTypeInfo),
		Priority:   defaultString(in.Priority, entity.NotificationPriorityMid),
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return dto.FromNotification(n), nil
}

// MarkRead marca la notificación como leída.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, businessID, id int64) (*dto.NotificationResponse, error) {
	n, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotificationNotFound
	}
	if !n.IsRead {
		n.IsRead = true
		if err := uc.repo.Update(ctx, n); err != nil {
			return nil, err
		}
	}
	return dto.FromNotification(n), nil
}

// Delete elimina la notificación (businessID, id).
func (uc *NotificationUseCase) Delete(ctx context.Context, businessID, id int64) error {
	return uc.repo.Delete(ctx, businessID, id)
}

func defaultString(v, def string) string {
	if v = strings.ToLower(strings.TrimSpace(v)); v == "" {
		return def
	}
	return v
}
