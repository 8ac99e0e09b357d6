package memory

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// NotificationRepo implementa repository.NotificationRepository en memoria.
type NotificationRepo struct {
	store *Store
	tx    *state
}

// NewNotificationRepo construye el repositorio.
func NewNotificationRepo(store *Store) *NotificationRepo {
	return &NotificationRepo{store: store}
}

// Create asigna ID y guarda la notificación.
func (r *NotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	return r.store.update(r.tx, func(st *state) error {
		n.ID = st.nextID("notifications")
		st.notifications[n.ID] = copyNotification(n)
		return nil
	})
}

// GetByID devuelve la notificación (businessID, id) o nil.
func (r *NotificationRepo) GetByID(_ context.Context, businessID, id int64) (*entity.Notification, error) {
	var out *entity.Notification
	r.store.view(r.tx, func(st *state) {
		if n, ok := st.notifications[id]; ok && n.BusinessID == businessID {
			out = copyNotification(n)
		}
	})
	return out, nil
}

// ListByBusiness devuelve las notificaciones del negocio, más recientes primero.
func (r *NotificationRepo) ListByBusiness(_ context.Context, businessID int64) ([]*entity.Notification, error) {
	var out []*entity.Notification
	r.store.view(r.tx, func(st *state) {
		out = collect(st.notifications, func(n *entity.Notification) bool { return n.BusinessID == businessID }, copyNotification)
	})
	sortNewestFirst(out, func(n *entity.Notification) (int64, int64) { return n.CreatedAt.UnixNano(), n.ID })
	return out, nil
}

// Update reemplaza la notificación si coincide (id, businessID).
func (r *NotificationRepo) Update(_ context.Context, n *entity.Notification) error {
	return r.store.update(r.tx, func(st *state) error {
		cur, ok := st.notifications[n.ID]
		if !ok || cur.BusinessID != n.BusinessID {
			return domain.ErrNotificationNotFound
		}
		st.notifications[n.ID] = copyNotification(n)
		return nil
	})
}

// Delete elimina la notificación (businessID, id).
func (r *NotificationRepo) Delete(_ context.Context, businessID, id int64) error {
	return r.store.update(r.tx, func(st *state) error {
		n, ok := st.notifications[id]
		if !ok || n.BusinessID != businessID {
			return domain.ErrNotificationNotFound
		}
		delete(st.notifications, id)
		return nil
	})
}

var _ repository.NotificationRepository = (*NotificationRepo)(nil)
