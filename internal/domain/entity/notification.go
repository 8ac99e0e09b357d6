package entity

import "time"

// Valores por defecto de notificaciones.
const (
	NotificationTypeInfo    = "info"
	NotificationPriorityMid = "medium"
)

// Notification es un aviso interno del negocio.
type Notification struct {
	ID         int64
	BusinessID int64
	Title      string
	Message    string
	Type       string // info, warning, success, error
	Priority   string // low, medium, high
	IsRead     bool
	CreatedAt  time.Time
}
