package dto

import "time"

// CreateNotificationRequest alta de notificación.
type CreateNotificationRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Priority   string    `json:"priority"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}
