package dto

import "time"

// CreateUserRequest alta de un usuario por parte del owner.
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// UpdateUserRequest actualización parcial por el owner (nil = sin cambio).
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         int64             `json:"id"`
	BusinessID int64             `json:"businessId"`
	Email      string            `json:"email"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	Role       string            `json:"role"`
	IsActive   bool              `json:"isActive"`
	LastLogin  *time.Time        `json:"lastLogin"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	Business   *BusinessResponse `json:"business,omitempty"`
}

// UserEnvelope {"user": ...}
type UserEnvelope struct {
	Message string        `json:"message,omitempty"`
	User    *UserResponse `json:"user"`
}

// UserListResponse {"users": [...]}
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}
