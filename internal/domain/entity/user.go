package entity

import "time"

// Roles válidos para User, de mayor a menor privilegio.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// ValidRole indica si r es uno de los roles conocidos.
func ValidRole(r string) bool {
	switch r {
	case RoleOwner, RoleManager, RoleCashier:
		return true
	}
	return false
}

// User representa un usuario. Pertenece a un único Business durante toda su vida.
type User struct {
	ID           int64
	BusinessID   int64
	Email        string // único globalmente, no por tenant
	PasswordHash string // bcrypt, nunca se devuelve en respuestas
	FirstName    string
	LastName     string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal es la identidad resuelta de una petición autenticada.
type Principal struct {
	UserID     int64  `json:"user_id"`
	BusinessID int64  `json:"business_id"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
}

// Principal devuelve la vista mínima del usuario que usa el middleware.
func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, BusinessID: u.BusinessID, Role: u.Role, IsActive: u.IsActive}
}
