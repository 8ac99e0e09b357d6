package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBusinessRequest datos de un tenant nuevo.
type CreateBusinessRequest struct {
	Name      string
	Subdomain string
	Email     string
	Phone     string
	Address   string
}

// UpdateBusinessRequest actualización parcial: solo los campos presentes se aplican,
// incluidos valores vacíos o cero. Subdomain e isActive no son editables.
type UpdateBusinessRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Email       *string         `json:"email"`
	Phone       *string         `json:"phone"`
	Address     *string         `json:"address"`
	Timezone    *string         `json:"timezone"`
	Currency    *string         `json:"currency"`
	TaxRate     *FlexDecimal    `json:"taxRate"`
	Settings    *map[string]any `json:"settings"`
}

// BusinessResponse salida de un negocio.
type BusinessResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Subdomain   string          `json:"subdomain"`
	Description string          `json:"description"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	Timezone    string          `json:"timezone"`
	Currency    string          `json:"currency"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	IsActive    bool            `json:"isActive"`
	Settings    map[string]any  `json:"settings"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// BusinessEnvelope {"business": ...}
type BusinessEnvelope struct {
	Message  string            `json:"message,omitempty"`
	Business *BusinessResponse `json:"business"`
}
