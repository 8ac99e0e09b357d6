package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	IsVIP   bool   `json:"isVip"`
}

// UpdateCustomerRequest actualización parcial. TotalSpent y VisitCount los mantienen las ventas.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	IsVIP   *bool   `json:"isVip"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID         int64           `json:"id"`
	BusinessID int64           `json:"businessId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	IsVIP      bool            `json:"isVip"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	VisitCount int64           `json:"visitCount"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
