package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del negocio. TotalSpent y VisitCount se
// actualizan con cada venta asociada.
type Customer struct {
	ID         int64
	BusinessID int64
	Name       string
	Email      string
	Phone      string
	Address    string
	IsVIP      bool
	TotalSpent decimal.Decimal
	VisitCount int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
