package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es una línea de venta; ItemID referencia un InventoryItem del mismo negocio.
type SaleItem struct {
	ItemID   int64           `json:"id"`
	Name     string          `json:"name,omitempty"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Sale representa una venta en el punto de venta.
type Sale struct {
	ID            int64
	BusinessID    int64
	CustomerID    *int64
	UserID        int64
	Items         []SaleItem
	PaymentMethod string
	Total         decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	CreatedAt     time.Time
}
