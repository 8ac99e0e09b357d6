package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del inventario de un negocio.
// SoldCount lo mantiene el servidor al registrar ventas.
type InventoryItem struct {
	ID           int64
	BusinessID   int64
	Name         string
	SKU          string
	Description  string
	Category     string
	Barcode      string
	Price        decimal.Decimal
	Cost         decimal.Decimal
	Quantity     int64
	ReorderPoint int64
	SoldCount    int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock indica si la cantidad llegó al punto de reorden.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.ReorderPoint
}
