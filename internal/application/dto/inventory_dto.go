package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest alta de artículo. Los numéricos aceptan string o número.
type CreateInventoryItemRequest struct {
	Name         string      `json:"name"`
	SKU          string      `json:"sku"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Barcode      string      `json:"barcode"`
	Price        FlexDecimal `json:"price"`
	Cost         FlexDecimal `json:"cost"`
	Quantity     FlexInt     `json:"quantity"`
	ReorderPoint FlexInt     `json:"reorderPoint"`
}

// UpdateInventoryItemRequest actualización parcial (nil = sin cambio). SoldCount no es editable.
type UpdateInventoryItemRequest struct {
	Name         *string      `json:"name"`
	SKU          *string      `json:"sku"`
	Description  *string      `json:"description"`
	Category     *string      `json:"category"`
	Barcode      *string      `json:"barcode"`
	Price        *FlexDecimal `json:"price"`
	Cost         *FlexDecimal `json:"cost"`
	Quantity     *FlexInt     `json:"quantity"`
	ReorderPoint *FlexInt     `json:"reorderPoint"`
}

// InventoryItemResponse salida de un artículo.
type InventoryItemResponse struct {
	ID           int64           `json:"id"`
	BusinessID   int64           `json:"businessId"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Barcode      string          `json:"barcode"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Quantity     int64           `json:"quantity"`
	ReorderPoint int64           `json:"reorderPoint"`
	SoldCount    int64           `json:"soldCount"`
	LowStock     bool            `json:"lowStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
