package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta: ID es el id del artículo de inventario.
type SaleItemRequest struct {
	ID       FlexInt     `json:"id"`
	Name     string      `json:"name"`
	Quantity FlexInt     `json:"quantity"`
	Price    FlexDecimal `json:"price"`
}

// CreateSaleRequest registro de una venta.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	CustomerID    *FlexInt          `json:"customerId"`
	PaymentMethod string            `json:"paymentMethod"`
	Total         *FlexDecimal      `json:"total"`
	Tax           FlexDecimal       `json:"tax"`
	Discount      FlexDecimal       `json:"discount"`
}

// SaleItemResponse línea de venta en la salida.
type SaleItemResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name,omitempty"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            int64              `json:"id"`
	BusinessID    int64              `json:"businessId"`
	CustomerID    *int64             `json:"customerId"`
	UserID        int64              `json:"userId"`
	Items         []SaleItemResponse `json:"items"`
	PaymentMethod string             `json:"paymentMethod"`
	Total         decimal.Decimal    `json:"total"`
	Tax           decimal.Decimal    `json:"tax"`
	Discount      decimal.Decimal    `json:"discount"`
	CreatedAt     time.Time          `json:"createdAt"`
}
