package repository

import (
	"context"
	"time"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SalesMetrics agregados de ventas en un período.
type SalesMetrics struct {
	Count   int64
	Revenue decimal.Decimal
	Tax     decimal.Decimal
}

// InventoryMetrics agregados del inventario actual.
type InventoryMetrics struct {
	Products   int64
	LowStock   int64
	Units      int64
	StockValue decimal.Decimal // suma de quantity * cost
}

// CustomerMetrics agregados de clientes.
type CustomerMetrics struct {
	Total      int64
	VIP        int64
	TotalSpent decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para analítica y dashboard.
// Todas están acotadas a un negocio. El rango de fechas es [from, to); un extremo
// con tiempo cero no filtra.
type AnalyticsRepository interface {
	GetSalesMetrics(ctx context.Context, businessID int64, from, to time.Time) (SalesMetrics, error)
	GetInventoryMetrics(ctx context.Context, businessID int64) (InventoryMetrics, error)
	GetCustomerMetrics(ctx context.Context, businessID int64) (CustomerMetrics, error)
	RecentSales(ctx context.Context, businessID int64, limit int) ([]*entity.Sale, error)
	TopProducts(ctx context.Context, businessID int64, limit int) ([]*entity.InventoryItem, error)
}

// Counts número de registros por colección (health check).
type Counts struct {
	Businesses    int64 `json:"businesses"`
	Users         int64 `json:"users"`
	Inventory     int64 `json:"inventory"`
	Sales         int64 `json:"sales"`
	Customers     int64 `json:"customers"`
	Notifications int64 `json:"notifications"`
	Reports       int64 `json:"reports"`
}

// StatsRepository expone los conteos globales del almacenamiento.
type StatsRepository interface {
	Counts(ctx context.Context) (Counts, error)
}
