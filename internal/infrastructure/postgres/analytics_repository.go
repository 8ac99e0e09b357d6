package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

var (
	_ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)
	_ repository.StatsRepository     = (*AnalyticsRepo)(nil)
)

// AnalyticsRepo consultas de solo lectura para analítica, dashboard y health.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// nullableTime convierte el tiempo cero en NULL para los filtros opcionales.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// GetSalesMetrics suma las ventas del negocio en [from, to). Extremos cero no filtran.
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, businessID int64, from, to time.Time) (repository.SalesMetrics, error) {
	const query = `
	SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(tax), 0)
	FROM sales
	WHERE business_id = $1
	  AND ($2::timestamptz IS NULL OR created_at >= $2)
	  AND ($3::timestamptz IS NULL OR created_at <  $3)`
	m := repository.SalesMetrics{Revenue: decimal.Zero, Tax: decimal.Zero}
	err := r.pool.QueryRow(ctx, query, businessID, nullableTime(from), nullableTime(to)).Scan(&m.Count, &m.Revenue, &m.Tax)
	if err != nil {
		return m, fmt.Errorf("sales metrics: %w", err)
	}
	return m, nil
}

// GetInventoryMetrics agrega el inventario actual del negocio.
func (r *AnalyticsRepo) GetInventoryMetrics(ctx context.Context, businessID int64) (repository.InventoryMetrics, error) {
	const query = `
	SELECT COUNT(*),
	       COUNT(*) FILTER (WHERE quantity <= reorder_point),
	       COALESCE(SUM(quantity), 0)::bigint,
	       COALESCE(SUM(quantity * cost), 0)
	FROM inventory_items
	WHERE business_id = $1`
	m := repository.InventoryMetrics{StockValue: decimal.Zero}
	err := r.pool.QueryRow(ctx, query, businessID).Scan(&m.Products, &m.LowStock, &m.Units, &m.StockValue)
	if err != nil {
		return m, fmt.Errorf("inventory metrics: %w", err)
	}
	return m, nil
}

// GetCustomerMetrics agrega los clientes del negocio.
func (r *AnalyticsRepo) GetCustomerMetrics(ctx context.Context, businessID int64) (repository.CustomerMetrics, error) {
	const query = `
	SELECT COUNT(*), COUNT(*) FILTER (WHERE is_vip), COALESCE(SUM(total_spent), 0)
	FROM customers
	WHERE business_id = $1`
	m := repository.CustomerMetrics{TotalSpent: decimal.Zero}
	err := r.pool.QueryRow(ctx, query, businessID).Scan(&m.Total, &m.VIP, &m.TotalSpent)
	if err != nil {
		return m, fmt.Errorf("customer metrics: %w", err)
	}
	return m, nil
}

// RecentSales devuelve las últimas limit ventas del negocio.
func (r *AnalyticsRepo) RecentSales(ctx context.Context, businessID int64, limit int) ([]*entity.Sale, error) {
	return listSales(ctx, r.pool, businessID, limit)
}

// TopProducts devuelve los limit artículos con más unidades vendidas.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, businessID int64, limit int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE business_id = $1
		ORDER BY sold_count DESC, id LIMIT $2`
	rows, err := r.pool.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	return collectRows(rows, scanInventoryItem)
}

// Counts devuelve el número de filas por tabla (health check).
func (r *AnalyticsRepo) Counts(ctx context.Context) (repository.Counts, error) {
	const query = `
	SELECT (SELECT COUNT(*) FROM businesses),
	       (SELECT COUNT(*) FROM users),
	       (SELECT COUNT(*) FROM inventory_items),
	       (SELECT COUNT(*) FROM sales),
	       (SELECT COUNT(*) FROM customers),
	       (SELECT COUNT(*) FROM notifications),
	       (SELECT COUNT(*) FROM reports)`
	var c repository.Counts
	err := r.pool.QueryRow(ctx, query).Scan(&c.Businesses, &c.Users, &c.Inventory, &c.Sales,
		&c.Customers, &c.Notifications, &c.Reports)
	if err != nil {
		return c, fmt.Errorf("counts: %w", err)
	}
	return c, nil
}
