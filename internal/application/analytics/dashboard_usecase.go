// Package analytics contiene los casos de uso de analítica, el dashboard y los
// reportes calculados sobre los registros del negocio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

const (
	dashboardRecentSales = 5 // ventas recientes en el widget del dashboard
	dashboardTopProducts = 5 // artículos más vendidos
)

// DashboardUseCase genera la analítica general y las estadísticas del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). El mes en curso se
// calcula en la zona horaria del negocio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	businesses    repository.BusinessRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. Sin businesses el mes se calcula en UTC.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, businesses repository.BusinessRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, businesses: businesses, now: time.Now}
}

type result[T any] struct {
	val T
	err error
}

// async ejecuta fn en una goroutine y entrega el resultado por un canal con buffer.
func async[T any](fn func() (T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		v, err := fn()
		ch <- result[T]{v, err}
	}()
	return ch
}

// Overview construye la respuesta de GET /api/analytics.
//
// Cuatro consultas en paralelo:
//  1. GetSalesMetrics(histórico)   → revenue.total, sales.total
//  2. GetSalesMetrics(mes en curso) → revenue.monthly, sales.monthly
//  3. GetInventoryMetrics          → products
//  4. GetCustomerMetrics           → customers
func (uc *DashboardUseCase) Overview(ctx context.Context, businessID int64) (*dto.AnalyticsResponse, error) {
	loc, err := uc.location(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("analytics: negocio: %w", err)
	}
	monthStart := startOfMonth(uc.now().In(loc))

	allCh := async(func() (repository.SalesMetrics, error) {
		return uc.analyticsRepo.GetSalesMetrics(ctx, businessID, time.Time{}, time.Time{})
	})
	monthCh := async(func() (repository.SalesMetrics, error) {
		return uc.analyticsRepo.GetSalesMetrics(ctx, businessID, monthStart, time.Time{})
	})
	invCh := async(func() (repository.InventoryMetrics, error) {
		return uc.analyticsRepo.GetInventoryMetrics(ctx, businessID)
	})
	custCh := async(func() (repository.CustomerMetrics, error) {
		return uc.analyticsRepo.GetCustomerMetrics(ctx, businessID)
	})

	all, month, inv, cust := <-allCh, <-monthCh, <-invCh, <-custCh
	if all.err != nil {
		return nil, fmt.Errorf("analytics: ventas: %w", all.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("analytics: ventas del mes: %w", month.err)
	}
	if inv.err != nil {
		return nil, fmt.Errorf("analytics: inventario: %w", inv.err)
	}
	if cust.err != nil {
		return nil, fmt.Errorf("analytics: clientes: %w", cust.err)
	}

	return &dto.AnalyticsResponse{
		Revenue:   dto.RevenueStats{Total: all.val.Revenue.Round(2), Monthly: month.val.Revenue.Round(2)},
		Sales:     dto.SalesStats{Total: all.val.Count, Monthly: month.val.Count},
		Products:  dto.ProductStats{Total: inv.val.Products, LowStock: inv.val.LowStock},
		Customers: dto.CustomerStats{Total: cust.val.Total, VIP: cust.val.VIP},
	}, nil
}

// Stats construye la respuesta de GET /api/dashboard/stats.
func (uc *DashboardUseCase) Stats(ctx context.Context, businessID int64) (*dto.DashboardStatsResponse, error) {
	salesCh := async(func() (repository.SalesMetrics, error) {
		return uc.analyticsRepo.GetSalesMetrics(ctx, businessID, time.Time{}, time.Time{})
	})
	invCh := async(func() (repository.InventoryMetrics, error) {
		return uc.analyticsRepo.GetInventoryMetrics(ctx, businessID)
	})
	custCh := async(func() (repository.CustomerMetrics, error) {
		return uc.analyticsRepo.GetCustomerMetrics(ctx, businessID)
	})
	recentCh := async(func() ([]dto.SaleResponse, error) {
		sales, err := uc.analyticsRepo.RecentSales(ctx, businessID, dashboardRecentSales)
		return dto.FromSales(sales), err
	})
	topCh := async(func() ([]dto.InventoryItemResponse, error) {
		items, err := uc.analyticsRepo.TopProducts(ctx, businessID, dashboardTopProducts)
		return dto.FromInventoryItems(items), err
	})

	sales, inv, cust, recent, top := <-salesCh, <-invCh, <-custCh, <-recentCh, <-topCh
	for _, err := range []error{sales.err, inv.err, cust.err, recent.err, top.err} {
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
	}

	return &dto.DashboardStatsResponse{
		TotalRevenue:   sales.val.Revenue.Round(2),
		TotalSales:     sales.val.Count,
		TotalProducts:  inv.val.Products,
		TotalCustomers: cust.val.Total,
		LowStockItems:  inv.val.LowStock,
		RecentSales:    recent.val,
		TopProducts:    top.val,
	}, nil
}

// location zona horaria del negocio; UTC si no tiene o no es válida.
func (uc *DashboardUseCase) location(ctx context.Context, businessID int64) (*time.Location, error) {
	if uc.businesses == nil {
		return time.UTC, nil
	}
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil || b.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC, nil
	}
	return loc, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
