package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// AnalyticsRepo implementa repository.AnalyticsRepository y StatsRepository en memoria.
type AnalyticsRepo struct {
	store *Store
}

// NewAnalyticsRepo construye el repositorio.
func NewAnalyticsRepo(store *Store) *AnalyticsRepo {
	return &AnalyticsRepo{store: store}
}

// GetSalesMetrics suma las ventas del negocio en [from, to).
func (r *AnalyticsRepo) GetSalesMetrics(_ context.Context, businessID int64, from, to time.Time) (repository.SalesMetrics, error) {
	m := repository.SalesMetrics{Revenue: decimal.Zero, Tax: decimal.Zero}
	r.store.view(nil, func(st *state) {
		for _, s := range st.sales {
			if s.BusinessID != businessID {
				continue
			}
			if !from.IsZero() && s.CreatedAt.Before(from) {
				continue
			}
			if !to.IsZero() && !s.CreatedAt.Before(to) {
				continue
			}
			m.Count++
			m.Revenue = m.Revenue.Add(s.Total)
			m.Tax = m.Tax.Add(s.Tax)
		}
	})
	return m, nil
}

// GetInventoryMetrics agrega el inventario actual del negocio.
func (r *AnalyticsRepo) GetInventoryMetrics(_ context.Context, businessID int64) (repository.InventoryMetrics, error) {
	m := repository.InventoryMetrics{StockValue: decimal.Zero}
	r.store.view(nil, func(st *state) {
		for _, it := range st.inventory {
			if it.BusinessID != businessID {
				continue
			}
			m.Products++
			if it.LowStock() {
				m.LowStock++
			}
			m.Units += it.Quantity
			m.StockValue = m.StockValue.Add(it.Cost.Mul(decimal.NewFromInt(it.Quantity)))
		}
	})
	return m, nil
}

// GetCustomerMetrics agrega los clientes del negocio.
func (r *AnalyticsRepo) GetCustomerMetrics(_ context.Context, businessID int64) (repository.CustomerMetrics, error) {
	m := repository.CustomerMetrics{TotalSpent: decimal.Zero}
	r.store.view(nil, func(st *state) {
		for _, c := range st.customers {
			if c.BusinessID != businessID {
				continue
			}
			m.Total++
			if c.IsVIP {
				m.VIP++
			}
			m.TotalSpent = m.TotalSpent.Add(c.TotalSpent)
		}
	})
	return m, nil
}

// RecentSales devuelve las últimas limit ventas.
func (r *AnalyticsRepo) RecentSales(_ context.Context, businessID int64, limit int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	r.store.view(nil, func(st *state) {
		out = salesOf(st, businessID)
	})
	return head(out, limit), nil
}

// TopProducts devuelve los limit artículos con más unidades vendidas.
func (r *AnalyticsRepo) TopProducts(_ context.Context, businessID int64, limit int) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	r.store.view(nil, func(st *state) {
		out = collect(st.inventory, func(it *entity.InventoryItem) bool { return it.BusinessID == businessID }, copyItem)
	})
	slices.SortFunc(out, func(a, b *entity.InventoryItem) int {
		if c := cmp.Compare(b.SoldCount, a.SoldCount); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return head(out, limit), nil
}

// Counts implementa repository.StatsRepository.
func (r *AnalyticsRepo) Counts(_ context.Context) (repository.Counts, error) {
	var c repository.Counts
	r.store.view(nil, func(st *state) {
		c = repository.Counts{
			Businesses:    int64(len(st.businesses)),
			Users:         int64(len(st.users)),
			Inventory:     int64(len(st.inventory)),
			Sales:         int64(len(st.sales)),
			Customers:     int64(len(st.customers)),
			Notifications: int64(len(st.notifications)),
			Reports:       int64(len(st.reports)),
		}
	})
	return c, nil
}

func head[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

var (
	_ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)
	_ repository.StatsRepository     = (*AnalyticsRepo)(nil)
)
