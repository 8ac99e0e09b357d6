package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL. Las líneas se guardan en JSONB.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, business_id, customer_id, COALESCE(user_id, 0), items, payment_method,
	total, tax, discount, created_at`

func scanSale(s scanner) (*entity.Sale, error) {
	var (
		sale  entity.Sale
		items []byte
	)
	err := s.Scan(&sale.ID, &sale.BusinessID, &sale.CustomerID, &sale.UserID, &items, &sale.PaymentMethod,
		&sale.Total, &sale.Tax, &sale.Discount, &sale.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &sale.Items); err != nil {
			return nil, fmt.Errorf("decode sale items: %w", err)
		}
	}
	if sale.Items == nil {
		sale.Items = []entity.SaleItem{}
	}
	return &sale, nil
}

// Create persiste la venta y asigna su ID.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("encode sale items: %w", err)
	}
	query := `
		INSERT INTO sales (business_id, customer_id, user_id, items, payment_method, total, tax, discount, created_at)
		VALUES ($1, $2, NULLIF($3::bigint, 0), $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err = r.q.QueryRow(ctx, query,
		s.BusinessID, s.CustomerID, s.UserID, string(items), s.PaymentMethod, s.Total, s.Tax, s.Discount, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por (businessID, id).
func (r *SaleRepo) GetByID(ctx context.Context, businessID, id int64) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 AND business_id = $2`
	s, err := scanSale(r.q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// ListByBusiness lista las ventas del negocio, más recientes primero.
func (r *SaleRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Sale, error) {
	return listSales(ctx, r.q, businessID, 0)
}

// listSales comparte la consulta con AnalyticsRepo.RecentSales. limit <= 0 no limita.
func listSales(ctx context.Context, q Querier, businessID int64, limit int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE business_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{businessID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return collectRows(rows, scanSale)
}
