package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, business_id, name, email, phone, address, is_vip, total_spent, visit_count,
	created_at, updated_at`

func scanCustomer(s scanner) (*entity.Customer, error) {
	var c entity.Customer
	err := s.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.IsVIP,
		&c.TotalSpent, &c.VisitCount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un cliente y asigna su ID.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (business_id, name, email, phone, address, is_vip, total_spent, visit_count,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.BusinessID, c.Name, c.Email, c.Phone, c.Address, c.IsVIP, c.TotalSpent, c.VisitCount,
		c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por (businessID, id).
func (r *CustomerRepo) GetByID(ctx context.Context, businessID, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND business_id = $2`
	return r.findOne(ctx, query, id, businessID)
}

// GetForUpdate obtiene el cliente y bloquea la fila (SELECT FOR UPDATE).
func (r *CustomerRepo) GetForUpdate(ctx context.Context, businessID, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND business_id = $2 FOR UPDATE`
	return r.findOne(ctx, query, id, businessID)
}

func (r *CustomerRepo) findOne(ctx context.Context, query string, args ...any) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListByBusiness lista los clientes del negocio ordenados por nombre.
func (r *CustomerRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE business_id = $1 ORDER BY lower(name), id`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return collectRows(rows, scanCustomer)
}

// Update actualiza el cliente si coincide (id, businessID).
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, email = $4, phone = $5, address = $6, is_vip = $7,
			total_spent = $8, visit_count = $9, updated_at = $10
		WHERE id = $1 AND business_id = $2`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.BusinessID, c.Name, c.Email, c.Phone, c.Address, c.IsVIP, c.TotalSpent, c.VisitCount, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Delete elimina el cliente (businessID, id). Las ventas quedan con customer_id NULL.
func (r *CustomerRepo) Delete(ctx context.Context, businessID, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
