package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

const businessColumns = `id, name, subdomain, description, email, phone, address, timezone, currency,
	tax_rate, is_active, settings, created_at, updated_at`

func scanBusiness(s scanner) (*entity.Business, error) {
	var b entity.Business
	err := s.Scan(&b.ID, &b.Name, &b.Subdomain, &b.Description, &b.Email, &b.Phone, &b.Address,
		&b.Timezone, &b.Currency, &b.TaxRate, &b.IsActive, &b.Settings, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if b.Settings == nil {
		b.Settings = map[string]any{}
	}
	return &b, nil
}

// Create persiste un negocio nuevo y asigna su ID.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (name, subdomain, description, email, phone, address, timezone, currency,
			tax_rate, is_active, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		b.Name, b.Subdomain, b.Description, b.Email, b.Phone, b.Address, b.Timezone, b.Currency,
		b.TaxRate, b.IsActive, settingsOrEmpty(b.Settings), b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		if conflict := uniqueConflict(err, uqBusinessSubdomain, domain.ErrSubdomainTaken); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *BusinessRepo) GetByID(ctx context.Context, id int64) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	b, err := scanBusiness(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business by id: %w", err)
	}
	return b, nil
}

// GetBySubdomain obtiene un negocio por subdominio.
func (r *BusinessRepo) GetBySubdomain(ctx context.Context, subdomain string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE subdomain = $1`
	b, err := scanBusiness(r.q.QueryRow(ctx, query, subdomain))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business by subdomain: %w", err)
	}
	return b, nil
}

// Update actualiza los campos editables. El subdominio no se toca.
func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, description = $3, email = $4, phone = $5, address = $6,
			timezone = $7, currency = $8, tax_rate = $9, is_active = $10, settings = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.Description, b.Email, b.Phone, b.Address,
		b.Timezone, b.Currency, b.TaxRate, b.IsActive, settingsOrEmpty(b.Settings), b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

func settingsOrEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
