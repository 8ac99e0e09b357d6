package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación de ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

const reportColumns = `id, business_id, name, type, date_from, date_to, format, status, data, created_at`

func scanReport(s scanner) (*entity.Report, error) {
	var (
		r    entity.Report
		data []byte
	)
	err := s.Scan(&r.ID, &r.BusinessID, &r.Name, &r.Type, &r.DateRange.From, &r.DateRange.To,
		&r.Format, &r.Status, &data, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.Data = data
	return &r, nil
}

// Create persiste el reporte y asigna su ID.
func (r *ReportRepo) Create(ctx context.Context, rep *entity.Report) error {
	query := `
		INSERT INTO reports (business_id, name, type, date_from, date_to, format, status, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var data any
	if len(rep.Data) > 0 {
		data = string(rep.Data)
	}
	err := r.q.QueryRow(ctx, query,
		rep.BusinessID, rep.Name, rep.Type, rep.DateRange.From, rep.DateRange.To, rep.Format, rep.Status, data, rep.CreatedAt,
	).Scan(&rep.ID)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID obtiene un reporte por (businessID, id).
func (r *ReportRepo) GetByID(ctx context.Context, businessID, id int64) (*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1 AND business_id = $2`
	rep, err := scanReport(r.q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return rep, nil
}

// ListByBusiness lista los reportes del negocio, más recientes primero.
func (r *ReportRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE business_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return collectRows(rows, scanReport)
}
