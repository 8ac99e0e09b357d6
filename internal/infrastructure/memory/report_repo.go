package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// ReportRepo implementa repository.ReportRepository en memoria.
type ReportRepo struct {
	store *Store
	tx    *state
}

// NewReportRepo construye el repositorio.
func NewReportRepo(store *Store) *ReportRepo {
	return &ReportRepo{store: store}
}

// Create asigna ID y guarda el reporte.
func (r *ReportRepo) Create(_ context.Context, rep *entity.Report) error {
	return r.store.update(r.tx, func(st *state) error {
		rep.ID = st.nextID("reports")
		st.reports[rep.ID] = copyReport(rep)
		return nil
	})
}

// GetByID devuelve el reporte (businessID, id) o nil.
func (r *ReportRepo) GetByID(_ context.Context, businessID, id int64) (*entity.Report, error) {
	var out *entity.Report
	r.store.view(r.tx, func(st *state) {
		if rep, ok := st.reports[id]; ok && rep.BusinessID == businessID {
			out = copyReport(rep)
		}
	})
	return out, nil
}

// ListByBusiness devuelve los reportes del negocio, más recientes primero.
func (r *ReportRepo) ListByBusiness(_ context.Context, businessID int64) ([]*entity.Report, error) {
	var out []*entity.Report
	r.store.view(r.tx, func(st *state) {
		out = collect(st.reports, func(rep *entity.Report) bool { return rep.BusinessID == businessID }, copyReport)
	})
	sortNewestFirst(out, func(rep *entity.Report) (int64, int64) { return rep.CreatedAt.UnixNano(), rep.ID })
	return out, nil
}

// sortNewestFirst ordena por fecha descendente y, a igual fecha, por ID descendente.
func sortNewestFirst[T any](rows []*T, key func(*T) (int64, int64)) {
	slices.SortFunc(rows, func(a, b *T) int {
		ta, ia := key(a)
		tb, ib := key(b)
		if c := cmp.Compare(tb, ta); c != 0 {
			return c
		}
		return cmp.Compare(ib, ia)
	})
}

var _ repository.ReportRepository = (*ReportRepo)(nil)
