package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

const (
	dateLayout    = "2006-01-02"
	defaultFormat = "json"
)

// ReportUseCase crea reportes con un resumen calculado en el momento y los consulta.
type ReportUseCase struct {
	reports       repository.ReportRepository
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository, analyticsRepo repository.AnalyticsRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports, analyticsRepo: analyticsRepo, now: time.Now}
}

// List devuelve los reportes del negocio, más recientes primero.
func (uc *ReportUseCase) List(ctx context.Context, businessID int64) ([]dto.ReportResponse, error) {
	list, err := uc.reports.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return dto.FromReports(list), nil
}

// Get devuelve un reporte por (businessID, id).
func (uc *ReportUseCase) Get(ctx context.Context, businessID, id int64) (*dto.ReportResponse, error) {
	r, err := uc.reports.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrReportNotFound
	}
	return dto.FromReport(r), nil
}

// Create calcula el resumen del tipo pedido y guarda el reporte en estado ready.
// El rango de fechas solo aplica a reportes de ventas; To es inclusivo.
func (uc *ReportUseCase) Create(ctx context.Context, businessID int64, in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	name := strings.TrimSpace(in.Name)
	typ := strings.ToLower(strings.TrimSpace(in.Type))
	if name == "" || typ == "" {
		return nil, domain.MissingFields("Missing required fields", "name", "type")
	}
	from, to, err := parseRange(in.DateRange)
	if err != nil {
		return nil, err
	}

	var data any
	switch typ {
	case entity.ReportTypeSales:
		m, err := uc.analyticsRepo.GetSalesMetrics(ctx, businessID, from, to)
		if err != nil {
			return nil, err
		}
		avg := decimal.Zero
		if m.Count > 0 {
			avg = m.Revenue.Div(decimal.NewFromInt(m.Count)).Round(2)
		}
		data = dto.SalesReportData{
			From:      in.DateRange.From,
			To:        in.DateRange.To,
			Count:     m.Count,
			Revenue:   m.Revenue.Round(2),
			Tax:       m.Tax.Round(2),
			AvgTicket: avg,
		}
	case entity.ReportTypeInventory:
		m, err := uc.analyticsRepo.GetInventoryMetrics(ctx, businessID)
		if err != nil {
			return nil, err
		}
		data = dto.InventoryReportData{Products: m.Products, LowStock: m.LowStock, Units: m.Units, StockValue: m.StockValue.Round(2)}
	case entity.ReportTypeCustomers:
		m, err := uc.analyticsRepo.GetCustomerMetrics(ctx, businessID)
		if err != nil {
			return nil, err
		}
		data = dto.CustomerReportData{Total: m.Total, VIP: m.VIP, TotalSpent: m.TotalSpent.Round(2)}
	default:
		return nil, domain.Invalid("Report type must be one of: sales, inventory, customers")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("report: serializar resumen: %w", err)
	}
	format := strings.ToLower(strings.TrimSpace(in.Format))
	if format == "" {
		format = defaultFormat
	}
	r := &entity.Report{
		BusinessID: businessID,
		Name:       name,
		Type:       typ,
		DateRange:  entity.DateRange{From: in.DateRange.From, To: in.DateRange.To},
		Format:     format,
		Status:     entity.ReportStatusReady,
		Data:       raw,
		CreatedAt:  uc.now().UTC(),
	}
	if err := uc.reports.Create(ctx, r); err != nil {
		return nil, err
	}
	return dto.FromReport(r), nil
}

// parseRange convierte YYYY-MM-DD a un intervalo [from, to+1d). Extremos vacíos no filtran.
func parseRange(r dto.DateRangeDTO) (from, to time.Time, err error) {
	if r.From != "" {
		if from, err = time.Parse(dateLayout, r.From); err != nil {
			return from, to, domain.Invalid("Invalid dateRange.from, expected YYYY-MM-DD")
		}
	}
	if r.To != "" {
		if to, err = time.Parse(dateLayout, r.To); err != nil {
			return from, to, domain.Invalid("Invalid dateRange.to, expected YYYY-MM-DD")
		}
		to = to.AddDate(0, 0, 1)
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return from, to, domain.Invalid("dateRange.from must not be after dateRange.to")
	}
	return from, to, nil
}
