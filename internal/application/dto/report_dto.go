package dto

import (
	"encoding/json"
	"time"
)

// DateRangeDTO rango de fechas YYYY-MM-DD (ambos extremos opcionales).
type DateRangeDTO struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// CreateReportRequest solicitud de reporte.
type CreateReportRequest struct {
	Name      string       `json:"name"`
	Type      string       `json:"type"`
	DateRange DateRangeDTO `json:"dateRange"`
	Format    string       `json:"format"`
}

// ReportResponse salida de un reporte con su resumen calculado.
type ReportResponse struct {
	ID         int64           `json:"id"`
	BusinessID int64           `json:"businessId"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	DateRange  DateRangeDTO    `json:"dateRange"`
	Format     string          `json:"format"`
	Status     string          `json:"status"`
	Data       json.RawMessage `json:"data,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
