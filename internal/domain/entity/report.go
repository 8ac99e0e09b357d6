package entity

import (
	"encoding/json"
	"time"
)

// Tipos de reporte soportados.
const (
	ReportTypeSales     = "sales"
	ReportTypeInventory = "inventory"
	ReportTypeCustomers = "customers"
)

// Estado de un reporte. La exportación a archivo no existe: Format solo se guarda.
const (
	ReportStatusReady = "ready"
)

// DateRange rango opcional de fechas del reporte (formato YYYY-MM-DD).
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Report es un resumen calculado sobre los registros del negocio.
type Report struct {
	ID         int64
	BusinessID int64
	Name       string
	Type       string
	DateRange  DateRange
	Format     string
	Status     string
	Data       json.RawMessage
	CreatedAt  time.Time
}
