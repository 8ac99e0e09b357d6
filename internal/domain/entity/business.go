package entity

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de un negocio recién registrado.
const (
	DefaultTimezone = "America/New_York"
	DefaultCurrency = "USD"
)

// SubdomainPattern valida el slug del tenant: minúsculas, dígitos y guiones.
var SubdomainPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Business representa un tenant (unidad de aislamiento de datos).
// Subdomain e ID son inmutables después de la creación.
type Business struct {
	ID          int64
	Name        string
	Subdomain   string
	Description string
	Email       string
	Phone       string
	Address     string
	Timezone    string
	Currency    string
	TaxRate     decimal.Decimal // porcentaje, 0 por defecto
	IsActive    bool
	Settings    map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
