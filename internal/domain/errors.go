package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrMissingToken       = errors.New("token requerido")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrInactiveAccount    = errors.New("cuenta inactiva")
	ErrWrongPassword      = errors.New("la contraseña actual no coincide")
	ErrSelfDeletion       = errors.New("un usuario no puede eliminar su propia cuenta")
)

// Conflictos de unicidad. Envuelven ErrDuplicate.
var (
	ErrSubdomainTaken = fmt.Errorf("%w: subdominio", ErrDuplicate)
	ErrEmailTaken     = fmt.Errorf("%w: email", ErrDuplicate)
	ErrEmailInUse     = fmt.Errorf("%w: email en uso por otro usuario", ErrDuplicate)
	ErrSKUTaken       = fmt.Errorf("%w: sku", ErrDuplicate)
)

// Recursos no encontrados. Envuelven ErrNotFound para que errors.Is funcione con ambos.
var (
	ErrBusinessNotFound     = fmt.Errorf("%w: negocio", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("%w: usuario", ErrNotFound)
	ErrItemNotFound         = fmt.Errorf("%w: artículo de inventario", ErrNotFound)
	ErrSaleNotFound         = fmt.Errorf("%w: venta", ErrNotFound)
	ErrCustomerNotFound     = fmt.Errorf("%w: cliente", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("%w: notificación", ErrNotFound)
	ErrReportNotFound       = fmt.Errorf("%w: reporte", ErrNotFound)
)

// ValidationError describe una entrada mal formada. Required lista los campos
// obligatorios cuando el fallo se debe a campos ausentes.
type ValidationError struct {
	Message  string
	Required []string
}

func (e *ValidationError) Error() string {
	if len(e.Required) > 0 {
		return e.Message + ": " + strings.Join(e.Required, ", ")
	}
	return e.Message
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError simple.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// MissingFields construye el error de campos requeridos ausentes.
func MissingFields(msg string, required ...string) error {
	return &ValidationError{Message: msg, Required: required}
}
