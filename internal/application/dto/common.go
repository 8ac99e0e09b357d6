package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// importes como números JSON (9.99), no como strings
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP. Required solo aparece en errores de campos faltantes;
// Message solo en errores internos.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Code     string   `json:"code,omitempty"`
	Message  string   `json:"message,omitempty"`
	Required []string `json:"required,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// FlexInt entero que acepta un número JSON o un string numérico ("10").
// Un string vacío equivale a 0.
type FlexInt int64

// UnmarshalJSON implementa json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("número entero inválido: %q", s)
		}
		v = int64(f)
	}
	*n = FlexInt(v)
	return nil
}

// Int64 devuelve el valor como int64.
func (n FlexInt) Int64() int64 { return int64(n) }

// FlexDecimal decimal que acepta número JSON o string ("9.99"). Un string vacío equivale a 0.
type FlexDecimal decimal.Decimal

// UnmarshalJSON implementa json.Unmarshaler.
func (d *FlexDecimal) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		*d = FlexDecimal(decimal.Zero)
		return nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("número decimal inválido: %q", s)
	}
	*d = FlexDecimal(v)
	return nil
}

// MarshalJSON serializa igual que decimal.Decimal.
func (d FlexDecimal) MarshalJSON() ([]byte, error) {
	return decimal.Decimal(d).MarshalJSON()
}

// Decimal devuelve el valor como decimal.Decimal.
func (d FlexDecimal) Decimal() decimal.Decimal { return decimal.Decimal(d) }
