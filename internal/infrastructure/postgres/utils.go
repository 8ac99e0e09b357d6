package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// Constraints de unicidad (migrations/001_init.up.sql).
const (
	uqBusinessSubdomain = "uq_businesses_subdomain"
	uqUserEmail         = "uq_users_email"
	uqInventorySKU      = "uq_inventory_business_sku"
)

// constraintName devuelve el constraint violado, si el error viene de PostgreSQL.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// uniqueConflict devuelve target si err es una violación de unicidad de constraint.
// Cualquier otro error (incluida la violación de otro constraint) devuelve nil.
func uniqueConflict(err error, constraint string, target error) error {
	if isUniqueViolation(err) && constraintName(err) == constraint {
		return target
	}
	return nil
}

// noRows convierte pgx.ErrNoRows en (nil, nil) siguiendo la convención de los puertos.
func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// collectRows recorre rows aplicando scan y cierra el cursor.
func collectRows[T any](rows pgx.Rows, scan func(scanner) (*T, error)) ([]*T, error) {
	defer rows.Close()
	out := make([]*T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
