package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SmartOps-api/internal/domain"
)

func uniqueErr(constraint string) error {
	return fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

func TestUniqueConflict_TraduceSoloSuConstraint(t *testing.T) {
	assert.ErrorIs(t, uniqueConflict(uniqueErr(uqInventorySKU), uqInventorySKU, domain.ErrSKUTaken), domain.ErrSKUTaken)
	assert.ErrorIs(t, uniqueConflict(uniqueErr(uqUserEmail), uqUserEmail, domain.ErrEmailInUse), domain.ErrEmailInUse)

	assert.Nil(t, uniqueConflict(uniqueErr("inventory_items_pkey"), uqInventorySKU, domain.ErrSKUTaken),
		"otro constraint no es un SKU duplicado")
	assert.Nil(t, uniqueConflict(&pgconn.PgError{Code: "23503", ConstraintName: uqUserEmail}, uqUserEmail, domain.ErrEmailTaken),
		"una FK no es una violación de unicidad")
	assert.Nil(t, uniqueConflict(errors.New("conexión cerrada"), uqBusinessSubdomain, domain.ErrSubdomainTaken))
}

func TestUniqueConflict_ConstraintsDefinidosEnMigracion(t *testing.T) {
	sql, err := migrationsFS.ReadFile("migrations/001_init.up.sql")
	require.NoError(t, err)

	for _, name := range []string{uqBusinessSubdomain, uqUserEmail, uqInventorySKU} {
		assert.Contains(t, string(sql), name)
	}
}
