package postgres

import (
	"context"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SmartOps-api/pkg/config"
)

func testMigrations() fstest.MapFS {
	return fstest.MapFS{
		"001_init.up.sql":    {Data: []byte("CREATE TABLE a (id int);")},
		"001_init.down.sql":  {Data: []byte("DROP TABLE a;")},
		"002_extra.up.sql":   {Data: []byte("CREATE TABLE b (id int);")},
		"002_extra.down.sql": {Data: []byte("DROP TABLE b;")},
		"README.md":          {Data: []byte("ignorado")},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Up
// ─────────────────────────────────────────────────────────────────────────────

func TestMigrator_UpAplicaPendientesEnOrden(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("create table if not exists schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("select name from schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("001_init.up.sql"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id int);")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("insert into schema_migrations").
		WithArgs("002_extra.up.sql", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	m := NewMigratorFS(db, testMigrations())
	applied, err := m.Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"002_extra.up.sql"}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_UpFalloHaceRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("create table if not exists schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("select name from schema_migrations").WillReturnRows(sqlmock.NewRows([]string{"name"}))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id int);")).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	m := NewMigratorFS(db, testMigrations())
	applied, err := m.Up(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_init.up.sql")
	assert.Empty(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────────────────────────────────────
// Down / Status
// ─────────────────────────────────────────────────────────────────────────────

func TestMigrator_DownRevierteUltima(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("create table if not exists schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("select name from schema_migrations order by name desc limit 1").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("002_extra.up.sql"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DROP TABLE b;")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("delete from schema_migrations where name").
		WithArgs("002_extra.up.sql").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	m := NewMigratorFS(db, testMigrations())
	name, err := m.Down(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "002_extra.up.sql", name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_DownSinMigraciones(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("create table if not exists schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("select name from schema_migrations").WillReturnRows(sqlmock.NewRows([]string{"name"}))

	m := NewMigratorFS(db, testMigrations())
	_, err = m.Down(context.Background())
	assert.ErrorIs(t, err, ErrNoMigrations)
}

func TestMigrator_Status(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("create table if not exists schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("select name from schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("001_init.up.sql"))

	m := NewMigratorFS(db, testMigrations())
	st, err := m.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []MigrationStatus{
		{Name: "001_init.up.sql", Applied: true},
		{Name: "002_extra.up.sql", Applied: false},
	}, st)
}

func TestMigrator_EmbebidasIncluyenInit(t *testing.T) {
	m := NewMigrator(nil)
	files, err := m.upFiles()
	require.NoError(t, err)
	assert.Contains(t, files, "001_init.up.sql")
}

// ─────────────────────────────────────────────────────────────────────────────
// PoolConfig
// ─────────────────────────────────────────────────────────────────────────────

func TestPoolConfig_AplicaLimites(t *testing.T) {
	pc, err := PoolConfig(config.DBConfig{
		DatabaseURL: "postgres://u:p@localhost:5432/smartops?sslmode=disable",
		MaxConns:    10,
		MinConns:    3,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 10, pc.MaxConns)
	assert.EqualValues(t, 3, pc.MinConns)
	assert.NotNil(t, pc.AfterConnect)
	assert.Equal(t, "smartops", pc.ConnConfig.Database)
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := PoolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}
