// Package storage elige el backend de persistencia según la configuración.
package storage

import (
	"context"

	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/memory"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/postgres"
	"github.com/jhoicas/SmartOps-api/pkg/config"
	"github.com/jhoicas/SmartOps-api/pkg/logger"
)

// Backend puertos de persistencia del driver elegido.
type Backend struct {
	Driver    string
	Repos     repository.Repos
	Tx        repository.TxRunner
	Analytics repository.AnalyticsRepository
	Stats     repository.StatsRepository
	close     func()
}

// Close libera el pool de conexiones o el estado en memoria.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open construye el backend. Con postgres y DB_AUTO_MIGRATE aplica antes las migraciones pendientes.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Backend, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Storage.Driver == config.StorageMemory {
		return Memory(), nil
	}

	if cfg.DB.AutoMigrate {
		if err := Migrate(ctx, cfg.DB, log); err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	return &Backend{
		Driver:    config.StoragePostgres,
		Repos:     postgres.NewRepos(pool),
		Tx:        postgres.NewTxRunner(pool),
		Analytics: analyticsRepo,
		Stats:     analyticsRepo,
		close:     pool.Close,
	}, nil
}

// Memory backend en memoria (desarrollo y tests). Los datos se pierden al cerrar.
func Memory() *Backend {
	s := memory.New()
	analyticsRepo := memory.NewAnalyticsRepo(s)
	return &Backend{
		Driver:    config.StorageMemory,
		Repos:     s.Repos(),
		Tx:        memory.NewTxRunner(s),
		Analytics: analyticsRepo,
		Stats:     analyticsRepo,
		close:     func() { _ = s.Close() },
	}
}

// Migrate aplica las migraciones embebidas pendientes.
func Migrate(ctx context.Context, cfg config.DBConfig, log *logger.Logger) error {
	db, err := postgres.OpenDB(cfg.ConnectionString())
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := postgres.NewMigrator(db).Up(ctx)
	if err != nil {
		return err
	}
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("migración aplicada")
	}
	return nil
}
