// seed carga negocios de demostración desde un archivo YAML.
//
// Uso: go run ./cmd/seed [--file seeds/demo.yaml]
// Usa la misma configuración que la API (STORAGE_DRIVER, DATABASE_URL, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/jhoicas/SmartOps-api/internal/application/auth"
	"github.com/jhoicas/SmartOps-api/internal/application/usecase"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/storage"
	"github.com/jhoicas/SmartOps-api/internal/seed"
	"github.com/jhoicas/SmartOps-api/pkg/config"
	"github.com/jhoicas/SmartOps-api/pkg/logger"
	"github.com/jhoicas/SmartOps-api/pkg/password"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	file := flags.StringP("file", "f", "seeds/demo.yaml", "archivo YAML con los negocios")
	timeout := flags.Duration("timeout", 2*time.Minute, "tiempo máximo de ejecución")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	fixture, err := seed.LoadFile(*file)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, err := storage.Open(ctx, cfg, log.Named("storage"))
	if err != nil {
		return err
	}
	defer store.Close()

	hasher := password.New()
	s := &seed.Seeder{
		Auth: auth.NewAuthUseCase(store.Repos.Users, store.Repos.Businesses, store.Tx, hasher, nil,
			auth.JWTConfig{Secret: cfg.JWT.Secret, TTL: cfg.JWT.TTL(), Issuer: cfg.JWT.Issuer}, log),
		Businesses:    usecase.NewBusinessUseCase(store.Repos.Businesses),
		Users:         usecase.NewUserUseCase(store.Repos.Users, hasher, nil, log.Named("users")),
		Inventory:     usecase.NewInventoryUseCase(store.Repos.Inventory),
		Customers:     usecase.NewCustomerUseCase(store.Repos.Customers),
		Notifications: usecase.NewNotificationUseCase(store.Repos.Notifications),
		Log:           log.Named("seed"),
	}
	sum, err := s.Apply(ctx, fixture)
	if err != nil {
		return err
	}
	log.Info().
		Int("businesses", sum.Businesses).
		Int("skipped", sum.Skipped).
		Int("users", sum.Users).
		Int("items", sum.Items).
		Int("customers", sum.Customers).
		Int("notifications", sum.Notifications).
		Msg("seed completado")
	return nil
}
