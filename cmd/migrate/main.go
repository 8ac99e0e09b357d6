// migrate aplica o revierte las migraciones SQL embebidas en el binario.
//
// Uso: go run ./cmd/migrate [--dsn postgres://...] up|down|status
// Sin --dsn se usa DATABASE_URL o las variables DB_* de la configuración.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jhoicas/SmartOps-api/internal/infrastructure/postgres"
	"github.com/jhoicas/SmartOps-api/pkg/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	dsn := flags.String("dsn", "", "DSN de PostgreSQL (por defecto DATABASE_URL o DB_*)")
	timeout := flags.Duration("timeout", 30*time.Second, "tiempo máximo de ejecución")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("uso: migrate [--dsn DSN] up|down|status")
	}

	if *dsn == "" {
		v := viper.New()
		v.AutomaticEnv()
		*dsn = config.FromViper(v).DB.ConnectionString()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := postgres.OpenDB(*dsn)
	if err != nil {
		return fmt.Errorf("abrir db: %w", err)
	}
	defer db.Close()

	m := postgres.NewMigrator(db)
	switch cmd := flags.Arg(0); cmd {
	case "up":
		applied, err := m.Up(ctx)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Println("sin migraciones pendientes")
		}
		for _, name := range applied {
			fmt.Println("aplicada:", name)
		}
	case "down":
		name, err := m.Down(ctx)
		if err != nil {
			return err
		}
		fmt.Println("revertida:", name)
	case "status":
		status, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range status {
			mark := "pendiente"
			if s.Applied {
				mark = "aplicada"
			}
			fmt.Printf("%-40s %s\n", s.Name, mark)
		}
	default:
		return fmt.Errorf("comando desconocido %q", cmd)
	}
	return nil
}
