package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/SmartOps-api/docs"
	"github.com/jhoicas/SmartOps-api/internal/application/analytics"
	"github.com/jhoicas/SmartOps-api/internal/application/auth"
	"github.com/jhoicas/SmartOps-api/internal/application/ports"
	"github.com/jhoicas/SmartOps-api/internal/application/sales"
	"github.com/jhoicas/SmartOps-api/internal/application/usecase"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/cache"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/SmartOps-api/internal/interfaces/http"
	"github.com/jhoicas/SmartOps-api/pkg/config"
	"github.com/jhoicas/SmartOps-api/pkg/logger"
	"github.com/jhoicas/SmartOps-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, log.Named("storage"))
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("inicializar almacenamiento")
	}
	defer store.Close()

	var principalCache ports.PrincipalCache = cache.Nop{}
	if cfg.Redis.Enabled() {
		rc, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			// sin caché cada petición autenticada consulta el repositorio
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché de identidades desactivada")
		} else {
			defer rc.Close()
			principalCache = rc
		}
	}

	hasher := password.New()

	authUC := auth.NewAuthUseCase(store.Repos.Users, store.Repos.Businesses, store.Tx, hasher, principalCache,
		auth.JWTConfig{
			Secret: cfg.JWT.Secret,
			TTL:    cfg.JWT.TTL(),
			Issuer: cfg.JWT.Issuer,
		}, log.Named("auth"))

	deps := httpRouter.RouterDeps{
		AuthUC:         authUC,
		BusinessUC:     usecase.NewBusinessUseCase(store.Repos.Businesses),
		UserUC:         usecase.NewUserUseCase(store.Repos.Users, hasher, principalCache, log.Named("users")),
		InventoryUC:    usecase.NewInventoryUseCase(store.Repos.Inventory),
		SaleUC:         sales.NewSaleUseCase(store.Tx, store.Repos.Sales),
		CustomerUC:     usecase.NewCustomerUseCase(store.Repos.Customers),
		NotificationUC: usecase.NewNotificationUseCase(store.Repos.Notifications),
		ReportUC:       analytics.NewReportUseCase(store.Repos.Reports, store.Analytics),
		DashboardUC:    analytics.NewDashboardUseCase(store.Analytics, store.Repos.Businesses),
		Stats:          store.Stats,
		StorageDriver:  cfg.Storage.Driver,
		RateLimit:      cfg.RateLimit,
	}

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:      cfg.App.Name,
		CORSOrigins:  cfg.CORS.Origins,
		ExposeErrors: cfg.App.IsDevelopment(),
		OpenAPI:      []byte(docs.SwaggerInfo.ReadDoc()),
	}, log.Named("http"), deps)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
