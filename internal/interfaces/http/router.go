package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SmartOps-api/internal/application/analytics"
	"github.com/jhoicas/SmartOps-api/internal/application/auth"
	"github.com/jhoicas/SmartOps-api/internal/application/sales"
	"github.com/jhoicas/SmartOps-api/internal/application/usecase"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
	"github.com/jhoicas/SmartOps-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	BusinessUC     *usecase.BusinessUseCase
	UserUC         *usecase.UserUseCase
	InventoryUC    *usecase.InventoryUseCase
	SaleUC         *sales.SaleUseCase
	CustomerUC     *usecase.CustomerUseCase
	NotificationUC *usecase.NotificationUseCase
	ReportUC       *analytics.ReportUseCase
	DashboardUC    *analytics.DashboardUseCase
	Stats          repository.StatsRepository
	StorageDriver  string
	RateLimit      config.RateLimitConfig
}

// Router registra las rutas de la API. La autenticación se aplica por grupo de
// recurso para que una ruta desconocida responda 404 y no 401.
func Router(app *fiber.App, deps RouterDeps) {
	requireAuth := AuthMiddleware(deps.AuthUC)
	ownerOrManager := RequireRole(entity.RoleOwner, entity.RoleManager)
	ownerOnly := RequireRole(entity.RoleOwner)

	api := app.Group("/api")

	// Plataforma (público)
	healthHandler := NewHealthHandler(deps.Stats, deps.StorageDriver)
	api.Get("/", healthHandler.Info)
	api.Get("/health", healthHandler.Health)

	// Auth: registro y login públicos con límite por IP
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	limiter := RateLimit(deps.RateLimit.RPS, deps.RateLimit.Burst)
	authGroup.Post("/register", limiter, authHandler.Register)
	authGroup.Post("/login", limiter, authHandler.Login)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)
	authGroup.Get("/profile", requireAuth, authHandler.Profile)
	authGroup.Put("/profile", requireAuth, authHandler.UpdateProfile)
	authGroup.Put("/change-password", requireAuth, authHandler.ChangePassword)

	// Negocio y settings
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	business := api.Group("/business", requireAuth)
	business.Get("/", businessHandler.Get)
	business.Put("/", ownerOnly, businessHandler.Update)
	settings := api.Group("/settings", requireAuth)
	settings.Get("/", businessHandler.GetSettings)
	settings.Put("/", ownerOnly, businessHandler.UpdateSettings)

	// Usuarios
	users := api.Group("/users", requireAuth)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", ownerOrManager, userHandler.List)
	users.Post("/", ownerOnly, userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", ownerOnly, userHandler.Update)
	users.Delete("/:id", ownerOnly, userHandler.Delete)

	// Inventario
	inventory := api.Group("/inventory", requireAuth)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Post("/", ownerOrManager, inventoryHandler.Create)
	inventory.Put("/:id", ownerOrManager, inventoryHandler.Update)
	inventory.Delete("/:id", ownerOrManager, inventoryHandler.Delete)

	// Ventas
	salesGroup := api.Group("/sales", requireAuth)
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/", saleHandler.Create)

	// Clientes
	customers := api.Group("/customers", requireAuth)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", ownerOrManager, customerHandler.Delete)

	// Notificaciones
	notifications := api.Group("/notifications", requireAuth)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/", ownerOrManager, notificationHandler.Create)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", ownerOrManager, notificationHandler.Delete)

	// Reportes y analítica (owner o manager)
	reports := api.Group("/reports", requireAuth, ownerOrManager)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Post("/", reportHandler.Create)

	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC)
	api.Get("/analytics", requireAuth, ownerOrManager, analyticsHandler.Overview)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/stats", requireAuth, dashboardHandler.Stats)
}

// NotFound responde 404 para cualquier ruta no registrada. Debe montarse al final.
func NotFound(c *fiber.Ctx) error {
	return fiber.ErrNotFound
}
