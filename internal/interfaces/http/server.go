package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/SmartOps-api/pkg/logger"
)

// ServerConfig parámetros de la app HTTP.
type ServerConfig struct {
	AppName      string
	CORSOrigins  []string
	ExposeErrors bool
	// OpenAPI documento swagger 2.0. Vacío desactiva /docs y /api/docs/openapi.json.
	OpenAPI []byte
}

// NewApp construye la app Fiber con la cadena de middlewares, las rutas y el 404 final.
func NewApp(cfg ServerConfig, log *logger.Logger, deps RouterDeps) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: NewErrorHandler(log, cfg.ExposeErrors),
	})

	metrics := NewMetrics()
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	app.Use(metrics.Middleware())
	app.Use(recover.New())
	app.Use(CORS(cfg.CORSOrigins))

	if len(cfg.OpenAPI) > 0 {
		// Swagger UI: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: cfg.OpenAPI,
			Path:        "docs",
			Title:       "SmartOps API",
		}))
		app.Get("/api/docs/openapi.json", func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(cfg.OpenAPI)
		})
	}
	app.Get("/metrics", metrics.Handler())

	Router(app, deps)
	app.Use(NotFound)
	return app
}
