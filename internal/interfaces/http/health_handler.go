package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// APIVersion versión publicada en GET /api.
const APIVersion = "1.0.0"

// HealthResponse salida de GET /api/health.
type HealthResponse struct {
	Status    string             `json:"status"`
	Message   string             `json:"message"`
	Timestamp time.Time          `json:"timestamp"`
	Storage   string             `json:"storage"`
	Counts    *repository.Counts `json:"counts,omitempty"`
}

// HealthHandler endpoints de plataforma sin autenticación.
type HealthHandler struct {
	stats   repository.StatsRepository
	storage string
}

// NewHealthHandler construye el handler. storage es el nombre del driver activo.
func NewHealthHandler(stats repository.StatsRepository, storage string) *HealthHandler {
	return &HealthHandler{stats: stats, storage: storage}
}

// Health godoc
// @Summary      Estado del servicio y conteo de registros
// @Tags         platform
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	out := HealthResponse{
		Status:    "OK",
		Message:   "SmartOps API is running",
		Timestamp: time.Now().UTC(),
		Storage:   h.storage,
	}
	if h.stats != nil {
		counts, err := h.stats.Counts(c.UserContext())
		if err != nil {
			out.Status = "ERROR"
			out.Message = "Storage unavailable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(out)
		}
		out.Counts = &counts
	}
	return c.JSON(out)
}

// Info godoc
// @Summary      Información de la API y grupos de endpoints
// @Tags         platform
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api [get]
func (h *HealthHandler) Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "OK",
		"message": "SmartOps Backend API is running",
		"version": APIVersion,
		"endpoints": fiber.Map{
			"health":        "/api/health",
			"auth":          "/api/auth",
			"users":         "/api/users",
			"business":      "/api/business",
			"settings":      "/api/settings",
			"inventory":     "/api/inventory",
			"sales":         "/api/sales",
			"customers":     "/api/customers",
			"notifications": "/api/notifications",
			"reports":       "/api/reports",
			"analytics":     "/api/analytics",
			"dashboard":     "/api/dashboard/stats",
			"docs":          "/docs",
			"metrics":       "/metrics",
		},
		"timestamp": time.Now().UTC(),
	})
}
