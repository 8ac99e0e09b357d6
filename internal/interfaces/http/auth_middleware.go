package http

import (
	"context"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

// Locals keys para la identidad resuelta en Fiber.
const (
	LocalUserID     = "user_id"
	LocalBusinessID = "business_id"
	LocalRole       = "role"
)

// authenticator es el contrato mínimo que necesita el middleware para resolver el token.
// Lo implementa *auth.AuthUseCase.
type authenticator interface {
	Authenticate(ctx context.Context, token string) (entity.Principal, error)
}

// AuthMiddleware valida el Bearer Token y carga user_id, business_id y role en c.Locals.
// El rol y el estado de la cuenta se resuelven en cada petición, no desde el token.
//
//   - 401 MISSING_TOKEN    → sin header Authorization o sin token Bearer.
//   - 403 INVALID_TOKEN    → firma inválida, expirado o usuario inexistente.
//   - 403 ACCOUNT_INACTIVE → usuario desactivado.
func AuthMiddleware(auth authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return respondError(c, domain.ErrMissingToken)
		}
		p, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalUserID, p.UserID)
		c.Locals(LocalBusinessID, p.BusinessID)
		c.Locals(LocalRole, p.Role)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que permite el paso solo a los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return respondError(c, domain.ErrMissingToken)
		}
		if !slices.Contains(roles, role) {
			return respondError(c, domain.ErrForbidden)
		}
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetUserID devuelve el id del usuario autenticado (0 si no hay).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetBusinessID devuelve el negocio del usuario autenticado (0 si no hay).
func GetBusinessID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalBusinessID).(int64)
	return id
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}
