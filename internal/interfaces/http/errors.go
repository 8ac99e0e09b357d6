package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/pkg/logger"
)

// Códigos de error del envelope.
const (
	CodeValidation        = "VALIDATION"
	CodeInvalidBody       = "INVALID_BODY"
	CodeInvalidID         = "INVALID_ID"
	CodeDuplicate         = "DUPLICATE"
	CodeSubdomainTaken    = "SUBDOMAIN_TAKEN"
	CodeEmailExists       = "EMAIL_EXISTS"
	CodeEmailInUse        = "EMAIL_IN_USE"
	CodeSKUExists         = "SKU_EXISTS"
	CodeInvalidCreds      = "INVALID_CREDENTIALS"
	CodeMissingToken      = "MISSING_TOKEN"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeAccountInactive   = "ACCOUNT_INACTIVE"
	CodeForbidden         = "FORBIDDEN"
	CodeWrongPassword     = "WRONG_PASSWORD"
	CodeSelfDeletion      = "SELF_DELETION"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeNotFound          = "NOT_FOUND"
	CodeRateLimited       = "RATE_LIMITED"
	CodeInternal          = "INTERNAL"
)

type errorMapping struct {
	target  error
	status  int
	message string
	code    string
}

// El orden importa: los errores específicos van antes que los genéricos que envuelven.
var errorMappings = []errorMapping{
	{domain.ErrSubdomainTaken, fiber.StatusBadRequest, "Subdomain already taken", CodeSubdomainTaken},
	{domain.ErrEmailTaken, fiber.StatusBadRequest, "User with this email already exists", CodeEmailExists},
	{domain.ErrEmailInUse, fiber.StatusBadRequest, "Email already in use", CodeEmailInUse},
	{domain.ErrSKUTaken, fiber.StatusBadRequest, "An item with this SKU already exists", CodeSKUExists},
	{domain.ErrDuplicate, fiber.StatusBadRequest, "Resource already exists", CodeDuplicate},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid credentials", CodeInvalidCreds},
	{domain.ErrMissingToken, fiber.StatusUnauthorized, "Access token required", CodeMissingToken},
	{domain.ErrInvalidToken, fiber.StatusForbidden, "Invalid token", CodeInvalidToken},
	{domain.ErrInactiveAccount, fiber.StatusForbidden, "Account is inactive", CodeAccountInactive},
	{domain.ErrForbidden, fiber.StatusForbidden, "Insufficient permissions", CodeForbidden},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "Unauthorized", CodeInvalidToken},
	{domain.ErrWrongPassword, fiber.StatusBadRequest, "Current password is incorrect", CodeWrongPassword},
	{domain.ErrSelfDeletion, fiber.StatusBadRequest, "Cannot delete your own account", CodeSelfDeletion},
	{domain.ErrInsufficientStock, fiber.StatusBadRequest, "Insufficient stock", CodeInsufficientStock},
	{domain.ErrBusinessNotFound, fiber.StatusNotFound, "Business not found", CodeNotFound},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "User not found", CodeNotFound},
	{domain.ErrItemNotFound, fiber.StatusNotFound, "Item not found", CodeNotFound},
	{domain.ErrSaleNotFound, fiber.StatusNotFound, "Sale not found", CodeNotFound},
	{domain.ErrCustomerNotFound, fiber.StatusNotFound, "Customer not found", CodeNotFound},
	{domain.ErrNotificationNotFound, fiber.StatusNotFound, "Notification not found", CodeNotFound},
	{domain.ErrReportNotFound, fiber.StatusNotFound, "Report not found", CodeNotFound},
	{domain.ErrNotFound, fiber.StatusNotFound, "Resource not found", CodeNotFound},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "Invalid input", CodeValidation},
}

// mapError traduce un error de dominio a status + envelope. ok=false si el error no es conocido.
func mapError(err error) (int, dto.ErrorResponse, bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: verr.Message, Code: CodeValidation, Required: verr.Required}, true
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, dto.ErrorResponse{Error: m.message, Code: m.code}, true
		}
	}
	return 0, dto.ErrorResponse{}, false
}

// respondError escribe el envelope de un error de dominio. Los errores desconocidos
// se devuelven a Fiber para que el ErrorHandler los registre y responda 500.
func respondError(c *fiber.Ctx, err error) error {
	if status, body, ok := mapError(err); ok {
		return c.Status(status).JSON(body)
	}
	return err
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body", Code: CodeInvalidBody})
}

// NewErrorHandler es el ErrorHandler de la app: errores de Fiber con su status,
// errores de dominio con su mapeo y el resto como 500 con el detalle oculto fuera de development.
func NewErrorHandler(log *logger.Logger, exposeDetails bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: "Route not found", Code: CodeNotFound})
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
		}
		if status, body, ok := mapError(err); ok {
			return c.Status(status).JSON(body)
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", GetRequestID(c)).
			Msg("error interno")
		msg := "Internal server error"
		if exposeDetails {
			msg = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "Something went wrong!",
			Code:    CodeInternal,
			Message: msg,
		})
	}
}
