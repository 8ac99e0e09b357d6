package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/application/usecase"
)

// BusinessHandler expone el negocio del usuario autenticado.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Get godoc
// @Summary      Negocio del usuario autenticado
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	b, err := h.uc.Get(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BusinessEnvelope{Business: b})
}

// Update godoc
// @Summary      Actualizar el negocio (solo owner)
// @Description  Solo se aplican los campos presentes; subdomain no es editable.
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBusinessRequest  true  "campos a modificar"
// @Success      200   {object}  dto.BusinessEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/business [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	b, err := h.update(c)
	if err != nil || b == nil {
		return err
	}
	return c.JSON(dto.BusinessEnvelope{Message: "Business updated successfully", Business: b})
}

// GetSettings godoc
// @Summary      Configuración del negocio
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Router       /api/settings [get]
func (h *BusinessHandler) GetSettings(c *fiber.Ctx) error {
	b, err := h.uc.Get(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}

// UpdateSettings godoc
// @Summary      Actualizar configuración del negocio (solo owner)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBusinessRequest  true  "campos a modificar"
// @Success      200   {object}  dto.BusinessResponse
// @Router       /api/settings [put]
func (h *BusinessHandler) UpdateSettings(c *fiber.Ctx) error {
	b, err := h.update(c)
	if err != nil || b == nil {
		return err
	}
	return c.JSON(b)
}

// update devuelve (nil, nil) cuando ya escribió una respuesta de error.
func (h *BusinessHandler) update(c *fiber.Ctx) (*dto.BusinessResponse, error) {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, badBody(c)
	}
	b, err := h.uc.Update(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return nil, respondError(c, err)
	}
	return b, nil
}
