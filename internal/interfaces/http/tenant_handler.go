package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Campus-api/internal/application/provisioning"
)

// TenantHandler datos públicos de la institución del host.
type TenantHandler struct {
	provision *provisioning.UseCase
}

// NewTenantHandler construye el handler.
func NewTenantHandler(provision *provisioning.UseCase) *TenantHandler {
	return &TenantHandler{provision: provision}
}

// Info godoc
// @Summary      Perfil público de la institución
// @Tags         tenant
// @Produce      json
// @Success      200  {object}  dto.TenantInfoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tenant/info [get]
func (h *TenantHandler) Info(c *fiber.Ctx) error {
	out, err := h.provision.Info(c.UserContext(), GetSchema(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
