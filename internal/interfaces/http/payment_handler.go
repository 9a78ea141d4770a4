package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Campus-api/internal/application/activation"
	"github.com/jhoicas/Campus-api/internal/application/auth"
	"github.com/jhoicas/Campus-api/internal/application/dto"
)

// PaymentHandler órdenes de pago y webhook del proveedor.
type PaymentHandler struct {
	gate *activation.UseCase
	auth *auth.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(gate *activation.UseCase, authUC *auth.UseCase) *PaymentHandler {
	return &PaymentHandler{gate: gate, auth: authUC}
}

// Initiate godoc
// @Summary      Iniciar pago del plan premium
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        schema  path  string                      true  "Esquema"
// @Param        body    body  dto.InitiatePaymentRequest  true  "Teléfono del comprador"
// @Success      201  {object}  dto.PaymentOrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/institutions/{schema}/payments [post]
func (h *PaymentHandler) Initiate(c *fiber.Ctx) error {
	var in dto.InitiatePaymentRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	buyer, err := h.auth.CurrentUser(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.gate.InitiatePayment(c.UserContext(), c.Params("schema"), buyer, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Webhook godoc
// @Summary      Confirmación de pago del proveedor
// @Description  Idempotente por (order_id, payment_status). Autenticado con x-api-key.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        x-api-key  header  string              true  "Clave compartida"
// @Param        body       body    dto.WebhookRequest  true  "Notificación"
// @Success      200  {object}  dto.WebhookResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *fiber.Ctx) error {
	var in dto.WebhookRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.gate.ConfirmPayment(c.UserContext(), in, c.Body())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
