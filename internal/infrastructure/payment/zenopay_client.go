// Package payment cliente HTTP del proveedor de pagos (órdenes de pago móvil).
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/Campus-api/internal/application/activation"
)

var _ activation.PaymentProvider = (*ZenopayClient)(nil)

const (
	providerName = "zenopay"
	ordersPath   = "/api/payments/orders"
)

// ErrRejected el proveedor respondió pero no aceptó la orden.
var ErrRejected = errors.New("orden rechazada por el proveedor")

type orderMetadata struct {
	SchemaName string `json:"schema_name"`
}

type orderRequest struct {
	OrderID    string        `json:"order_id"`
	BuyerEmail string        `json:"buyer_email"`
	BuyerName  string        `json:"buyer_name"`
	BuyerPhone string        `json:"buyer_phone,omitempty"`
	Amount     json.Number   `json:"amount"`
	WebhookURL string        `json:"webhook_url"`
	Metadata   orderMetadata `json:"metadata"`
}

type orderResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	OrderID    string `json:"order_id"`
	PaymentURL string `json:"payment_url"`
}

// ZenopayClient crea órdenes contra la API del proveedor autenticando con x-api-key.
type ZenopayClient struct {
	http *resty.Client
}

// NewZenopayClient construye el cliente. timeout acota cada llamada aunque el ctx no lo haga.
func NewZenopayClient(baseURL, apiKey string, timeout time.Duration) *ZenopayClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("x-api-key", apiKey)
	return &ZenopayClient{http: c}
}

// Name identifica al proveedor en los eventos de webhook.
func (c *ZenopayClient) Name() string { return providerName }

// CreateOrder registra la orden y devuelve la URL de pago. No reintenta.
func (c *ZenopayClient) CreateOrder(ctx context.Context, order activation.PaymentOrder) (*activation.PaymentOrderResult, error) {
	body := orderRequest{
		OrderID:    order.OrderID,
		BuyerEmail: order.BuyerEmail,
		BuyerName:  order.BuyerName,
		BuyerPhone: order.BuyerPhone,
		Amount:     json.Number(order.Amount.StringFixed(2)),
		WebhookURL: order.WebhookURL,
		Metadata:   orderMetadata{SchemaName: order.SchemaName},
	}

	var out orderResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post(ordersPath)
	if err != nil {
		return nil, fmt.Errorf("zenopay create order: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode(), out.Message)
	}
	if s := strings.ToLower(out.Status); s != "" && s != "success" {
		return nil, fmt.Errorf("%w: %s", ErrRejected, out.Message)
	}
	if out.PaymentURL == "" {
		return nil, fmt.Errorf("%w: respuesta sin payment_url", ErrRejected)
	}
	orderID := out.OrderID
	if orderID == "" {
		orderID = order.OrderID
	}
	return &activation.PaymentOrderResult{OrderID: orderID, PaymentURL: out.PaymentURL}, nil
}
