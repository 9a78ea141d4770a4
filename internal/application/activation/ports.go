package activation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción: el registro del webhook y la transición del tenant
// se confirman juntos o no se confirman.
type TxRunner interface {
	RunActivation(ctx context.Context, fn func(
		tenants repository.TenantRepository,
		events repository.WebhookEventRepository,
	) error) error
}

// PaymentOrder orden enviada al proveedor de pagos.
type PaymentOrder struct {
	OrderID    string
	Amount     decimal.Decimal
	BuyerEmail string
	BuyerName  string
	BuyerPhone string
	WebhookURL string
	SchemaName string
}

// PaymentOrderResult respuesta del proveedor.
type PaymentOrderResult struct {
	OrderID    string
	PaymentURL string
}

// PaymentProvider puerto del proveedor de pagos externo.
type PaymentProvider interface {
	Name() string
	CreateOrder(ctx context.Context, order PaymentOrder) (*PaymentOrderResult, error)
}
