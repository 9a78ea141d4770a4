package dto

// InitiatePaymentRequest datos del comprador para la orden de pago.
type InitiatePaymentRequest struct {
	BuyerPhone string `json:"buyer_phone" validate:"required,min=7,max=20"`
}

// PaymentOrderResponse orden creada en el proveedor.
type PaymentOrderResponse struct {
	OrderID    string `json:"order_id"`
	PaymentURL string `json:"payment_url,omitempty"`
	Amount     string `json:"amount"`
}

// WebhookMetadata metadatos que el proveedor devuelve tal cual los recibió.
type WebhookMetadata struct {
	SchemaName string `json:"schema_name"`
}

// WebhookRequest notificación de pago. Se empareja por order_id o, si falta, por metadata.schema_name.
type WebhookRequest struct {
	OrderID       string          `json:"order_id"`
	PaymentStatus string          `json:"payment_status" validate:"required"`
	Reference     string          `json:"reference"`
	Metadata      WebhookMetadata `json:"metadata"`
}

// WebhookResponse resultado de procesar la notificación.
type WebhookResponse struct {
	SchemaName string  `json:"schema_name"`
	Duplicate  bool    `json:"duplicate"`
	State      string  `json:"state"`
	PaidUntil  *string `json:"paid_until"`
}
