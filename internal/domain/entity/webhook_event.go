package entity

import "time"

// Estado que el proveedor envía cuando el pago se completó.
const PaymentStatusCompleted = "COMPLETED"

// WebhookEvent notificación de pago recibida. (Provider, OrderID, Status) es único:
// una entrega repetida se detecta al insertar.
type WebhookEvent struct {
	ID         string
	Provider   string
	OrderID    string
	SchemaName string
	Status     string
	Payload    []byte
	CreatedAt  time.Time
}
