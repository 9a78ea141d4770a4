package repository

import (
	"context"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

// WebhookEventRepository registra las notificaciones de pago ya procesadas.
type WebhookEventRepository interface {
	// Insert devuelve inserted=false si (provider, order_id, status) ya existía.
	Insert(ctx context.Context, ev *entity.WebhookEvent) (inserted bool, err error)
}
