package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

var _ repository.WebhookEventRepository = (*WebhookEventRepo)(nil)

// WebhookEventRepo registro de entregas de webhook ya aplicadas.
type WebhookEventRepo struct {
	q Querier
}

// NewWebhookEventRepository construye el adaptador. Debe compartir tx con la transición del tenant.
func NewWebhookEventRepository(q Querier) *WebhookEventRepo {
	return &WebhookEventRepo{q: q}
}

// Insert guarda la entrega. inserted=false si (provider, order_id, status) ya estaba registrado.
func (r *WebhookEventRepo) Insert(ctx context.Context, ev *entity.WebhookEvent) (bool, error) {
	payload := ev.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	query := `INSERT INTO payment_webhook_events (id, provider, order_id, schema_name, status, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ON CONSTRAINT payment_webhook_events_delivery_key DO NOTHING`
	tag, err := r.q.Exec(ctx, query, ev.ID, ev.Provider, ev.OrderID, ev.SchemaName, ev.Status, string(payload), ev.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert webhook event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
