// Package activation decide si una institución puede operar y aplica las transiciones de su
// máquina de estados: pago confirmado o fallido, renovación, activación manual y toggle.
package activation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
	"github.com/jhoicas/Campus-api/internal/domain/tenancy"
)

// DefaultRenewMonths meses de una renovación sin cantidad explícita.
const DefaultRenewMonths = 12

// WebhookProvider valor fijo de la columna provider en la clave de deduplicación, el mismo
// para cualquier proveedor configurado.
const WebhookProvider = "payment"

// Config reglas del gate de activación.
type Config struct {
	PremiumDays     int
	PremiumAmount   decimal.Decimal
	WebhookURL      string
	ProviderTimeout time.Duration
}

// UseCase gate de activación.
type UseCase struct {
	tx       TxRunner
	tenants  repository.TenantRepository
	provider PaymentProvider
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time
}

// NewUseCase construye el gate. provider puede ser nil (sin pagos en línea).
func NewUseCase(tx TxRunner, tenants repository.TenantRepository, provider PaymentProvider, cfg Config, log zerolog.Logger) *UseCase {
	return &UseCase{tx: tx, tenants: tenants, provider: provider, cfg: cfg, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// IsActive informa si la institución puede operar ahora.
func (uc *UseCase) IsActive(ctx context.Context, schemaName string) (bool, error) {
	t, err := uc.get(ctx, schemaName)
	if err != nil {
		return false, err
	}
	return t.IsActive(uc.now()), nil
}

// Status estado de activación observable.
func (uc *UseCase) Status(ctx context.Context, schemaName string) (*dto.TenantStatusResponse, error) {
	t, err := uc.get(ctx, schemaName)
	if err != nil {
		return nil, err
	}
	return uc.status(t), nil
}

// Activate deja la institución activa hasta until.
func (uc *UseCase) Activate(ctx context.Context, schemaName string, until time.Time) (*dto.TenantStatusResponse, error) {
	d := tenancy.DateOf(until)
	return uc.transition(ctx, schemaName, tenancy.EventActivate, &d)
}

// Deactivate active → expired.
func (uc *UseCase) Deactivate(ctx context.Context, schemaName string) (*dto.TenantStatusResponse, error) {
	return uc.transition(ctx, schemaName, tenancy.EventDeactivate, nil)
}

// Renew extiende la vigencia months meses (DefaultRenewMonths si months <= 0) y reactiva.
// Es una sola sentencia: no compite en lectura-escritura con un webhook concurrente.
func (uc *UseCase) Renew(ctx context.Context, schemaName string, months int) (*dto.TenantStatusResponse, error) {
	if months <= 0 {
		months = DefaultRenewMonths
	}
	t, err := uc.tenants.Renew(ctx, schemaName, tenancy.AllowedSources(tenancy.EventRenew), months, tenancy.DateOf(uc.now()))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, uc.missingOrConflict(ctx, schemaName)
	}
	uc.log.Info().Str("schema", schemaName).Int("months", months).Msg("institución renovada")
	return uc.status(t), nil
}

// Toggle alterna active <-> expired.
func (uc *UseCase) Toggle(ctx context.Context, schemaName string) (*dto.TenantStatusResponse, error) {
	t, err := uc.tenants.Toggle(ctx, schemaName)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, uc.missingOrConflict(ctx, schemaName)
	}
	uc.log.Info().Str("schema", schemaName).Str("state", t.State).Msg("estado de institución alternado")
	return uc.status(t), nil
}

// InitiatePayment crea una orden en el proveedor para una institución no activa.
// La orden se guarda antes de llamar al proveedor; si este falla o no responde a tiempo la
// institución sigue pendiente y se devuelve domain.ErrPaymentProviderUnavailable. Si el
// proveedor asigna su propio order id, ese reemplaza al local.
func (uc *UseCase) InitiatePayment(ctx context.Context, schemaName string, buyer *entity.User, in dto.InitiatePaymentRequest) (*dto.PaymentOrderResponse, error) {
	if uc.provider == nil {
		return nil, domain.ErrPaymentProviderUnavailable
	}
	t, err := uc.get(ctx, schemaName)
	if err != nil {
		return nil, err
	}
	if buyer == nil || (buyer.Role != entity.RoleSuperAdmin && t.Owner != buyer.Owner()) {
		return nil, domain.ErrForbidden
	}
	if t.Plan != entity.PlanPremium || t.IsActive(uc.now()) {
		return nil, domain.ErrConflict
	}

	orderID := uuid.New().String()
	amount := uc.cfg.PremiumAmount
	if err := uc.tenants.SetPaymentOrder(ctx, t.SchemaName, orderID, amount); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.ProviderTimeout)
	defer cancel()
	res, err := uc.provider.CreateOrder(callCtx, PaymentOrder{
		OrderID:    orderID,
		Amount:     amount,
		BuyerEmail: buyer.Email,
		BuyerName:  buyer.Username,
		BuyerPhone: strings.TrimSpace(in.BuyerPhone),
		WebhookURL: uc.cfg.WebhookURL,
		SchemaName: t.SchemaName,
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("schema", t.SchemaName).Str("provider", uc.provider.Name()).Str("order_id", orderID).
			Msg("proveedor de pagos no disponible")
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentProviderUnavailable, err)
	}
	if assigned := strings.TrimSpace(res.OrderID); assigned != "" && assigned != orderID {
		if err := uc.tenants.SetPaymentOrder(ctx, t.SchemaName, assigned, amount); err != nil {
			return nil, err
		}
		orderID = assigned
	}
	uc.log.Info().Str("schema", t.SchemaName).Str("provider", uc.provider.Name()).Str("order_id", orderID).Msg("orden de pago creada")
	return &dto.PaymentOrderResponse{OrderID: orderID, PaymentURL: res.PaymentURL, Amount: amount.StringFixed(2)}, nil
}

// ConfirmPayment procesa el webhook del proveedor. Idempotente: una entrega repetida de
// (order_id, status) no vuelve a aplicar la transición, y un COMPLETED fija (no extiende)
// paid_until a hoy + PremiumDays. Sin order_id la entrega se identifica por su reference;
// sin ninguno de los dos se rechaza con domain.ErrInvalidInput.
func (uc *UseCase) ConfirmPayment(ctx context.Context, in dto.WebhookRequest, payload []byte) (*dto.WebhookResponse, error) {
	t, err := uc.matchTenant(ctx, in)
	if err != nil {
		return nil, err
	}
	status := strings.ToUpper(strings.TrimSpace(in.PaymentStatus))
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	orderID, err := deliveryKey(in)
	if err != nil {
		return nil, err
	}

	event := tenancy.EventPaymentFailed
	var paidUntil *time.Time
	if status == entity.PaymentStatusCompleted {
		event = tenancy.EventPaymentCompleted
		d := tenancy.PaidUntilAfterPayment(uc.now(), uc.cfg.PremiumDays)
		paidUntil = &d
	}
	if len(payload) == 0 || !json.Valid(payload) {
		payload, _ = json.Marshal(in)
	}

	var (
		duplicate bool
		updated   *entity.Tenant
	)
	err = uc.tx.RunActivation(ctx, func(tenants repository.TenantRepository, events repository.WebhookEventRepository) error {
		inserted, err := events.Insert(ctx, &entity.WebhookEvent{
			ID:         uuid.New().String(),
			Provider:   WebhookProvider,
			OrderID:    orderID,
			SchemaName: t.SchemaName,
			Status:     status,
			Payload:    payload,
			CreatedAt:  uc.now().UTC(),
		})
		if err != nil {
			return err
		}
		if !inserted {
			duplicate = true
			return nil
		}
		next, err := tenancy.Target(event)
		if err != nil {
			return err
		}
		updated, err = tenants.Transition(ctx, t.SchemaName, tenancy.AllowedSources(event), next, paidUntil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("confirm payment %s: %w", t.SchemaName, err)
	}

	ev := uc.log.Info().Str("schema", t.SchemaName).Str("order_id", orderID).Str("status", status)
	switch {
	case duplicate:
		ev.Bool("duplicate", true).Msg("webhook repetido, sin cambios")
	case updated == nil:
		ev.Msg("webhook sin transición aplicable")
	default:
		ev.Str("state", updated.State).Msg("webhook aplicado")
	}

	if updated == nil {
		if updated, err = uc.get(ctx, t.SchemaName); err != nil {
			return nil, err
		}
	}
	return &dto.WebhookResponse{
		SchemaName: updated.SchemaName,
		Duplicate:  duplicate,
		State:      updated.EffectiveState(uc.now()),
		PaidUntil:  formatDate(updated.PaidUntil),
	}, nil
}

// deliveryKey identificador de la entrega dentro de la clave de deduplicación.
func deliveryKey(in dto.WebhookRequest) (string, error) {
	if id := strings.TrimSpace(in.OrderID); id != "" {
		return id, nil
	}
	if ref := strings.TrimSpace(in.Reference); ref != "" {
		return "ref:" + ref, nil
	}
	return "", domain.ErrInvalidInput
}

func (uc *UseCase) matchTenant(ctx context.Context, in dto.WebhookRequest) (*entity.Tenant, error) {
	if id := strings.TrimSpace(in.OrderID); id != "" {
		t, err := uc.tenants.GetByPaymentOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		if t != nil {
			return t, nil
		}
	}
	if s := strings.TrimSpace(in.Metadata.SchemaName); s != "" {
		return uc.get(ctx, s)
	}
	return nil, domain.ErrNotFound
}

func (uc *UseCase) transition(ctx context.Context, schemaName, event string, paidUntil *time.Time) (*dto.TenantStatusResponse, error) {
	next, err := tenancy.Target(event)
	if err != nil {
		return nil, err
	}
	t, err := uc.tenants.Transition(ctx, schemaName, tenancy.AllowedSources(event), next, paidUntil)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, uc.missingOrConflict(ctx, schemaName)
	}
	uc.log.Info().Str("schema", schemaName).Str("event", event).Str("state", t.State).Msg("transición de activación")
	return uc.status(t), nil
}

// missingOrConflict distingue una guarda no cumplida de una institución inexistente.
func (uc *UseCase) missingOrConflict(ctx context.Context, schemaName string) error {
	if _, err := uc.get(ctx, schemaName); err != nil {
		return err
	}
	return domain.ErrConflict
}

func (uc *UseCase) get(ctx context.Context, schemaName string) (*entity.Tenant, error) {
	t, err := uc.tenants.GetBySchema(ctx, schemaName)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (uc *UseCase) status(t *entity.Tenant) *dto.TenantStatusResponse {
	now := uc.now()
	return &dto.TenantStatusResponse{
		SchemaName: t.SchemaName,
		Active:     t.IsActive(now),
		State:      t.EffectiveState(now),
		Plan:       t.Plan,
		PaidUntil:  formatDate(t.PaidUntil),
	}
}

func formatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(dto.DateLayout)
	return &s
}
