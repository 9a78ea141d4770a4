package tenancy

import (
	"time"

	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

// Eventos que mueven la máquina de estados de activación.
const (
	EventPaymentCompleted = "payment_completed"
	EventPaymentFailed    = "payment_failed"
	EventDeactivate       = "deactivate"
	EventReactivate       = "reactivate"
	EventRenew            = "renew"
	EventActivate         = "activate"
)

// transitions: evento → estados de origen permitidos → estado destino.
var transitions = map[string]struct {
	from []string
	to   string
}{
	EventPaymentCompleted: {from: []string{entity.StatePendingPayment, entity.StateExpired, entity.StateActive}, to: entity.StateActive},
	EventPaymentFailed:    {from: []string{entity.StatePendingPayment}, to: entity.StateExpired},
	EventDeactivate:       {from: []string{entity.StateActive}, to: entity.StateExpired},
	EventReactivate:       {from: []string{entity.StateExpired}, to: entity.StateActive},
	EventRenew:            {from: []string{entity.StateActive, entity.StateExpired}, to: entity.StateActive},
	EventActivate:         {from: []string{entity.StatePendingPayment, entity.StateActive, entity.StateExpired}, to: entity.StateActive},
}

// AllowedSources estados desde los que event es válido. Los repositorios lo usan como
// guarda del UPDATE (WHERE state = ANY(...)) para que la transición sea una sola sentencia.
func AllowedSources(event string) []string {
	t, ok := transitions[event]
	if !ok {
		return nil
	}
	return append([]string(nil), t.from...)
}

// Next devuelve el estado destino de aplicar event sobre current, o ErrConflict.
func Next(current, event string) (string, error) {
	t, ok := transitions[event]
	if !ok {
		return "", domain.ErrInvalidInput
	}
	for _, s := range t.from {
		if s == current {
			return t.to, nil
		}
	}
	return "", domain.ErrConflict
}

// InitialState estado y vigencia al crear una institución con plan.
// free: activa con prueba de trialDays; premium: pendiente de pago, sin vigencia.
func InitialState(plan string, now time.Time, trialDays int) (string, *time.Time, error) {
	switch plan {
	case entity.PlanFree:
		until := DateOf(now).AddDate(0, 0, trialDays)
		return entity.StateActive, &until, nil
	case entity.PlanPremium:
		return entity.StatePendingPayment, nil, nil
	default:
		return "", nil, domain.ErrInvalidPlan
	}
}

// DateOf trunca t a la fecha (medianoche UTC), igual que la columna DATE paid_until.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PaidUntilAfterPayment vigencia que fija un pago confirmado: now + days.
// Fija la fecha (no la extiende) para que una entrega repetida no acumule días.
func PaidUntilAfterPayment(now time.Time, days int) time.Time {
	return DateOf(now).AddDate(0, 0, days)
}

// RenewedUntil extiende la vigencia months meses desde la mayor entre la actual y hoy.
func RenewedUntil(current *time.Time, now time.Time, months int) time.Time {
	base := DateOf(now)
	if current != nil && current.After(base) {
		base = DateOf(*current)
	}
	return base.AddDate(0, months, 0)
}

// Target estado destino de event sin importar el origen.
func Target(event string) (string, error) {
	t, ok := transitions[event]
	if !ok {
		return "", domain.ErrInvalidInput
	}
	return t.to, nil
}
