package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PublicSchema es el esquema compartido: registro de tenants y principales públicos.
const PublicSchema = "public"

// Planes disponibles para una institución.
const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

// Estados de activación (máquina de estados de la institución).
const (
	StatePendingPayment = "pending_payment"
	StateActive         = "active"
	StateExpired        = "expired"
)

// OwnerRef identifica al dueño de una institución por valor (email + número de registro).
// No es una FK: el dueño vive en el esquema public y la institución en su propio esquema.
type OwnerRef struct {
	Email              string
	RegistrationNumber string
}

// Tenant representa una institución (tenant) registrada en el esquema public.
type Tenant struct {
	ID                 string
	Name               string
	SchemaName         string // único e inmutable tras la creación
	RegistrationNumber string // referencia global generada (INST-XXXXXX)
	Domain             string // dominio primario; vacío si ya existía y se omitió
	Location           string
	Contacts           string
	Website            string
	Plan               string // free, premium
	State              string // pending_payment, active, expired
	PaidUntil          *time.Time
	PaymentOrderID     *string
	PaymentAmount      decimal.Decimal
	Owner              OwnerRef
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TenantProfile datos editables de una institución (nombre y contacto).
type TenantProfile struct {
	Name     string
	Location string
	Contacts string
	Website  string
}

// IsActive informa si la institución puede operar en el instante now:
// estado active y vigencia no vencida (PaidUntil nil = sin vencimiento).
func (t *Tenant) IsActive(now time.Time) bool {
	if t == nil || t.State != StateActive {
		return false
	}
	if t.PaidUntil == nil {
		return true
	}
	n := now.UTC()
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return !t.PaidUntil.Before(today)
}

// EffectiveState devuelve el estado observable: un active con vigencia vencida se reporta expired.
func (t *Tenant) EffectiveState(now time.Time) string {
	if t.State == StateActive && !t.IsActive(now) {
		return StateExpired
	}
	return t.State
}
