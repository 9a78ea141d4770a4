package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia del registro de instituciones (esquema public).
// Las transiciones de activación son una sola sentencia con guarda de estado (fromStates):
// devuelven nil, nil si la guarda no se cumple.
type TenantRepository interface {
	// Create inserta el registro; schema_name duplicado => domain.ErrSchemaNameTaken.
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetBySchema(ctx context.Context, schemaName string) (*entity.Tenant, error)
	GetByPaymentOrder(ctx context.Context, orderID string) (*entity.Tenant, error)
	List(ctx context.Context) ([]*entity.Tenant, error)
	ListByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.Tenant, error)
	Count(ctx context.Context) (int, error)
	// CountCreatedByMonth instituciones creadas desde since, por mes UTC ("2006-01").
	CountCreatedByMonth(ctx context.Context, since time.Time) (map[string]int, error)
	// UpdateProfile reemplaza nombre y datos de contacto; nil, nil si el esquema no existe.
	UpdateProfile(ctx context.Context, schemaName string, p entity.TenantProfile) (*entity.Tenant, error)

	SetPaymentOrder(ctx context.Context, schemaName, orderID string, amount decimal.Decimal) error
	// Transition aplica state/paidUntil si el estado actual está en fromStates.
	// paidUntil nil conserva la vigencia actual.
	Transition(ctx context.Context, schemaName string, fromStates []string, state string, paidUntil *time.Time) (*entity.Tenant, error)
	// Renew extiende paid_until months meses desde max(paid_until, today) y deja el estado active.
	Renew(ctx context.Context, schemaName string, fromStates []string, months int, today time.Time) (*entity.Tenant, error)
	// Toggle alterna active <-> expired en una sola sentencia.
	Toggle(ctx context.Context, schemaName string) (*entity.Tenant, error)
	Delete(ctx context.Context, schemaName string) error
}
