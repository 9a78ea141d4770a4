package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación de TenantRepository sobre PostgreSQL (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador del registro de instituciones. Pasar pool o tx.
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// tenantColumns columnas de t (tenants) + dominio primario de d, en el orden de scanTenant.
const tenantColumns = `
	t.id, t.name, t.schema_name, t.registration_number, t.location, t.contacts, t.website,
	t.plan, t.state, t.paid_until, t.payment_order_id, t.payment_amount,
	t.owner_email, t.owner_registration_number, t.created_at, t.updated_at,
	COALESCE(d.domain, '')`

const tenantFrom = `
	FROM t LEFT JOIN domains d ON d.tenant_id = t.id AND d.is_primary`

const selectTenant = `SELECT ` + tenantColumns + `
	FROM tenants t LEFT JOIN domains d ON d.tenant_id = t.id AND d.is_primary`

func scanTenant(row pgx.Row) (*entity.Tenant, error) {
	var t entity.Tenant
	err := row.Scan(
		&t.ID, &t.Name, &t.SchemaName, &t.RegistrationNumber, &t.Location, &t.Contacts, &t.Website,
		&t.Plan, &t.State, &t.PaidUntil, &t.PaymentOrderID, &t.PaymentAmount,
		&t.Owner.Email, &t.Owner.RegistrationNumber, &t.CreatedAt, &t.UpdatedAt,
		&t.Domain,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepo) one(ctx context.Context, op, query string, args ...any) (*entity.Tenant, error) {
	t, err := scanTenant(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

func (r *TenantRepo) many(ctx context.Context, op, query string, args ...any) ([]*entity.Tenant, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Create persiste una nueva institución. La unicidad de schema_name la garantiza el constraint.
func (r *TenantRepo) Create(ctx context.Context, t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (
			id, name, schema_name, registration_number, location, contacts, website,
			plan, state, paid_until, payment_order_id, payment_amount,
			owner_email, owner_registration_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Name, t.SchemaName, t.RegistrationNumber, t.Location, t.Contacts, t.Website,
		t.Plan, t.State, t.PaidUntil, t.PaymentOrderID, t.PaymentAmount,
		t.Owner.Email, t.Owner.RegistrationNumber, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		switch violatedConstraint(err) {
		case "tenants_schema_name_key":
			return domain.ErrSchemaNameTaken
		case "tenants_schema_name_not_reserved":
			return domain.ErrSchemaNameReserved
		case "tenants_registration_number_key":
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetBySchema obtiene una institución por nombre de esquema.
func (r *TenantRepo) GetBySchema(ctx context.Context, schemaName string) (*entity.Tenant, error) {
	return r.one(ctx, "get tenant", selectTenant+` WHERE t.schema_name = $1`, schemaName)
}

// GetByPaymentOrder obtiene la institución dueña de una orden de pago.
func (r *TenantRepo) GetByPaymentOrder(ctx context.Context, orderID string) (*entity.Tenant, error) {
	return r.one(ctx, "get tenant by order", selectTenant+` WHERE t.payment_order_id = $1`, orderID)
}

// List lista todas las instituciones, más recientes primero.
func (r *TenantRepo) List(ctx context.Context) ([]*entity.Tenant, error) {
	return r.many(ctx, "list tenants", selectTenant+` ORDER BY t.created_at DESC`)
}

// ListByOwner lista las instituciones cuyo dueño coincide por referencia.
func (r *TenantRepo) ListByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.Tenant, error) {
	return r.many(ctx, "list tenants by owner",
		selectTenant+` WHERE t.owner_email = $1 AND t.owner_registration_number = $2 ORDER BY t.created_at DESC`,
		owner.Email, owner.RegistrationNumber)
}

// Count cantidad de instituciones.
func (r *TenantRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM tenants`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tenants: %w", err)
	}
	return n, nil
}

// SetPaymentOrder guarda la orden de pago pendiente.
func (r *TenantRepo) SetPaymentOrder(ctx context.Context, schemaName, orderID string, amount decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE tenants SET payment_order_id = $2, payment_amount = $3, updated_at = now()
		WHERE schema_name = $1`, schemaName, orderID, amount)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("set payment order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountCreatedByMonth instituciones creadas desde since, por mes UTC.
func (r *TenantRepo) CountCreatedByMonth(ctx context.Context, since time.Time) (map[string]int, error) {
	out, err := countByMonth(ctx, r.q, "tenants", since)
	if err != nil {
		return nil, fmt.Errorf("count tenants by month: %w", err)
	}
	return out, nil
}

// UpdateProfile reemplaza nombre y datos de contacto. El esquema y el dueño no cambian.
func (r *TenantRepo) UpdateProfile(ctx context.Context, schemaName string, p entity.TenantProfile) (*entity.Tenant, error) {
	query := `
		WITH t AS (
			UPDATE tenants
			SET name = $2, location = $3, contacts = $4, website = $5, updated_at = now()
			WHERE schema_name = $1
			RETURNING *
		)
		SELECT ` + tenantColumns + tenantFrom
	return r.one(ctx, "update tenant profile", query, schemaName, p.Name, p.Location, p.Contacts, p.Website)
}

// Transition cambia estado (y vigencia si paidUntil no es nil) solo si el estado actual está en fromStates.
func (r *TenantRepo) Transition(ctx context.Context, schemaName string, fromStates []string, state string, paidUntil *time.Time) (*entity.Tenant, error) {
	query := `
		WITH t AS (
			UPDATE tenants
			SET state = $3, paid_until = COALESCE($4::date, paid_until), updated_at = now()
			WHERE schema_name = $1 AND state = ANY($2)
			RETURNING *
		)
		SELECT ` + tenantColumns + tenantFrom
	return r.one(ctx, "transition tenant", query, schemaName, fromStates, state, paidUntil)
}

// Renew extiende paid_until months meses desde max(paid_until, today) y deja el estado active.
func (r *TenantRepo) Renew(ctx context.Context, schemaName string, fromStates []string, months int, today time.Time) (*entity.Tenant, error) {
	query := `
		WITH t AS (
			UPDATE tenants
			SET state = 'active',
			    paid_until = (GREATEST(COALESCE(paid_until, $4::date), $4::date) + make_interval(months => $3))::date,
			    updated_at = now()
			WHERE schema_name = $1 AND state = ANY($2)
			RETURNING *
		)
		SELECT ` + tenantColumns + tenantFrom
	return r.one(ctx, "renew tenant", query, schemaName, fromStates, months, today)
}

// Toggle alterna active <-> expired. Una institución pendiente de pago no cambia.
func (r *TenantRepo) Toggle(ctx context.Context, schemaName string) (*entity.Tenant, error) {
	query := `
		WITH t AS (
			UPDATE tenants
			SET state = CASE state WHEN 'active' THEN 'expired' ELSE 'active' END, updated_at = now()
			WHERE schema_name = $1 AND state IN ('active', 'expired')
			RETURNING *
		)
		SELECT ` + tenantColumns + tenantFrom
	return r.one(ctx, "toggle tenant", query, schemaName)
}

// Delete elimina el registro (los dominios caen en cascada).
func (r *TenantRepo) Delete(ctx context.Context, schemaName string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM tenants WHERE schema_name = $1`, schemaName)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
