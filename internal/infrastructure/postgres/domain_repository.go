package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

var _ repository.DomainRepository = (*DomainRepo)(nil)

// DomainRepo implementación de DomainRepository sobre PostgreSQL.
type DomainRepo struct {
	q Querier
}

// NewDomainRepository construye el adaptador de dominios. Pasar pool o tx.
func NewDomainRepository(q Querier) *DomainRepo {
	return &DomainRepo{q: q}
}

// Create inserta el dominio; si ya existe no hace nada y devuelve created=false.
func (r *DomainRepo) Create(ctx context.Context, d *entity.Domain) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		INSERT INTO domains (id, domain, tenant_id, is_primary, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT domains_domain_key DO NOTHING`,
		d.ID, d.Domain, d.TenantID, d.IsPrimary, d.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert domain: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SchemaByDomain esquema de la institución dueña del dominio, o "".
func (r *DomainRepo) SchemaByDomain(ctx context.Context, domain string) (string, error) {
	var schema string
	err := r.q.QueryRow(ctx, `
		SELECT t.schema_name FROM domains d JOIN tenants t ON t.id = d.tenant_id
		WHERE d.domain = $1`, domain).Scan(&schema)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("schema by domain: %w", err)
	}
	return schema, nil
}

// ListByTenant dominios de una institución.
func (r *DomainRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Domain, error) {
	return r.list(ctx, `
		SELECT id, domain, tenant_id, is_primary, created_at FROM domains
		WHERE tenant_id = $1 ORDER BY is_primary DESC, domain`, tenantID)
}

// List todos los dominios.
func (r *DomainRepo) List(ctx context.Context) ([]*entity.Domain, error) {
	return r.list(ctx, `SELECT id, domain, tenant_id, is_primary, created_at FROM domains ORDER BY domain`)
}

func (r *DomainRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Domain, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()
	var out []*entity.Domain
	for rows.Next() {
		var d entity.Domain
		if err := rows.Scan(&d.ID, &d.Domain, &d.TenantID, &d.IsPrimary, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// DeleteByTenant elimina los dominios de una institución y devuelve cuáles eran.
func (r *DomainRepo) DeleteByTenant(ctx context.Context, tenantID string) ([]string, error) {
	rows, err := r.q.Query(ctx, `DELETE FROM domains WHERE tenant_id = $1 RETURNING domain`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("delete domains: %w", err)
	}
	defer rows.Close()
	var removed []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}
		removed = append(removed, d)
	}
	return removed, rows.Err()
}
