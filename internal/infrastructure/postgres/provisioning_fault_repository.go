package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

var _ repository.ProvisioningFaultRepository = (*ProvisioningFaultRepo)(nil)

// ProvisioningFaultRepo fallas de aprovisionamiento pendientes de reconciliar.
// Se usa siempre con el pool: la falla debe sobrevivir al rollback de la tx fallida.
type ProvisioningFaultRepo struct {
	q Querier
}

// NewProvisioningFaultRepository construye el adaptador.
func NewProvisioningFaultRepository(q Querier) *ProvisioningFaultRepo {
	return &ProvisioningFaultRepo{q: q}
}

// Record inserta la falla.
func (r *ProvisioningFaultRepo) Record(ctx context.Context, f *entity.ProvisioningFault) error {
	query := `INSERT INTO provisioning_faults (id, schema_name, step, error, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, f.ID, f.SchemaName, f.Step, f.Error, f.CreatedAt); err != nil {
		return fmt.Errorf("record provisioning fault: %w", err)
	}
	return nil
}

// ListOpen fallas sin resolver, más antiguas primero.
func (r *ProvisioningFaultRepo) ListOpen(ctx context.Context) ([]*entity.ProvisioningFault, error) {
	rows, err := r.q.Query(ctx, `SELECT id, schema_name, step, error, created_at, resolved_at
		FROM provisioning_faults WHERE resolved_at IS NULL ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list provisioning faults: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProvisioningFault
	for rows.Next() {
		var f entity.ProvisioningFault
		if err := rows.Scan(&f.ID, &f.SchemaName, &f.Step, &f.Error, &f.CreatedAt, &f.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan provisioning fault: %w", err)
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}
