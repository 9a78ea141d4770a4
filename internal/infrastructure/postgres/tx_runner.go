package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Campus-api/internal/application/activation"
	"github.com/jhoicas/Campus-api/internal/application/provisioning"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

var _ provisioning.TxRunner = (*TxRunner)(nil)
var _ activation.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProvisioning ejecuta fn con los repos del aprovisionamiento atados a una misma tx.
// El DDL del esquema participa de la tx: un error en cualquier paso no deja rastros.
func (r *TxRunner) RunProvisioning(ctx context.Context, fn func(
	tenants repository.TenantRepository,
	domains repository.DomainRepository,
	schemas repository.SchemaManager,
	users repository.UserRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewTenantRepository(tx), NewDomainRepository(tx), NewSchemaManager(tx), NewUserRepository(tx))
	})
}

// RunActivation ejecuta fn con tenants y eventos de webhook en la misma tx.
func (r *TxRunner) RunActivation(ctx context.Context, fn func(
	tenants repository.TenantRepository,
	events repository.WebhookEventRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewTenantRepository(tx), NewWebhookEventRepository(tx))
	})
}
