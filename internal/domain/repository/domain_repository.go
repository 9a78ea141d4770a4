package repository

import (
	"context"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

// DomainRepository define el puerto de persistencia de dominios (únicos globalmente).
type DomainRepository interface {
	// Create inserta el dominio si no existe. created=false si ya estaba registrado.
	Create(ctx context.Context, d *entity.Domain) (created bool, err error)
	// SchemaByDomain devuelve el esquema dueño del dominio, o "" si no existe.
	SchemaByDomain(ctx context.Context, domain string) (string, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Domain, error)
	List(ctx context.Context) ([]*entity.Domain, error)
	DeleteByTenant(ctx context.Context, tenantID string) ([]string, error)
}
