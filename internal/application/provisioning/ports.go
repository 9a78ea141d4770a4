package provisioning

import (
	"context"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una sola transacción del almacén. Si fn devuelve error (o el
// contexto se cancela) nada de lo escrito dentro, DDL incluido, queda persistido.
type TxRunner interface {
	RunProvisioning(ctx context.Context, fn func(
		tenants repository.TenantRepository,
		domains repository.DomainRepository,
		schemas repository.SchemaManager,
		users repository.UserRepository,
	) error) error
}

// CacheInvalidator descarta dominios resueltos en caché.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, domains ...string)
}

// CredentialsRenderer genera la ficha imprimible de acceso del administrador por defecto.
type CredentialsRenderer interface {
	RenderCredentials(c *dto.CredentialsResponse) ([]byte, error)
}
