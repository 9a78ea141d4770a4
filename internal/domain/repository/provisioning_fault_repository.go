package repository

import (
	"context"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

// ProvisioningFaultRepository registro de aprovisionamientos incompletos para reconciliación.
type ProvisioningFaultRepository interface {
	Record(ctx context.Context, f *entity.ProvisioningFault) error
	ListOpen(ctx context.Context) ([]*entity.ProvisioningFault, error)
}
