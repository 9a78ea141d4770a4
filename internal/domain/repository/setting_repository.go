package repository

import (
	"context"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

// SettingRepository define el puerto de los ajustes globales persistidos.
type SettingRepository interface {
	// Get devuelve los ajustes guardados, o nil, nil si aún no existen.
	Get(ctx context.Context) (*entity.SystemSettings, error)
	Save(ctx context.Context, s *entity.SystemSettings) error
}
