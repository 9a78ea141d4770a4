// Package settings expone los ajustes globales persistidos (mantenimiento, tema, banderas).
// Se leen del almacén en cada consulta: varios procesos ven siempre el mismo valor.
package settings

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

// UseCase lectura y actualización parcial de los ajustes.
type UseCase struct {
	repo repository.SettingRepository
	log  zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.SettingRepository, log zerolog.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// Get devuelve los ajustes vigentes (valores por defecto si aún no se guardaron).
func (uc *UseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return toResponse(s), nil
}

// Maintenance informa si el modo mantenimiento está activo.
func (uc *UseCase) Maintenance(ctx context.Context) (bool, error) {
	s, err := uc.load(ctx)
	if err != nil {
		return false, err
	}
	return s.Maintenance, nil
}

// Update aplica los campos presentes en in y persiste.
func (uc *UseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	if in.Maintenance != nil {
		s.Maintenance = *in.Maintenance
	}
	if in.DarkMode != nil {
		s.DarkMode = *in.DarkMode
	}
	if f := in.FeatureFlags; f != nil {
		if f.JWTViewer != nil {
			s.FeatureFlags.JWTViewer = *f.JWTViewer
		}
		if f.Simulator != nil {
			s.FeatureFlags.Simulator = *f.Simulator
		}
		if f.AuditLogs != nil {
			s.FeatureFlags.AuditLogs = *f.AuditLogs
		}
	}
	s.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Info().Bool("maintenance", s.Maintenance).Msg("ajustes del sistema actualizados")
	return toResponse(s), nil
}

func (uc *UseCase) load(ctx context.Context) (*entity.SystemSettings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		d := entity.DefaultSystemSettings()
		return &d, nil
	}
	return s, nil
}

func toResponse(s *entity.SystemSettings) *dto.SettingsResponse {
	out := &dto.SettingsResponse{
		Maintenance: s.Maintenance,
		DarkMode:    s.DarkMode,
		FeatureFlags: dto.FeatureFlagsDTO{
			JWTViewer: s.FeatureFlags.JWTViewer,
			Simulator: s.FeatureFlags.Simulator,
			AuditLogs: s.FeatureFlags.AuditLogs,
		},
	}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
