package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/application/settings"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

type memSettings struct {
	saved *entity.SystemSettings
	err   error
}

func (m *memSettings) Get(context.Context) (*entity.SystemSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.saved == nil {
		return nil, nil
	}
	c := *m.saved
	return &c, nil
}

func (m *memSettings) Save(_ context.Context, s *entity.SystemSettings) error {
	c := *s
	m.saved = &c
	return nil
}

func boolPtr(b bool) *bool { return &b }

func TestGet_SinRegistroDevuelveDefaults(t *testing.T) {
	uc := settings.NewUseCase(&memSettings{}, zerolog.Nop())

	s, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, s.Maintenance)
	assert.True(t, s.FeatureFlags.JWTViewer)
	assert.True(t, s.FeatureFlags.Simulator)
	assert.True(t, s.FeatureFlags.AuditLogs)
	assert.Nil(t, s.UpdatedAt)
}

func TestUpdate_ParcialYDurable(t *testing.T) {
	repo := &memSettings{}
	uc := settings.NewUseCase(repo, zerolog.Nop())

	out, err := uc.Update(context.Background(), dto.UpdateSettingsRequest{
		Maintenance:  boolPtr(true),
		FeatureFlags: &dto.UpdateFeatureFlagsRequest{Simulator: boolPtr(false)},
	})
	require.NoError(t, err)
	assert.True(t, out.Maintenance)
	assert.False(t, out.FeatureFlags.Simulator)
	assert.True(t, out.FeatureFlags.JWTViewer, "los campos ausentes no cambian")
	assert.NotNil(t, out.UpdatedAt)

	// Otra instancia (otro proceso) ve el mismo valor.
	other := settings.NewUseCase(repo, zerolog.Nop())
	on, err := other.Maintenance(context.Background())
	require.NoError(t, err)
	assert.True(t, on)
}

func TestMaintenance_ErrorDelAlmacen(t *testing.T) {
	uc := settings.NewUseCase(&memSettings{err: errors.New("sin conexión")}, zerolog.Nop())
	_, err := uc.Maintenance(context.Background())
	assert.Error(t, err)
}
