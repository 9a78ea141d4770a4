package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo persiste los ajustes globales como JSONB bajo una clave fija.
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador de ajustes.
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

// Get devuelve los ajustes guardados o nil, nil si todavía no hay registro.
func (r *SettingRepo) Get(ctx context.Context) (*entity.SystemSettings, error) {
	var (
		raw []byte
		s   entity.SystemSettings
	)
	err := r.q.QueryRow(ctx, `SELECT value, updated_at FROM system_settings WHERE key = $1`, entity.SystemSettingsKey).
		Scan(&raw, &s.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

// Save inserta o reemplaza el registro completo.
func (r *SettingRepo) Save(ctx context.Context, s *entity.SystemSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	query := `INSERT INTO system_settings (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, entity.SystemSettingsKey, raw, s.UpdatedAt); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
