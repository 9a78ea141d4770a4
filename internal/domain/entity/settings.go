package entity

import "time"

// SystemSettingsKey clave del registro de ajustes globales en system_settings.
const SystemSettingsKey = "system"

// FeatureFlags banderas de funcionalidades del panel.
type FeatureFlags struct {
	JWTViewer bool `json:"jwt_viewer"`
	Simulator bool `json:"simulator"`
	AuditLogs bool `json:"audit_logs"`
}

// SystemSettings ajustes globales persistidos (no en memoria del proceso).
type SystemSettings struct {
	Maintenance  bool         `json:"maintenance"`
	DarkMode     bool         `json:"dark_mode"`
	FeatureFlags FeatureFlags `json:"feature_flags"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// DefaultSystemSettings valores iniciales cuando aún no existe el registro.
func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		FeatureFlags: FeatureFlags{JWTViewer: true, Simulator: true, AuditLogs: true},
	}
}
