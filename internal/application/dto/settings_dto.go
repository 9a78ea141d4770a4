package dto

import "time"

// FeatureFlagsDTO banderas del panel.
type FeatureFlagsDTO struct {
	JWTViewer bool `json:"jwt_viewer"`
	Simulator bool `json:"simulator"`
	AuditLogs bool `json:"audit_logs"`
}

// SettingsResponse ajustes globales vigentes.
type SettingsResponse struct {
	Maintenance  bool            `json:"maintenance"`
	DarkMode     bool            `json:"dark_mode"`
	FeatureFlags FeatureFlagsDTO `json:"feature_flags"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

// UpdateFeatureFlagsRequest actualización parcial de banderas.
type UpdateFeatureFlagsRequest struct {
	JWTViewer *bool `json:"jwt_viewer"`
	Simulator *bool `json:"simulator"`
	AuditLogs *bool `json:"audit_logs"`
}

// UpdateSettingsRequest actualización parcial: los campos nil no cambian.
type UpdateSettingsRequest struct {
	Maintenance  *bool                      `json:"maintenance"`
	DarkMode     *bool                      `json:"dark_mode"`
	FeatureFlags *UpdateFeatureFlagsRequest `json:"feature_flags"`
}
