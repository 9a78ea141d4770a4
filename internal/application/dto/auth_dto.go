package dto

import "time"

// SignupRequest registro público de un cliente (esquema public).
type SignupRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginRequest credenciales de login. En el host público se usa email; en el host de una
// institución, registration_number.
type LoginRequest struct {
	Email              string `json:"email" validate:"omitempty,email"`
	RegistrationNumber string `json:"registration_number" validate:"omitempty,max=64"`
	Password           string `json:"password" validate:"required"`
}

// TokenResponse tokens emitidos tras un login.
type TokenResponse struct {
	Access             string `json:"access"`
	Refresh            string `json:"refresh"`
	Role               string `json:"role"`
	Schema             string `json:"schema"`
	Dashboard          string `json:"dashboard"`
	MustChangePassword bool   `json:"must_change_password,omitempty"`
}

// RefreshRequest entrada para renovar el access token.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse nuevo access token. El refresh no rota.
type RefreshResponse struct {
	Access string `json:"access"`
}

// ChangePasswordRequest cambio de contraseña del principal autenticado.
type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// UserResponse salida de un principal (sin password).
type UserResponse struct {
	ID                 string    `json:"id"`
	Schema             string    `json:"schema"`
	Username           string    `json:"username"`
	Email              string    `json:"email,omitempty"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	Role               string    `json:"role"`
	IsDefaultAdmin     bool      `json:"is_default_admin,omitempty"`
	MustChangePassword bool      `json:"must_change_password,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
