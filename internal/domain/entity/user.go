package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin = "superadmin"
	RoleClient     = "client"
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// ValidRole informa si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleClient, RoleStudent, RoleInstructor:
		return true
	}
	return false
}

// User representa un principal (credencial) que pertenece a exactamente un esquema.
// En public se autentica por email; en un esquema de tenant, por número de registro.
type User struct {
	ID                 string
	Schema             string // esquema propietario; lo completa el repositorio
	Username           string
	Email              string
	RegistrationNumber string // en mayúsculas; vacío = sin número (public)
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Role               string
	IsActive           bool
	IsDefaultAdmin     bool
	BootstrapPending   bool       // primer login con la contraseña por defecto aún disponible
	BootstrapExpiresAt *time.Time // fin de la ventana del primer login
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Owner devuelve la referencia de dueño de este principal.
func (u *User) Owner() OwnerRef {
	return OwnerRef{Email: u.Email, RegistrationNumber: u.RegistrationNumber}
}
