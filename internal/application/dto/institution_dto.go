package dto

import "time"

// CreateInstitutionRequest descriptor de una nueva institución.
type CreateInstitutionRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=200"`
	SchemaName string `json:"schema_name" validate:"required,max=63"`
	Domain     string `json:"domain" validate:"required,max=253"`
	Location   string `json:"location" validate:"omitempty,max=200"`
	Contacts   string `json:"contacts" validate:"omitempty,max=200"`
	Website    string `json:"website" validate:"omitempty,max=200"`
	Plan       string `json:"plan" validate:"required,oneof=free premium"`
}

// UpdateInstitutionRequest actualización parcial: los campos omitidos no cambian.
type UpdateInstitutionRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=200"`
	Location *string `json:"location" validate:"omitempty,max=200"`
	Contacts *string `json:"contacts" validate:"omitempty,max=200"`
	Website  *string `json:"website" validate:"omitempty,max=200"`
}

// InstitutionResponse salida de una institución.
type InstitutionResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	SchemaName         string    `json:"schema_name"`
	RegistrationNumber string    `json:"registration_number"`
	Domain             string    `json:"domain,omitempty"`
	Location           string    `json:"location,omitempty"`
	Contacts           string    `json:"contacts,omitempty"`
	Website            string    `json:"website,omitempty"`
	Plan               string    `json:"plan"`
	State              string    `json:"state"`
	IsActive           bool      `json:"is_active"`
	PaidUntil          *string   `json:"paid_until"`
	OwnerEmail         string    `json:"owner_email,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// AdminLogin credenciales iniciales del administrador por defecto.
type AdminLogin struct {
	RegistrationNumber string `json:"registration_number"`
	DefaultPassword    string `json:"default_password"`
}

// ProvisionResponse resultado de aprovisionar una institución.
type ProvisionResponse struct {
	Institution   InstitutionResponse `json:"institution"`
	Subdomain     string              `json:"subdomain"`
	DomainCreated bool                `json:"domain_created"`
	AdminLogin    AdminLogin          `json:"admin_login"`
}

// InstitutionListResponse listado de instituciones.
type InstitutionListResponse struct {
	Items []InstitutionResponse `json:"items"`
	Total int                   `json:"total"`
}

// InstitutionStatsResponse métricas del panel superadmin.
type InstitutionStatsResponse struct {
	Institutions int `json:"institutions"`
	PublicUsers  int `json:"public_users"`
}

// MonthlyActivity altas de un mes en el panel superadmin.
type MonthlyActivity struct {
	Month        string `json:"month"` // 2006-01
	Institutions int    `json:"institutions"`
	Signups      int    `json:"signups"`
}

// InstitutionAnalyticsResponse actividad de los últimos meses, del más antiguo al actual.
type InstitutionAnalyticsResponse struct {
	Months []MonthlyActivity `json:"months"`
}

// DomainResponse salida de un dominio registrado.
type DomainResponse struct {
	Domain    string    `json:"domain"`
	TenantID  string    `json:"tenant_id"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

// RenewRequest meses a extender (12 si se omite).
type RenewRequest struct {
	Months int `json:"months" validate:"omitempty,min=1,max=60"`
}

// TenantStatusResponse estado de activación de una institución.
type TenantStatusResponse struct {
	SchemaName string  `json:"schema_name"`
	Active     bool    `json:"active"`
	State      string  `json:"state"`
	Plan       string  `json:"plan"`
	PaidUntil  *string `json:"paid_until"`
}

// CredentialsResponse ficha de acceso del administrador por defecto.
// DefaultPassword solo se informa mientras el primer login sigue pendiente.
type CredentialsResponse struct {
	InstitutionName    string     `json:"institution_name"`
	SchemaName         string     `json:"schema_name"`
	Domain             string     `json:"domain,omitempty"`
	RegistrationNumber string     `json:"registration_number"`
	DefaultPassword    string     `json:"default_password,omitempty"`
	BootstrapPending   bool       `json:"bootstrap_pending"`
	BootstrapExpiresAt *time.Time `json:"bootstrap_expires_at,omitempty"`
}

// ProvisioningFaultResponse registro abierto de reconciliación.
type ProvisioningFaultResponse struct {
	ID         string    `json:"id"`
	SchemaName string    `json:"schema_name"`
	Step       string    `json:"step"`
	Error      string    `json:"error"`
	CreatedAt  time.Time `json:"created_at"`
}

// TenantInfoResponse perfil público de la institución resuelta por el host.
type TenantInfoResponse struct {
	Name       string `json:"name"`
	SchemaName string `json:"schema_name"`
	Location   string `json:"location,omitempty"`
	Contacts   string `json:"contacts,omitempty"`
	Website    string `json:"website,omitempty"`
	Plan       string `json:"plan"`
	IsActive   bool   `json:"is_active"`
}
