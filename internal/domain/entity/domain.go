package entity

import "time"

// Domain es un dominio completo (FQDN) asociado a un tenant. Único globalmente.
type Domain struct {
	ID        string
	Domain    string
	TenantID  string
	IsPrimary bool
	CreatedAt time.Time
}
