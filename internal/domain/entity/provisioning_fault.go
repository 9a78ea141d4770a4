package entity

import "time"

// Pasos del aprovisionamiento, en orden.
const (
	StepTenantRecord = "tenant_record"
	StepDomain       = "domain"
	StepSchema       = "schema"
	StepDefaultAdmin = "default_admin"
	StepCommit       = "commit"
)

// ProvisioningFault registro para reconciliación de un aprovisionamiento que falló
// después de empezar a crear el esquema.
type ProvisioningFault struct {
	ID         string
	SchemaName string
	Step       string
	Error      string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
