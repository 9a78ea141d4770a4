package repository

import "context"

// SchemaManager primitiva de creación/eliminación de espacios de nombres por tenant.
type SchemaManager interface {
	// Create crea el esquema y sus tablas de credenciales. Esquema existente => domain.ErrSchemaNameTaken.
	Create(ctx context.Context, schemaName string) error
	Drop(ctx context.Context, schemaName string) error
}
