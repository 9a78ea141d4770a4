package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
	"github.com/jhoicas/Campus-api/internal/domain/tenancy"
)

var _ repository.SchemaManager = (*SchemaManager)(nil)

// SchemaManager crea y elimina esquemas de tenant. Dentro de una tx el DDL se revierte con ella.
type SchemaManager struct {
	q Querier
}

// NewSchemaManager construye el gestor de esquemas. Pasar pool o tx.
func NewSchemaManager(q Querier) *SchemaManager {
	return &SchemaManager{q: q}
}

// tenantDDL tablas de credenciales de un esquema de tenant. Mismas columnas que public.users,
// sin unicidad de email (el admin por defecto comparte el email del dueño).
func tenantDDL(schema string) []string {
	users := qualified(schema, "users")
	return []string{
		`CREATE TABLE ` + users + ` (
			id                    UUID PRIMARY KEY,
			username              TEXT        NOT NULL,
			email                 TEXT        NOT NULL DEFAULT '',
			registration_number   TEXT,
			password_hash         TEXT        NOT NULL DEFAULT '',
			role                  TEXT        NOT NULL CHECK (role IN ('client', 'student', 'instructor')),
			is_active             BOOLEAN     NOT NULL DEFAULT true,
			is_default_admin      BOOLEAN     NOT NULL DEFAULT false,
			bootstrap_pending     BOOLEAN     NOT NULL DEFAULT false,
			bootstrap_expires_at  TIMESTAMPTZ,
			created_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT users_registration_number_upper CHECK (registration_number = upper(registration_number))
		)`,
		`CREATE UNIQUE INDEX users_registration_number_key ON ` + users + ` (registration_number) WHERE registration_number IS NOT NULL`,
		`CREATE UNIQUE INDEX users_default_admin_key ON ` + users + ` (is_default_admin) WHERE is_default_admin`,
	}
}

// Create crea el esquema y sus tablas. Un esquema existente devuelve domain.ErrSchemaNameTaken.
func (m *SchemaManager) Create(ctx context.Context, schemaName string) error {
	name, err := tenancy.NormalizeSchemaName(schemaName)
	if err != nil {
		return err
	}
	if name != schemaName {
		return domain.ErrInvalidSchemaName
	}
	if _, err := m.q.Exec(ctx, `CREATE SCHEMA `+pgx.Identifier{name}.Sanitize()); err != nil {
		if isDuplicateSchema(err) {
			return domain.ErrSchemaNameTaken
		}
		return fmt.Errorf("create schema %s: %w", name, err)
	}
	for _, stmt := range tenantDDL(name) {
		if _, err := m.q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create tables in %s: %w", name, err)
		}
	}
	return nil
}

// Drop elimina el esquema y todo su contenido. public nunca se elimina.
func (m *SchemaManager) Drop(ctx context.Context, schemaName string) error {
	if schemaName == "" || schemaName == entity.PublicSchema {
		return domain.ErrSchemaNameReserved
	}
	if _, err := m.q.Exec(ctx, `DROP SCHEMA IF EXISTS `+pgx.Identifier{schemaName}.Sanitize()+` CASCADE`); err != nil {
		return fmt.Errorf("drop schema %s: %w", schemaName, err)
	}
	return nil
}
