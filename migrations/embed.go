// Package migrations embebe el SQL del esquema public.
package migrations

import "embed"

// FS migraciones numeradas (golang-migrate: NNNNNN_nombre.up.sql / .down.sql).
//
//go:embed *.sql
var FS embed.FS
