package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx: los repositorios aceptan cualquiera
// de los dos y así funcionan dentro y fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Códigos SQLSTATE usados.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
	codeDuplicateSchema = "42P06"
	codeUndefinedTable  = "42P01"
)

func pgCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	code, _ := pgCode(err)
	if code != "" {
		return code == codeUniqueViolation
	}
	return err != nil && strings.Contains(err.Error(), codeUniqueViolation)
}

// violatedConstraint devuelve el constraint violado (único o check), o "".
func violatedConstraint(err error) string {
	code, name := pgCode(err)
	if code == codeUniqueViolation || code == codeCheckViolation {
		return name
	}
	return ""
}

func isDuplicateSchema(err error) bool {
	code, _ := pgCode(err)
	return code == codeDuplicateSchema
}

func isUndefinedTable(err error) bool {
	code, _ := pgCode(err)
	return code == codeUndefinedTable
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// qualified devuelve "schema"."table" con comillas de identificador.
func qualified(schema, table string) string {
	return pgx.Identifier{schema, table}.Sanitize()
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// countByMonth cuenta filas de table con created_at >= since, agrupadas por mes UTC.
func countByMonth(ctx context.Context, q Querier, table string, since time.Time) (map[string]int, error) {
	rows, err := q.Query(ctx, `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month, count(*)
		FROM `+table+`
		WHERE created_at >= $1
		GROUP BY month`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var (
			month string
			n     int
		)
		if err := rows.Scan(&month, &n); err != nil {
			return nil, err
		}
		out[month] = n
	}
	return out, rows.Err()
}
