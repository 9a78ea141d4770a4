package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo almacén de credenciales: la tabla users del esquema indicado en cada llamada.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, email, registration_number, password_hash, role, is_active,
	is_default_admin, bootstrap_pending, bootstrap_expires_at, created_at, updated_at`

func scanUser(row pgx.Row, schema string) (*entity.User, error) {
	var (
		u   entity.User
		reg *string
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &reg, &u.PasswordHash, &u.Role, &u.IsActive,
		&u.IsDefaultAdmin, &u.BootstrapPending, &u.BootstrapExpiresAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.RegistrationNumber = stringValue(reg)
	u.Schema = schema
	return &u, nil
}

func (r *UserRepo) one(ctx context.Context, schema, op, where string, args ...any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM ` + qualified(schema, "users") + ` WHERE ` + where + ` LIMIT 1`
	u, err := scanUser(r.q.QueryRow(ctx, query, args...), schema)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapUserErr(op, schema, err)
	}
	return u, nil
}

// wrapUserErr traduce una tabla inexistente (esquema sin aprovisionar) a tenant desconocido.
func wrapUserErr(op, schema string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s en %s: %w", op, schema, domain.ErrUnknownTenant)
	}
	return fmt.Errorf("%s en %s: %w", op, schema, err)
}

// Create persiste un nuevo principal en schema.
func (r *UserRepo) Create(ctx context.Context, schema string, u *entity.User) error {
	query := `INSERT INTO ` + qualified(schema, "users") + ` (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Username, u.Email, nullableString(u.RegistrationNumber), u.PasswordHash, u.Role, u.IsActive,
		u.IsDefaultAdmin, u.BootstrapPending, u.BootstrapExpiresAt, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		switch violatedConstraint(err) {
		case "users_email_key":
			return domain.ErrEmailAlreadyExists
		case "users_registration_number_key":
			return domain.ErrRegistrationNumberTaken
		case "users_default_admin_key":
			return domain.ErrDuplicate
		}
		return wrapUserErr("insert user", schema, err)
	}
	u.Schema = schema
	return nil
}

// GetByID obtiene un principal por ID.
func (r *UserRepo) GetByID(ctx context.Context, schema, id string) (*entity.User, error) {
	return r.one(ctx, schema, "get user by id", `id = $1`, id)
}

// GetByEmail obtiene un principal por email (ya normalizado en minúsculas).
func (r *UserRepo) GetByEmail(ctx context.Context, schema, email string) (*entity.User, error) {
	return r.one(ctx, schema, "get user by email", `email = $1`, email)
}

// GetByRegistrationNumber obtiene un principal por número de registro (ya en mayúsculas).
func (r *UserRepo) GetByRegistrationNumber(ctx context.Context, schema, registrationNumber string) (*entity.User, error) {
	return r.one(ctx, schema, "get user by registration number", `registration_number = $1`, registrationNumber)
}

// GetDefaultAdmin obtiene el admin por defecto del esquema.
func (r *UserRepo) GetDefaultAdmin(ctx context.Context, schema string) (*entity.User, error) {
	return r.one(ctx, schema, "get default admin", `is_default_admin`)
}

// CountWithPrefix cuenta números de registro PREFIJO-*.
func (r *UserRepo) CountWithPrefix(ctx context.Context, schema, prefix string) (int, error) {
	var n int
	query := `SELECT count(*) FROM ` + qualified(schema, "users") + ` WHERE registration_number LIKE $1`
	if err := r.q.QueryRow(ctx, query, prefix+"-%").Scan(&n); err != nil {
		return 0, wrapUserErr("count users by prefix", schema, err)
	}
	return n, nil
}

// Count cantidad de principales del esquema.
func (r *UserRepo) Count(ctx context.Context, schema string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM `+qualified(schema, "users")).Scan(&n); err != nil {
		return 0, wrapUserErr("count users", schema, err)
	}
	return n, nil
}

// CountJoinedByMonth principales de schema creados desde since, por mes UTC.
func (r *UserRepo) CountJoinedByMonth(ctx context.Context, schema string, since time.Time) (map[string]int, error) {
	out, err := countByMonth(ctx, r.q, qualified(schema, "users"), since)
	if err != nil {
		return nil, wrapUserErr("count users by month", schema, err)
	}
	return out, nil
}

// UpdatePassword reemplaza el hash y cierra el primer login pendiente.
func (r *UserRepo) UpdatePassword(ctx context.Context, schema, id, passwordHash string) error {
	query := `UPDATE ` + qualified(schema, "users") + `
		SET password_hash = $2, bootstrap_pending = false, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return wrapUserErr("update password", schema, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ConsumeBootstrap apaga la marca de primer login si seguía vigente en now. Una sola sentencia:
// dos logins simultáneos no pueden consumirla ambos.
func (r *UserRepo) ConsumeBootstrap(ctx context.Context, schema, id string, now time.Time) (bool, error) {
	query := `UPDATE ` + qualified(schema, "users") + `
		SET bootstrap_pending = false, updated_at = now()
		WHERE id = $1 AND bootstrap_pending AND bootstrap_expires_at > $2`
	tag, err := r.q.Exec(ctx, query, id, now)
	if err != nil {
		return false, wrapUserErr("consume bootstrap", schema, err)
	}
	return tag.RowsAffected() == 1, nil
}
