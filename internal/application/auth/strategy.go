package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
	"github.com/jhoicas/Campus-api/internal/domain/tenancy"
)

// Credentials identificador + password de un intento de login.
type Credentials struct {
	Identifier string
	Password   string
}

// Result principal verificado. Bootstrap indica que entró por el puente de primer login.
type Result struct {
	User      *entity.User
	Bootstrap bool
}

// Strategy verificación de credenciales dentro de un esquema concreto.
// Cualquier fallo devuelve domain.ErrInvalidCredentials sin distinguir la causa.
type Strategy interface {
	Name() string
	Authenticate(ctx context.Context, schema string, c Credentials) (*Result, error)
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// equalizeTiming compara contra un hash ficticio para que un identificador inexistente
// tarde lo mismo que una contraseña incorrecta.
func equalizeTiming(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("campus-dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func passwordMatches(u *entity.User, password string) bool {
	if u.PasswordHash == "" {
		equalizeTiming(password)
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ── Esquema public: email + password ─────────────────────────────────────────

// PublicStrategy autentica principales del esquema public por email. Nunca busca por número de registro.
type PublicStrategy struct {
	users repository.UserRepository
}

// NewPublicStrategy construye la estrategia del esquema public.
func NewPublicStrategy(users repository.UserRepository) *PublicStrategy {
	return &PublicStrategy{users: users}
}

// Name nombre para logs.
func (s *PublicStrategy) Name() string { return "public_email" }

// Authenticate busca por email solo en public.
func (s *PublicStrategy) Authenticate(ctx context.Context, schema string, c Credentials) (*Result, error) {
	if schema != entity.PublicSchema {
		return nil, domain.ErrInvalidCredentials
	}
	email := strings.ToLower(strings.TrimSpace(c.Identifier))
	if email == "" || c.Password == "" {
		equalizeTiming(c.Password)
		return nil, domain.ErrInvalidCredentials
	}
	u, err := s.users.GetByEmail(ctx, entity.PublicSchema, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		equalizeTiming(c.Password)
		return nil, domain.ErrInvalidCredentials
	}
	if !passwordMatches(u, c.Password) || !u.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	return &Result{User: u}, nil
}

// ── Esquema de tenant: número de registro + password ─────────────────────────

// TenantStrategy autentica principales de un esquema de institución por número de registro.
// Rechaza siempre el esquema public.
type TenantStrategy struct {
	users           repository.UserRepository
	defaultPassword string
	now             func() time.Time
}

// NewTenantStrategy construye la estrategia de tenant. defaultPassword habilita el puente
// de primer login del administrador por defecto.
func NewTenantStrategy(users repository.UserRepository, defaultPassword string, now func() time.Time) *TenantStrategy {
	if now == nil {
		now = time.Now
	}
	return &TenantStrategy{users: users, defaultPassword: defaultPassword, now: now}
}

// Name nombre para logs.
func (s *TenantStrategy) Name() string { return "tenant_registration_number" }

// Authenticate busca por número de registro dentro de schema.
func (s *TenantStrategy) Authenticate(ctx context.Context, schema string, c Credentials) (*Result, error) {
	if schema == "" || schema == entity.PublicSchema {
		return nil, domain.ErrInvalidCredentials
	}
	reg := tenancy.NormalizeRegistrationNumber(c.Identifier)
	if reg == "" || c.Password == "" {
		equalizeTiming(c.Password)
		return nil, domain.ErrInvalidCredentials
	}
	u, err := s.users.GetByRegistrationNumber(ctx, schema, reg)
	if err != nil {
		return nil, err
	}
	if u == nil {
		equalizeTiming(c.Password)
		return nil, domain.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if passwordMatches(u, c.Password) {
		return &Result{User: u}, nil
	}
	return s.bootstrap(ctx, schema, u, c.Password)
}

// bootstrap puente de primer login: solo role client, con la marca de un solo uso vigente
// y la contraseña por defecto. Consumir la marca es atómico; un segundo intento falla.
func (s *TenantStrategy) bootstrap(ctx context.Context, schema string, u *entity.User, password string) (*Result, error) {
	now := s.now()
	if !BootstrapWindowOpen(u, now) || !u.BootstrapPending || s.defaultPassword == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.defaultPassword)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}
	ok, err := s.users.ConsumeBootstrap(ctx, schema, u.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	u.BootstrapPending = false
	return &Result{User: u, Bootstrap: true}, nil
}

// BootstrapWindowOpen informa si u es un client cuya ventana de primer login sigue abierta en now.
func BootstrapWindowOpen(u *entity.User, now time.Time) bool {
	return u != nil && u.Role == entity.RoleClient && u.BootstrapExpiresAt != nil && now.Before(*u.BootstrapExpiresAt)
}
