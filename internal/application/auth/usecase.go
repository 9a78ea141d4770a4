// Package auth verifica credenciales en el esquema resuelto (public o tenant), emite tokens
// con alcance de esquema y gestiona el registro público y el cambio de contraseña.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
	"github.com/jhoicas/Campus-api/pkg/jwt"
)

// Config configuración de emisión de tokens y primer login.
type Config struct {
	Secret               string
	Issuer               string
	AccessTTL            time.Duration
	RefreshTTL           time.Duration
	DefaultAdminPassword string
}

// Principal identidad extraída de un access token ya verificado contra el esquema de la petición.
type Principal struct {
	UserID string
	Schema string
	Role   string
}

// Tokens par emitido para un principal.
type Tokens struct {
	Access  string
	Refresh string
	Role    string
	Schema  string
}

// UseCase autenticador + emisor de tokens.
type UseCase struct {
	users  repository.UserRepository
	public Strategy
	tenant Strategy
	cfg    Config
	log    zerolog.Logger
	now    func() time.Time
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, cfg Config, log zerolog.Logger) *UseCase {
	return newUseCase(users, cfg, log, time.Now)
}

// NewUseCaseWithClock igual que NewUseCase con reloj inyectado (tests).
func NewUseCaseWithClock(users repository.UserRepository, cfg Config, log zerolog.Logger, now func() time.Time) *UseCase {
	return newUseCase(users, cfg, log, now)
}

func newUseCase(users repository.UserRepository, cfg Config, log zerolog.Logger, now func() time.Time) *UseCase {
	return &UseCase{
		users:  users,
		public: NewPublicStrategy(users),
		tenant: NewTenantStrategy(users, cfg.DefaultAdminPassword, now),
		cfg:    cfg,
		log:    log,
		now:    now,
	}
}

// StrategyFor selecciona la estrategia de forma determinista por el esquema activo.
func (uc *UseCase) StrategyFor(schema string) Strategy {
	if schema == entity.PublicSchema {
		return uc.public
	}
	return uc.tenant
}

// Authenticate verifica identifier/password en schema. El log de fallos solo lleva esquema
// y estrategia: ni la causa ni el identificador.
func (uc *UseCase) Authenticate(ctx context.Context, schema, identifier, password string) (*Result, error) {
	s := uc.StrategyFor(schema)
	res, err := s.Authenticate(ctx, schema, Credentials{Identifier: identifier, Password: password})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			uc.log.Info().Str("schema", schema).Str("strategy", s.Name()).Msg("autenticación fallida")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if res.Bootstrap {
		uc.log.Warn().Str("schema", schema).Str("user_id", res.User.ID).Msg("primer login por contraseña por defecto")
	}
	return res, nil
}

// Login autentica según el esquema resuelto y emite tokens. En public se usa el email; en un
// tenant, el número de registro.
func (uc *UseCase) Login(ctx context.Context, schema string, in dto.LoginRequest) (*dto.TokenResponse, error) {
	identifier := in.Email
	if schema != entity.PublicSchema {
		identifier = in.RegistrationNumber
	}
	res, err := uc.Authenticate(ctx, schema, identifier, in.Password)
	if err != nil {
		return nil, err
	}
	tokens, err := uc.Issue(res.User)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		Access:             tokens.Access,
		Refresh:            tokens.Refresh,
		Role:               tokens.Role,
		Schema:             tokens.Schema,
		Dashboard:          DashboardFor(tokens.Role),
		MustChangePassword: res.Bootstrap || (res.User.IsDefaultAdmin && res.User.BootstrapPending),
	}, nil
}

// Issue emite access + refresh con el rol y el esquema del principal. Sin estado en servidor.
func (uc *UseCase) Issue(u *entity.User) (*Tokens, error) {
	if u == nil || u.Schema == "" {
		return nil, domain.ErrInvalidInput
	}
	access, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Schema, u.Role, jwt.TypeAccess, uc.cfg.Issuer, uc.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Schema, u.Role, jwt.TypeRefresh, uc.cfg.Issuer, uc.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &Tokens{Access: access, Refresh: refresh, Role: u.Role, Schema: u.Schema}, nil
}

// VerifyAccess valida un access token y exige que su esquema sea el de la petición.
func (uc *UseCase) VerifyAccess(token, requestSchema string) (*Principal, error) {
	return uc.verify(token, jwt.TypeAccess, requestSchema)
}

// Refresh emite un access nuevo a partir de un refresh del mismo esquema. No rota el refresh.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken, requestSchema string) (*dto.RefreshResponse, error) {
	p, err := uc.verify(refreshToken, jwt.TypeRefresh, requestSchema)
	if err != nil {
		return nil, err
	}
	u, err := uc.users.GetByID(ctx, p.Schema, p.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Schema, u.Role, jwt.TypeAccess, uc.cfg.Issuer, uc.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Access: access}, nil
}

func (uc *UseCase) verify(token, tokenType, requestSchema string) (*Principal, error) {
	claims, err := jwt.Parse(uc.cfg.Secret, uc.cfg.Issuer, token)
	if err != nil || claims.Type != tokenType || claims.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if claims.Schema != requestSchema {
		uc.log.Warn().Str("token_schema", claims.Schema).Str("request_schema", requestSchema).Msg("token de otro esquema rechazado")
		return nil, domain.ErrCrossSchemaToken
	}
	return &Principal{UserID: claims.UserID, Schema: claims.Schema, Role: claims.Role}, nil
}

// CurrentUser carga el principal del token desde su esquema.
func (uc *UseCase) CurrentUser(ctx context.Context, p *Principal) (*entity.User, error) {
	if p == nil {
		return nil, domain.ErrUnauthorized
	}
	u, err := uc.users.GetByID(ctx, p.Schema, p.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

// Me perfil del principal autenticado.
func (uc *UseCase) Me(ctx context.Context, p *Principal) (*dto.UserResponse, error) {
	u, err := uc.CurrentUser(ctx, p)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Signup registra un client en el esquema public.
func (uc *UseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.createPublic(ctx, in.Username, in.Email, in.Password, entity.RoleClient)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// CreateSuperAdmin crea un superadmin en public (CLI de siembra).
func (uc *UseCase) CreateSuperAdmin(ctx context.Context, username, email, password string) (*dto.UserResponse, error) {
	u, err := uc.createPublic(ctx, username, email, password, entity.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

func (uc *UseCase) createPublic(ctx context.Context, username, email, password, role string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if username == "" {
		username = email
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	u := &entity.User{
		ID:           uuid.New().String(),
		Schema:       entity.PublicSchema,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, entity.PublicSchema, u); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", u.ID).Str("role", role).Msg("principal público creado")
	return u, nil
}

// ChangePassword cambia la contraseña del principal y cierra su primer login pendiente.
// Dentro de la ventana de primer login, el admin por defecto puede dar la contraseña por
// defecto como contraseña actual.
func (uc *UseCase) ChangePassword(ctx context.Context, p *Principal, in dto.ChangePasswordRequest) error {
	if in.NewPassword != in.ConfirmPassword || in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	u, err := uc.CurrentUser(ctx, p)
	if err != nil {
		return err
	}
	if !passwordMatches(u, in.OldPassword) && !uc.bootstrapOldPassword(u, in.OldPassword) {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(ctx, u.Schema, u.ID, string(hash)); err != nil {
		return err
	}
	uc.log.Info().Str("schema", u.Schema).Str("user_id", u.ID).Msg("contraseña actualizada")
	return nil
}

func (uc *UseCase) bootstrapOldPassword(u *entity.User, old string) bool {
	if !u.IsDefaultAdmin || u.PasswordHash != "" || !BootstrapWindowOpen(u, uc.now()) || uc.cfg.DefaultAdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(old), []byte(uc.cfg.DefaultAdminPassword)) == 1
}

// DashboardFor ruta del panel para cada rol.
func DashboardFor(role string) string {
	switch role {
	case entity.RoleSuperAdmin:
		return "/superadmin/dashboard"
	case entity.RoleClient:
		return "/admin/dashboard"
	case entity.RoleInstructor:
		return "/instructor/dashboard"
	case entity.RoleStudent:
		return "/student/dashboard"
	default:
		return "/"
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:                 u.ID,
		Schema:             u.Schema,
		Username:           u.Username,
		Email:              u.Email,
		RegistrationNumber: u.RegistrationNumber,
		Role:               u.Role,
		IsDefaultAdmin:     u.IsDefaultAdmin,
		MustChangePassword: u.IsDefaultAdmin && u.BootstrapPending,
		CreatedAt:          u.CreatedAt,
	}
}
