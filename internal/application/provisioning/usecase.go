// Package provisioning crea instituciones (registro, dominio, esquema y administrador por
// defecto) y gestiona su ciclo de vida: listado, credenciales y eliminación.
package provisioning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
	"github.com/jhoicas/Campus-api/internal/domain/tenancy"
)

// Config reglas de aprovisionamiento.
type Config struct {
	DomainSuffix         string
	TrialDays            int
	DefaultAdminPassword string
	BootstrapWindow      time.Duration
}

// UseCase motor de aprovisionamiento y ciclo de vida de instituciones.
type UseCase struct {
	tx       TxRunner
	tenants  repository.TenantRepository
	domains  repository.DomainRepository
	users    repository.UserRepository
	faults   repository.ProvisioningFaultRepository
	cache    CacheInvalidator
	renderer CredentialsRenderer
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. cache y renderer pueden ser nil.
func NewUseCase(
	tx TxRunner,
	tenants repository.TenantRepository,
	domains repository.DomainRepository,
	users repository.UserRepository,
	faults repository.ProvisioningFaultRepository,
	cache CacheInvalidator,
	renderer CredentialsRenderer,
	cfg Config,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		tx: tx, tenants: tenants, domains: domains, users: users, faults: faults,
		cache: cache, renderer: renderer, cfg: cfg, log: log, now: time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Provision crea la institución descrita por in a nombre de owner. Todo ocurre en una
// transacción: un nombre de esquema tomado (incluso por una petición concurrente) devuelve
// domain.ErrSchemaNameTaken sin dejar esquema, dominio ni credencial.
func (uc *UseCase) Provision(ctx context.Context, in dto.CreateInstitutionRequest, owner *entity.User) (*dto.ProvisionResponse, error) {
	if owner == nil || (owner.Role != entity.RoleClient && owner.Role != entity.RoleSuperAdmin) {
		return nil, domain.ErrForbidden
	}
	schemaName, err := tenancy.NormalizeSchemaName(in.SchemaName)
	if err != nil {
		return nil, err
	}
	fqdn, err := tenancy.NormalizeDomain(in.Domain, uc.cfg.DomainSuffix)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now().UTC()
	state, paidUntil, err := tenancy.InitialState(in.Plan, now, uc.cfg.TrialDays)
	if err != nil {
		return nil, err
	}

	tenant := &entity.Tenant{
		ID:                 uuid.New().String(),
		Name:               name,
		SchemaName:         schemaName,
		RegistrationNumber: newRegistrationReference(),
		Location:           strings.TrimSpace(in.Location),
		Contacts:           strings.TrimSpace(in.Contacts),
		Website:            strings.TrimSpace(in.Website),
		Plan:               in.Plan,
		State:              state,
		PaidUntil:          paidUntil,
		Owner:              owner.Owner(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	var (
		admin         *entity.User
		domainCreated bool
		step          string
	)
	err = uc.tx.RunProvisioning(ctx, func(
		tenants repository.TenantRepository,
		domains repository.DomainRepository,
		schemas repository.SchemaManager,
		users repository.UserRepository,
	) error {
		step = entity.StepTenantRecord
		if err := tenants.Create(ctx, tenant); err != nil {
			return err
		}

		step = entity.StepDomain
		created, err := domains.Create(ctx, &entity.Domain{
			ID: uuid.New().String(), Domain: fqdn, TenantID: tenant.ID, IsPrimary: true, CreatedAt: now,
		})
		if err != nil {
			return err
		}
		domainCreated = created

		step = entity.StepSchema
		if err := schemas.Create(ctx, schemaName); err != nil {
			return err
		}

		step = entity.StepDefaultAdmin
		admin, err = uc.ensureDefaultAdmin(ctx, users, tenant, now)
		if err != nil {
			return err
		}

		step = entity.StepCommit
		return nil
	})
	if err != nil {
		return nil, uc.provisionFailed(ctx, schemaName, step, err)
	}

	if domainCreated {
		tenant.Domain = fqdn
	} else {
		uc.log.Info().Str("schema", schemaName).Str("domain", fqdn).Msg("dominio ya registrado, se omite")
	}
	uc.log.Info().Str("schema", schemaName).Str("plan", tenant.Plan).Str("state", tenant.State).Msg("institución aprovisionada")

	return &dto.ProvisionResponse{
		Institution:   *toInstitutionResponse(tenant, now),
		Subdomain:     fqdn,
		DomainCreated: domainCreated,
		AdminLogin: dto.AdminLogin{
			RegistrationNumber: admin.RegistrationNumber,
			DefaultPassword:    uc.cfg.DefaultAdminPassword,
		},
	}, nil
}

// ensureDefaultAdmin crea el único administrador por defecto del esquema, o devuelve el existente.
// Se crea sin hash: la contraseña por defecto solo vale por el puente de primer login.
func (uc *UseCase) ensureDefaultAdmin(ctx context.Context, users repository.UserRepository, tenant *entity.Tenant, now time.Time) (*entity.User, error) {
	existing, err := users.GetDefaultAdmin(ctx, tenant.SchemaName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	prefix := tenancy.AdminPrefix(tenant.Name)
	n, err := users.CountWithPrefix(ctx, tenant.SchemaName, prefix)
	if err != nil {
		return nil, err
	}
	expires := now.Add(uc.cfg.BootstrapWindow)
	regNumber := tenancy.AdminRegistrationNumber(prefix, n+1)
	admin := &entity.User{
		ID:                 uuid.New().String(),
		Schema:             tenant.SchemaName,
		Username:           strings.ToLower(regNumber),
		Email:              tenant.Owner.Email,
		RegistrationNumber: regNumber,
		Role:               entity.RoleClient,
		IsActive:           true,
		IsDefaultAdmin:     true,
		BootstrapPending:   true,
		BootstrapExpiresAt: &expires,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := users.Create(ctx, tenant.SchemaName, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// provisionFailed clasifica el error. Los fallos posteriores a la creación del esquema se
// registran para reconciliación aunque la transacción los haya revertido.
func (uc *UseCase) provisionFailed(ctx context.Context, schemaName, step string, err error) error {
	if step != entity.StepDefaultAdmin && step != entity.StepCommit {
		return err
	}

	uc.log.Error().Err(err).
		Str("fault_class", "provisioning_partial").
		Str("schema", schemaName).
		Str("step", step).
		Msg("aprovisionamiento incompleto")

	fault := &entity.ProvisioningFault{
		ID:         uuid.New().String(),
		SchemaName: schemaName,
		Step:       step,
		Error:      err.Error(),
		CreatedAt:  uc.now().UTC(),
	}
	if rerr := uc.faults.Record(context.WithoutCancel(ctx), fault); rerr != nil {
		uc.log.Error().Err(rerr).Str("schema", schemaName).Msg("no se pudo registrar la falla de aprovisionamiento")
	}
	return domain.ErrProvisioningPartialFailure
}

// newRegistrationReference genera la referencia global de la institución (INST-XXXXXX).
func newRegistrationReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "INST-" + strings.ToUpper(id[:6])
}

// ── Ciclo de vida ─────────────────────────────────────────────────────────────

// List devuelve todas las instituciones al superadmin y las propias a un client.
func (uc *UseCase) List(ctx context.Context, actor *entity.User) (*dto.InstitutionListResponse, error) {
	var (
		list []*entity.Tenant
		err  error
	)
	switch actor.Role {
	case entity.RoleSuperAdmin:
		list, err = uc.tenants.List(ctx)
	case entity.RoleClient:
		list, err = uc.tenants.ListByOwner(ctx, actor.Owner())
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	now := uc.now()
	items := make([]dto.InstitutionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toInstitutionResponse(t, now))
	}
	return &dto.InstitutionListResponse{Items: items, Total: len(items)}, nil
}

// Stats métricas del panel superadmin.
func (uc *UseCase) Stats(ctx context.Context) (*dto.InstitutionStatsResponse, error) {
	n, err := uc.tenants.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.users.Count(ctx, entity.PublicSchema)
	if err != nil {
		return nil, err
	}
	return &dto.InstitutionStatsResponse{Institutions: n, PublicUsers: users}, nil
}

// AnalyticsMonths meses que cubre Analytics, incluido el actual.
const AnalyticsMonths = 6

// Analytics instituciones creadas y principales públicos registrados por mes, en los
// últimos AnalyticsMonths meses.
func (uc *UseCase) Analytics(ctx context.Context) (*dto.InstitutionAnalyticsResponse, error) {
	now := uc.now().UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	since := current.AddDate(0, -(AnalyticsMonths - 1), 0)

	created, err := uc.tenants.CountCreatedByMonth(ctx, since)
	if err != nil {
		return nil, err
	}
	joined, err := uc.users.CountJoinedByMonth(ctx, entity.PublicSchema, since)
	if err != nil {
		return nil, err
	}
	out := &dto.InstitutionAnalyticsResponse{Months: make([]dto.MonthlyActivity, 0, AnalyticsMonths)}
	for m := since; !m.After(current); m = m.AddDate(0, 1, 0) {
		key := m.Format(dto.MonthLayout)
		out.Months = append(out.Months, dto.MonthlyActivity{Month: key, Institutions: created[key], Signups: joined[key]})
	}
	return out, nil
}

// Domains lista los dominios registrados.
func (uc *UseCase) Domains(ctx context.Context) ([]dto.DomainResponse, error) {
	list, err := uc.domains.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DomainResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.DomainResponse{Domain: d.Domain, TenantID: d.TenantID, IsPrimary: d.IsPrimary, CreatedAt: d.CreatedAt})
	}
	return out, nil
}

// Faults lista los aprovisionamientos pendientes de reconciliación.
func (uc *UseCase) Faults(ctx context.Context) ([]dto.ProvisioningFaultResponse, error) {
	list, err := uc.faults.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProvisioningFaultResponse, 0, len(list))
	for _, f := range list {
		out = append(out, dto.ProvisioningFaultResponse{ID: f.ID, SchemaName: f.SchemaName, Step: f.Step, Error: f.Error, CreatedAt: f.CreatedAt})
	}
	return out, nil
}

// Delete elimina registro, dominios y esquema en una transacción. Solo superadmin o dueño.
func (uc *UseCase) Delete(ctx context.Context, schemaName string, actor *entity.User) error {
	tenant, err := uc.Authorize(ctx, schemaName, actor)
	if err != nil {
		return err
	}
	var removed []string
	err = uc.tx.RunProvisioning(ctx, func(
		tenants repository.TenantRepository,
		domains repository.DomainRepository,
		schemas repository.SchemaManager,
		_ repository.UserRepository,
	) error {
		var err error
		if removed, err = domains.DeleteByTenant(ctx, tenant.ID); err != nil {
			return err
		}
		if err := schemas.Drop(ctx, tenant.SchemaName); err != nil {
			return err
		}
		return tenants.Delete(ctx, tenant.SchemaName)
	})
	if err != nil {
		return fmt.Errorf("delete institution %s: %w", tenant.SchemaName, err)
	}
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, removed...)
	}
	uc.log.Info().Str("schema", tenant.SchemaName).Strs("domains", removed).Msg("institución eliminada")
	return nil
}

// Update actualiza nombre y datos de contacto de la institución. Solo superadmin o dueño.
func (uc *UseCase) Update(ctx context.Context, schemaName string, in dto.UpdateInstitutionRequest, actor *entity.User) (*dto.InstitutionResponse, error) {
	tenant, err := uc.Authorize(ctx, schemaName, actor)
	if err != nil {
		return nil, err
	}
	p := entity.TenantProfile{Name: tenant.Name, Location: tenant.Location, Contacts: tenant.Contacts, Website: tenant.Website}
	if in.Name != nil {
		if p.Name = strings.TrimSpace(*in.Name); p.Name == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Location != nil {
		p.Location = strings.TrimSpace(*in.Location)
	}
	if in.Contacts != nil {
		p.Contacts = strings.TrimSpace(*in.Contacts)
	}
	if in.Website != nil {
		p.Website = strings.TrimSpace(*in.Website)
	}
	updated, err := uc.tenants.UpdateProfile(ctx, tenant.SchemaName, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	uc.log.Info().Str("schema", updated.SchemaName).Msg("institución actualizada")
	return toInstitutionResponse(updated, uc.now()), nil
}

// Credentials ficha de acceso del administrador por defecto. Solo superadmin o dueño.
func (uc *UseCase) Credentials(ctx context.Context, schemaName string, actor *entity.User) (*dto.CredentialsResponse, error) {
	tenant, err := uc.Authorize(ctx, schemaName, actor)
	if err != nil {
		return nil, err
	}
	admin, err := uc.users.GetDefaultAdmin(ctx, tenant.SchemaName)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	out := &dto.CredentialsResponse{
		InstitutionName:    tenant.Name,
		SchemaName:         tenant.SchemaName,
		Domain:             tenant.Domain,
		RegistrationNumber: admin.RegistrationNumber,
		BootstrapPending:   admin.BootstrapPending,
		BootstrapExpiresAt: admin.BootstrapExpiresAt,
	}
	if admin.BootstrapPending {
		out.DefaultPassword = uc.cfg.DefaultAdminPassword
	}
	return out, nil
}

// CredentialsPDF igual que Credentials pero renderizado como PDF.
func (uc *UseCase) CredentialsPDF(ctx context.Context, schemaName string, actor *entity.User) ([]byte, error) {
	if uc.renderer == nil {
		return nil, errors.New("generador de PDF no configurado")
	}
	c, err := uc.Credentials(ctx, schemaName, actor)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderCredentials(c)
}

// Info perfil público de la institución (host de tenant).
func (uc *UseCase) Info(ctx context.Context, schemaName string) (*dto.TenantInfoResponse, error) {
	t, err := uc.tenants.GetBySchema(ctx, schemaName)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.TenantInfoResponse{
		Name: t.Name, SchemaName: t.SchemaName, Location: t.Location, Contacts: t.Contacts,
		Website: t.Website, Plan: t.Plan, IsActive: t.IsActive(uc.now()),
	}, nil
}

// Authorize carga la institución schemaName si actor puede gestionarla (ver CanManage).
func (uc *UseCase) Authorize(ctx context.Context, schemaName string, actor *entity.User) (*entity.Tenant, error) {
	t, err := uc.tenants.GetBySchema(ctx, strings.ToLower(strings.TrimSpace(schemaName)))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if !CanManage(actor, t) {
		return nil, domain.ErrForbidden
	}
	return t, nil
}

// CanManage informa si actor es superadmin o el dueño (por referencia) de t.
func CanManage(actor *entity.User, t *entity.Tenant) bool {
	if actor == nil || t == nil {
		return false
	}
	if actor.Role == entity.RoleSuperAdmin {
		return true
	}
	return actor.Role == entity.RoleClient && actor.Schema == entity.PublicSchema && t.Owner == actor.Owner()
}

func toInstitutionResponse(t *entity.Tenant, now time.Time) *dto.InstitutionResponse {
	return &dto.InstitutionResponse{
		ID:                 t.ID,
		Name:               t.Name,
		SchemaName:         t.SchemaName,
		RegistrationNumber: t.RegistrationNumber,
		Domain:             t.Domain,
		Location:           t.Location,
		Contacts:           t.Contacts,
		Website:            t.Website,
		Plan:               t.Plan,
		State:              t.EffectiveState(now),
		IsActive:           t.IsActive(now),
		PaidUntil:          formatDate(t.PaidUntil),
		OwnerEmail:         t.Owner.Email,
		CreatedAt:          t.CreatedAt,
	}
}

func formatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(dto.DateLayout)
	return &s
}
