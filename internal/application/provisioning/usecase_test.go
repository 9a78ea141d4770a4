package provisioning_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/application/provisioning"
	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

var fixedNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newUseCase(s *memStore, cache *recordingCache, renderer *stubRenderer) *provisioning.UseCase {
	cfg := provisioning.Config{
		DomainSuffix:         "localhost",
		TrialDays:            14,
		DefaultAdminPassword: "admin",
		BootstrapWindow:      72 * time.Hour,
	}
	var inv provisioning.CacheInvalidator
	if cache != nil {
		inv = cache
	}
	var rnd provisioning.CredentialsRenderer
	if renderer != nil {
		rnd = renderer
	}
	return provisioning.NewUseCase(s, memTenants{s}, memDomains{s}, memUsers{s}, s, inv, rnd, cfg, zerolog.Nop()).
		WithClock(func() time.Time { return fixedNow })
}

func client() *entity.User {
	return &entity.User{ID: "u-1", Schema: entity.PublicSchema, Email: "owner@kibo.ac.tz", Role: entity.RoleClient, IsActive: true}
}

func kiboRequest() dto.CreateInstitutionRequest {
	return dto.CreateInstitutionRequest{Name: "Kibo College", SchemaName: "kibo", Domain: "kibo", Plan: entity.PlanFree}
}

func TestProvision_KiboCollegeFree(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	out, err := uc.Provision(context.Background(), kiboRequest(), client())
	require.NoError(t, err)

	assert.Equal(t, "kibo", out.Institution.SchemaName)
	assert.Equal(t, "kibo.localhost", out.Subdomain)
	assert.True(t, out.DomainCreated)
	assert.True(t, out.Institution.IsActive)
	assert.Equal(t, entity.StateActive, out.Institution.State)
	require.NotNil(t, out.Institution.PaidUntil)
	assert.Equal(t, "2024-01-15", *out.Institution.PaidUntil)
	assert.Regexp(t, regexp.MustCompile(`^INST-[0-9A-F]{6}$`), out.Institution.RegistrationNumber)
	assert.Equal(t, "KIB-001", out.AdminLogin.RegistrationNumber)
	assert.Equal(t, "admin", out.AdminLogin.DefaultPassword)

	admin := s.schemas["kibo"]
	require.Len(t, admin, 1)
	for _, u := range admin {
		assert.Equal(t, entity.RoleClient, u.Role)
		assert.True(t, u.IsDefaultAdmin)
		assert.True(t, u.BootstrapPending)
		require.NotNil(t, u.BootstrapExpiresAt)
		assert.Equal(t, fixedNow.Add(72*time.Hour), *u.BootstrapExpiresAt)
		assert.Empty(t, u.PasswordHash, "la contraseña por defecto no se guarda como hash")
	}
	assert.Equal(t, entity.OwnerRef{Email: "owner@kibo.ac.tz"}, s.tenants["kibo"].Owner)
}

func TestProvision_PremiumQuedaPendiente(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	in := kiboRequest()
	in.Plan = entity.PlanPremium
	out, err := uc.Provision(context.Background(), in, client())
	require.NoError(t, err)

	assert.False(t, out.Institution.IsActive)
	assert.Equal(t, entity.StatePendingPayment, out.Institution.State)
	assert.Nil(t, out.Institution.PaidUntil)
}

func TestProvision_SegundoKiboFallaSinEfectos(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	_, err := uc.Provision(context.Background(), kiboRequest(), client())
	require.NoError(t, err)

	again := dto.CreateInstitutionRequest{Name: "Kibo Again", SchemaName: "KIBO", Domain: "kibo2", Plan: entity.PlanFree}
	_, err = uc.Provision(context.Background(), again, client())
	assert.ErrorIs(t, err, domain.ErrSchemaNameTaken)

	assert.Len(t, s.tenants, 1)
	assert.Len(t, s.domains, 1)
	_, ok := s.domains["kibo2.localhost"]
	assert.False(t, ok, "no debe quedar el dominio del intento fallido")
	assert.Len(t, s.schemas["kibo"], 1)
	assert.Empty(t, s.faults)
}

func TestProvision_ConcurrenteMismoEsquema_SoloUnoGana(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	const n = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		ok    int
		taken int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Provision(context.Background(), kiboRequest(), client())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrSchemaNameTaken):
				taken++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, taken)
	assert.Len(t, s.schemas["kibo"], 1, "exactamente un admin por defecto")
}

func TestProvision_DominioExistenteSeOmite(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	_, err := uc.Provision(context.Background(), kiboRequest(), client())
	require.NoError(t, err)

	other := dto.CreateInstitutionRequest{Name: "Mwenge", SchemaName: "mwenge", Domain: "kibo.localhost", Plan: entity.PlanFree}
	out, err := uc.Provision(context.Background(), other, client())
	require.NoError(t, err)
	assert.False(t, out.DomainCreated)
	assert.Empty(t, out.Institution.Domain)
	assert.Equal(t, "MWE-001", out.AdminLogin.RegistrationNumber)
}

func TestProvision_ValidaEntrada(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	cases := []struct {
		mutate func(*dto.CreateInstitutionRequest)
		err    error
	}{
		{func(r *dto.CreateInstitutionRequest) { r.SchemaName = "public" }, domain.ErrSchemaNameReserved},
		{func(r *dto.CreateInstitutionRequest) { r.SchemaName = "9kibo" }, domain.ErrInvalidSchemaName},
		{func(r *dto.CreateInstitutionRequest) { r.Domain = "   " }, domain.ErrInvalidDomain},
		{func(r *dto.CreateInstitutionRequest) { r.Plan = "gold" }, domain.ErrInvalidPlan},
	}
	for _, tc := range cases {
		in := kiboRequest()
		tc.mutate(&in)
		_, err := uc.Provision(context.Background(), in, client())
		assert.ErrorIs(t, err, tc.err)
	}
	assert.Empty(t, s.tenants)

	student := &entity.User{ID: "s", Role: entity.RoleStudent}
	_, err := uc.Provision(context.Background(), kiboRequest(), student)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProvision_FallaDelAdminRevierteYRegistraFalla(t *testing.T) {
	s := newMemStore()
	s.failAdmin = errors.New("disco lleno")
	uc := newUseCase(s, nil, nil)

	_, err := uc.Provision(context.Background(), kiboRequest(), client())
	assert.ErrorIs(t, err, domain.ErrProvisioningPartialFailure)

	assert.Empty(t, s.tenants)
	assert.Empty(t, s.domains)
	_, ok := s.schemas["kibo"]
	assert.False(t, ok, "el esquema debe revertirse")

	require.Len(t, s.faults, 1)
	assert.Equal(t, "kibo", s.faults[0].SchemaName)
	assert.Equal(t, entity.StepDefaultAdmin, s.faults[0].Step)

	faults, err := uc.Faults(context.Background())
	require.NoError(t, err)
	assert.Len(t, faults, 1)
}

func TestProvision_ContextoCanceladoNoDejaNada(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uc.Provision(ctx, kiboRequest(), client())
	assert.Error(t, err)
	assert.Empty(t, s.tenants)
	_, ok := s.schemas["kibo"]
	assert.False(t, ok)
}

func TestList_ClienteSoloVeLasPropias(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	_, err := uc.Provision(context.Background(), kiboRequest(), client())
	require.NoError(t, err)
	other := &entity.User{ID: "u-2", Schema: entity.PublicSchema, Email: "otro@x.com", Role: entity.RoleClient}
	_, err = uc.Provision(context.Background(), dto.CreateInstitutionRequest{Name: "Arusha", SchemaName: "arusha", Domain: "arusha", Plan: entity.PlanFree}, other)
	require.NoError(t, err)

	mine, err := uc.List(context.Background(), client())
	require.NoError(t, err)
	require.Equal(t, 1, mine.Total)
	assert.Equal(t, "kibo", mine.Items[0].SchemaName)

	all, err := uc.List(context.Background(), &entity.User{Role: entity.RoleSuperAdmin})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Institutions)
}

func TestDelete_EliminaTodoEInvalidaCache(t *testing.T) {
	s := newMemStore()
	cache := &recordingCache{}
	uc := newUseCase(s, cache, nil)

	_, err := uc.Provision(context.Background(), kiboRequest(), client())
	require.NoError(t, err)

	intruder := &entity.User{ID: "u-9", Schema: entity.PublicSchema, Email: "intruso@x.com", Role: entity.RoleClient}
	assert.ErrorIs(t, uc.Delete(context.Background(), "kibo", intruder), domain.ErrForbidden)

	require.NoError(t, uc.Delete(context.Background(), "kibo", client()))
	assert.Empty(t, s.tenants)
	assert.Empty(t, s.domains)
	_, ok := s.schemas["kibo"]
	assert.False(t, ok)
	assert.Equal(t, []string{"kibo.localhost"}, cache.invalidated)

	assert.ErrorIs(t, uc.Delete(context.Background(), "kibo", client()), domain.ErrNotFound)
}

func TestCredentials_InformaPasswordMientrasBootstrapPendiente(t *testing.T) {
	s := newMemStore()
	renderer := &stubRenderer{}
	uc := newUseCase(s, nil, renderer)

	_, err := uc.Provision(context.Background(), kiboRequest(), client())
	require.NoError(t, err)

	c, err := uc.Credentials(context.Background(), "kibo", client())
	require.NoError(t, err)
	assert.Equal(t, "KIB-001", c.RegistrationNumber)
	assert.Equal(t, "admin", c.DefaultPassword)
	assert.Equal(t, "kibo.localhost", c.Domain)
	assert.True(t, c.BootstrapPending)

	for _, u := range s.schemas["kibo"] {
		u.BootstrapPending = false
	}
	c, err = uc.Credentials(context.Background(), "kibo", client())
	require.NoError(t, err)
	assert.Empty(t, c.DefaultPassword)

	pdf, err := uc.CredentialsPDF(context.Background(), "kibo", client())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, renderer.got)
	assert.Equal(t, "Kibo College", renderer.got.InstitutionName)
}

func TestInfo_PerfilPublico(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	in := kiboRequest()
	in.Location = "Moshi"
	_, err := uc.Provision(context.Background(), in, client())
	require.NoError(t, err)

	info, err := uc.Info(context.Background(), "kibo")
	require.NoError(t, err)
	assert.Equal(t, "Kibo College", info.Name)
	assert.Equal(t, "Moshi", info.Location)
	assert.True(t, info.IsActive)

	_, err = uc.Info(context.Background(), "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func strPtr(s string) *string { return &s }

func TestUpdate_DuenoActualizaSoloLoEnviado(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	in := kiboRequest()
	in.Location = "Moshi"
	in.Website = "https://kibo.ac.tz"
	_, err := uc.Provision(context.Background(), in, client())
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), "KIBO", dto.UpdateInstitutionRequest{
		Name: strPtr("  Kibo University "), Contacts: strPtr("+255 744 963 858"),
	}, client())
	require.NoError(t, err)
	assert.Equal(t, "Kibo University", out.Name)
	assert.Equal(t, "Moshi", out.Location)
	assert.Equal(t, "+255 744 963 858", out.Contacts)
	assert.Equal(t, "https://kibo.ac.tz", out.Website)
	assert.Equal(t, "kibo", out.SchemaName)

	stored := s.tenants["kibo"]
	assert.Equal(t, "Kibo University", stored.Name)
	assert.Equal(t, entity.OwnerRef{Email: "owner@kibo.ac.tz"}, stored.Owner)
}

func TestUpdate_Reglas(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)
	_, err := uc.Provision(context.Background(), kiboRequest(), client())
	require.NoError(t, err)

	intruder := &entity.User{ID: "u-9", Schema: entity.PublicSchema, Email: "intruso@x.com", Role: entity.RoleClient}
	_, err = uc.Update(context.Background(), "kibo", dto.UpdateInstitutionRequest{Name: strPtr("Robada")}, intruder)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Kibo College", s.tenants["kibo"].Name)

	_, err = uc.Update(context.Background(), "kibo", dto.UpdateInstitutionRequest{Name: strPtr("   ")}, client())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(context.Background(), "nadie", dto.UpdateInstitutionRequest{}, client())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.Update(context.Background(), "kibo", dto.UpdateInstitutionRequest{Location: strPtr("Arusha")},
		&entity.User{Role: entity.RoleSuperAdmin})
	require.NoError(t, err)
	assert.Equal(t, "Arusha", out.Location)
}

func TestAnalytics_SeisMesesHastaElActual(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s, nil, nil)

	_, err := uc.Provision(context.Background(), kiboRequest(), client())
	require.NoError(t, err)
	s.tenants["viejo"] = &entity.Tenant{ID: "t-old", SchemaName: "viejo", CreatedAt: time.Date(2023, 7, 31, 23, 0, 0, 0, time.UTC)}
	s.tenants["septiembre"] = &entity.Tenant{ID: "t-sep", SchemaName: "septiembre", CreatedAt: time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC)}
	s.schemas[entity.PublicSchema]["p-1"] = &entity.User{ID: "p-1", CreatedAt: time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC)}
	s.schemas[entity.PublicSchema]["p-2"] = &entity.User{ID: "p-2", CreatedAt: time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC)}

	out, err := uc.Analytics(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Months, provisioning.AnalyticsMonths)

	months := make([]string, 0, len(out.Months))
	for _, m := range out.Months {
		months = append(months, m.Month)
	}
	assert.Equal(t, []string{"2023-08", "2023-09", "2023-10", "2023-11", "2023-12", "2024-01"}, months)
	assert.Equal(t, dto.MonthlyActivity{Month: "2023-09", Institutions: 1}, out.Months[1])
	assert.Equal(t, dto.MonthlyActivity{Month: "2023-12", Signups: 2}, out.Months[4])
	assert.Equal(t, dto.MonthlyActivity{Month: "2024-01", Institutions: 1}, out.Months[5])
}
