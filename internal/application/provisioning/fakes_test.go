package provisioning_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/application/provisioning"
	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

// memStore simula el almacén relacional: restricciones únicas y transacciones con rollback.
type memStore struct {
	mu      sync.Mutex // serializa transacciones (como el lock de la fila única en Postgres)
	tenants map[string]*entity.Tenant
	domains map[string]*entity.Domain
	schemas map[string]map[string]*entity.User // esquema -> id -> user
	faults  []*entity.ProvisioningFault

	failAdmin error // error inyectado al crear el admin por defecto
}

func newMemStore() *memStore {
	return &memStore{
		tenants: map[string]*entity.Tenant{},
		domains: map[string]*entity.Domain{},
		schemas: map[string]map[string]*entity.User{entity.PublicSchema: {}},
	}
}

func (s *memStore) snapshot() (map[string]*entity.Tenant, map[string]*entity.Domain, map[string]map[string]*entity.User) {
	t := make(map[string]*entity.Tenant, len(s.tenants))
	for k, v := range s.tenants {
		c := *v
		t[k] = &c
	}
	d := make(map[string]*entity.Domain, len(s.domains))
	for k, v := range s.domains {
		c := *v
		d[k] = &c
	}
	sc := make(map[string]map[string]*entity.User, len(s.schemas))
	for name, users := range s.schemas {
		m := make(map[string]*entity.User, len(users))
		for id, u := range users {
			c := *u
			m[id] = &c
		}
		sc[name] = m
	}
	return t, d, sc
}

func (s *memStore) RunProvisioning(ctx context.Context, fn func(
	repository.TenantRepository, repository.DomainRepository, repository.SchemaManager, repository.UserRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, d, sc := s.snapshot()
	err := fn(memTenants{s}, memDomains{s}, memSchemas{s}, memUsers{s})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.tenants, s.domains, s.schemas = t, d, sc
		return err
	}
	return nil
}

type memTenants struct{ s *memStore }

func (r memTenants) Create(_ context.Context, t *entity.Tenant) error {
	if _, ok := r.s.tenants[t.SchemaName]; ok {
		return domain.ErrSchemaNameTaken
	}
	c := *t
	r.s.tenants[t.SchemaName] = &c
	return nil
}

func (r memTenants) GetBySchema(_ context.Context, schema string) (*entity.Tenant, error) {
	t, ok := r.s.tenants[schema]
	if !ok {
		return nil, nil
	}
	c := *t
	for _, d := range r.s.domains {
		if d.TenantID == t.ID && d.IsPrimary {
			c.Domain = d.Domain
		}
	}
	return &c, nil
}

func (r memTenants) GetByPaymentOrder(context.Context, string) (*entity.Tenant, error) {
	return nil, nil
}

func (r memTenants) List(context.Context) ([]*entity.Tenant, error) {
	var out []*entity.Tenant
	for _, t := range r.s.tenants {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

func (r memTenants) ListByOwner(_ context.Context, owner entity.OwnerRef) ([]*entity.Tenant, error) {
	var out []*entity.Tenant
	for _, t := range r.s.tenants {
		if t.Owner == owner {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r memTenants) Count(context.Context) (int, error) { return len(r.s.tenants), nil }

func (r memTenants) CountCreatedByMonth(_ context.Context, since time.Time) (map[string]int, error) {
	out := map[string]int{}
	for _, t := range r.s.tenants {
		if !t.CreatedAt.Before(since) {
			out[t.CreatedAt.UTC().Format(dto.MonthLayout)]++
		}
	}
	return out, nil
}

func (r memTenants) UpdateProfile(_ context.Context, schema string, p entity.TenantProfile) (*entity.Tenant, error) {
	t, ok := r.s.tenants[schema]
	if !ok {
		return nil, nil
	}
	t.Name, t.Location, t.Contacts, t.Website = p.Name, p.Location, p.Contacts, p.Website
	t.UpdatedAt = time.Now().UTC()
	c := *t
	return &c, nil
}

func (r memTenants) SetPaymentOrder(context.Context, string, string, decimal.Decimal) error {
	return errors.New("no usado")
}

func (r memTenants) Transition(context.Context, string, []string, string, *time.Time) (*entity.Tenant, error) {
	return nil, errors.New("no usado")
}

func (r memTenants) Renew(context.Context, string, []string, int, time.Time) (*entity.Tenant, error) {
	return nil, errors.New("no usado")
}

func (r memTenants) Toggle(context.Context, string) (*entity.Tenant, error) {
	return nil, errors.New("no usado")
}

func (r memTenants) Delete(_ context.Context, schema string) error {
	delete(r.s.tenants, schema)
	return nil
}

type memDomains struct{ s *memStore }

func (r memDomains) Create(_ context.Context, d *entity.Domain) (bool, error) {
	if _, ok := r.s.domains[d.Domain]; ok {
		return false, nil
	}
	c := *d
	r.s.domains[d.Domain] = &c
	return true, nil
}

func (r memDomains) SchemaByDomain(_ context.Context, name string) (string, error) {
	d, ok := r.s.domains[name]
	if !ok {
		return "", nil
	}
	for _, t := range r.s.tenants {
		if t.ID == d.TenantID {
			return t.SchemaName, nil
		}
	}
	return "", nil
}

func (r memDomains) ListByTenant(_ context.Context, tenantID string) ([]*entity.Domain, error) {
	var out []*entity.Domain
	for _, d := range r.s.domains {
		if d.TenantID == tenantID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r memDomains) List(context.Context) ([]*entity.Domain, error) {
	var out []*entity.Domain
	for _, d := range r.s.domains {
		out = append(out, d)
	}
	return out, nil
}

func (r memDomains) DeleteByTenant(_ context.Context, tenantID string) ([]string, error) {
	var removed []string
	for name, d := range r.s.domains {
		if d.TenantID == tenantID {
			removed = append(removed, name)
			delete(r.s.domains, name)
		}
	}
	return removed, nil
}

type memSchemas struct{ s *memStore }

func (r memSchemas) Create(_ context.Context, name string) error {
	if _, ok := r.s.schemas[name]; ok {
		return domain.ErrSchemaNameTaken
	}
	r.s.schemas[name] = map[string]*entity.User{}
	return nil
}

func (r memSchemas) Drop(_ context.Context, name string) error {
	delete(r.s.schemas, name)
	return nil
}

type memUsers struct{ s *memStore }

func (r memUsers) table(schema string) (map[string]*entity.User, error) {
	t, ok := r.s.schemas[schema]
	if !ok {
		return nil, errors.New("el esquema no existe: " + schema)
	}
	return t, nil
}

func (r memUsers) Create(_ context.Context, schema string, u *entity.User) error {
	if r.s.failAdmin != nil && u.IsDefaultAdmin {
		return r.s.failAdmin
	}
	t, err := r.table(schema)
	if err != nil {
		return err
	}
	for _, x := range t {
		if u.RegistrationNumber != "" && x.RegistrationNumber == u.RegistrationNumber {
			return domain.ErrRegistrationNumberTaken
		}
		if u.IsDefaultAdmin && x.IsDefaultAdmin {
			return domain.ErrDuplicate
		}
	}
	c := *u
	c.Schema = schema
	t[u.ID] = &c
	return nil
}

func (r memUsers) find(schema string, match func(*entity.User) bool) (*entity.User, error) {
	t, err := r.table(schema)
	if err != nil {
		return nil, err
	}
	for _, u := range t {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r memUsers) GetByID(_ context.Context, schema, id string) (*entity.User, error) {
	return r.find(schema, func(u *entity.User) bool { return u.ID == id })
}

func (r memUsers) GetByEmail(_ context.Context, schema, email string) (*entity.User, error) {
	return r.find(schema, func(u *entity.User) bool { return u.Email == email })
}

func (r memUsers) GetByRegistrationNumber(_ context.Context, schema, reg string) (*entity.User, error) {
	return r.find(schema, func(u *entity.User) bool { return u.RegistrationNumber == reg })
}

func (r memUsers) GetDefaultAdmin(_ context.Context, schema string) (*entity.User, error) {
	return r.find(schema, func(u *entity.User) bool { return u.IsDefaultAdmin })
}

func (r memUsers) CountWithPrefix(_ context.Context, schema, prefix string) (int, error) {
	t, err := r.table(schema)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, u := range t {
		if strings.HasPrefix(u.RegistrationNumber, prefix+"-") {
			n++
		}
	}
	return n, nil
}

func (r memUsers) Count(_ context.Context, schema string) (int, error) {
	t, err := r.table(schema)
	return len(t), err
}

func (r memUsers) CountJoinedByMonth(_ context.Context, schema string, since time.Time) (map[string]int, error) {
	t, err := r.table(schema)
	if err != nil {
		return nil, err
	}
	out := map[string]int{}
	for _, u := range t {
		if !u.CreatedAt.Before(since) {
			out[u.CreatedAt.UTC().Format(dto.MonthLayout)]++
		}
	}
	return out, nil
}

func (r memUsers) UpdatePassword(_ context.Context, schema, id, hash string) error {
	t, err := r.table(schema)
	if err != nil {
		return err
	}
	u, ok := t[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = hash
	u.BootstrapPending = false
	return nil
}

func (r memUsers) ConsumeBootstrap(_ context.Context, schema, id string, now time.Time) (bool, error) {
	t, err := r.table(schema)
	if err != nil {
		return false, err
	}
	u, ok := t[id]
	if !ok || !u.BootstrapPending || u.BootstrapExpiresAt == nil || !now.Before(*u.BootstrapExpiresAt) {
		return false, nil
	}
	u.BootstrapPending = false
	return true, nil
}

func (s *memStore) Record(_ context.Context, f *entity.ProvisioningFault) error {
	s.faults = append(s.faults, f)
	return nil
}

func (s *memStore) ListOpen(context.Context) ([]*entity.ProvisioningFault, error) {
	return s.faults, nil
}

type recordingCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *recordingCache) Invalidate(_ context.Context, domains ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, domains...)
}

type stubRenderer struct{ got *dto.CredentialsResponse }

func (r *stubRenderer) RenderCredentials(c *dto.CredentialsResponse) ([]byte, error) {
	r.got = c
	return []byte("%PDF-1.4"), nil
}

var (
	_ provisioning.TxRunner            = (*memStore)(nil)
	_ provisioning.CacheInvalidator    = (*recordingCache)(nil)
	_ provisioning.CredentialsRenderer = (*stubRenderer)(nil)
)
