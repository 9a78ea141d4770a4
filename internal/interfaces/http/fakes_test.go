package http_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

var (
	_ repository.UserRepository    = (*fakeUsers)(nil)
	_ repository.DomainRepository  = (*fakeDomains)(nil)
	_ repository.TenantRepository  = (*fakeTenants)(nil)
	_ repository.SettingRepository = (*fakeSettings)(nil)
)

func hash(pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

type fakeUsers struct {
	mu    sync.Mutex
	users []*entity.User
}

func (f *fakeUsers) put(u *entity.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.IsActive = true
	f.users = append(f.users, u)
}

func (f *fakeUsers) find(schema string, match func(*entity.User) bool) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Schema == schema && match(u) {
			c := *u
			return &c
		}
	}
	return nil
}

func (f *fakeUsers) Create(_ context.Context, schema string, u *entity.User) error {
	u.Schema = schema
	f.put(u)
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, schema, id string) (*entity.User, error) {
	return f.find(schema, func(u *entity.User) bool { return u.ID == id }), nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, schema, email string) (*entity.User, error) {
	return f.find(schema, func(u *entity.User) bool { return u.Email == email }), nil
}

func (f *fakeUsers) GetByRegistrationNumber(_ context.Context, schema, reg string) (*entity.User, error) {
	return f.find(schema, func(u *entity.User) bool { return u.RegistrationNumber == reg }), nil
}

func (f *fakeUsers) GetDefaultAdmin(_ context.Context, schema string) (*entity.User, error) {
	return f.find(schema, func(u *entity.User) bool { return u.IsDefaultAdmin }), nil
}

func (f *fakeUsers) CountWithPrefix(context.Context, string, string) (int, error) { return 0, nil }

func (f *fakeUsers) Count(_ context.Context, schema string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, u := range f.users {
		if u.Schema == schema {
			n++
		}
	}
	return n, nil
}

func (f *fakeUsers) CountJoinedByMonth(_ context.Context, schema string, since time.Time) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]int{}
	for _, u := range f.users {
		if u.Schema == schema && !u.CreatedAt.Before(since) {
			out[u.CreatedAt.UTC().Format("2006-01")]++
		}
	}
	return out, nil
}

func (f *fakeUsers) UpdatePassword(context.Context, string, string, string) error { return nil }

func (f *fakeUsers) ConsumeBootstrap(context.Context, string, string, time.Time) (bool, error) {
	return false, nil
}

type fakeDomains struct {
	schemas map[string]string // dominio → esquema
}

func (f *fakeDomains) Create(context.Context, *entity.Domain) (bool, error) { return true, nil }

func (f *fakeDomains) SchemaByDomain(_ context.Context, domain string) (string, error) {
	return f.schemas[domain], nil
}

func (f *fakeDomains) ListByTenant(context.Context, string) ([]*entity.Domain, error) { return nil, nil }
func (f *fakeDomains) List(context.Context) ([]*entity.Domain, error)                 { return nil, nil }
func (f *fakeDomains) DeleteByTenant(context.Context, string) ([]string, error)       { return nil, nil }

type fakeTenants struct {
	mu      sync.Mutex
	tenants map[string]*entity.Tenant
}

func (f *fakeTenants) Create(_ context.Context, t *entity.Tenant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tenants[t.SchemaName] = t
	return nil
}

func (f *fakeTenants) GetBySchema(_ context.Context, schema string) (*entity.Tenant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tenants[schema]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

func (f *fakeTenants) GetByPaymentOrder(context.Context, string) (*entity.Tenant, error) {
	return nil, nil
}

func (f *fakeTenants) List(context.Context) ([]*entity.Tenant, error) { return nil, nil }

func (f *fakeTenants) ListByOwner(context.Context, entity.OwnerRef) ([]*entity.Tenant, error) {
	return nil, nil
}

func (f *fakeTenants) Count(context.Context) (int, error) { return len(f.tenants), nil }

func (f *fakeTenants) CountCreatedByMonth(_ context.Context, since time.Time) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]int{}
	for _, t := range f.tenants {
		if !t.CreatedAt.Before(since) {
			out[t.CreatedAt.UTC().Format("2006-01")]++
		}
	}
	return out, nil
}

func (f *fakeTenants) UpdateProfile(_ context.Context, schema string, p entity.TenantProfile) (*entity.Tenant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tenants[schema]
	if !ok {
		return nil, nil
	}
	t.Name, t.Location, t.Contacts, t.Website = p.Name, p.Location, p.Contacts, p.Website
	c := *t
	return &c, nil
}

func (f *fakeTenants) SetPaymentOrder(context.Context, string, string, decimal.Decimal) error {
	return nil
}

func (f *fakeTenants) Transition(context.Context, string, []string, string, *time.Time) (*entity.Tenant, error) {
	return nil, nil
}

func (f *fakeTenants) Renew(context.Context, string, []string, int, time.Time) (*entity.Tenant, error) {
	return nil, nil
}

func (f *fakeTenants) Toggle(context.Context, string) (*entity.Tenant, error) { return nil, nil }
func (f *fakeTenants) Delete(context.Context, string) error                   { return nil }

type fakeSettings struct {
	mu sync.Mutex
	s  *entity.SystemSettings
}

func (f *fakeSettings) Get(context.Context) (*entity.SystemSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.s == nil {
		return nil, nil
	}
	c := *f.s
	return &c, nil
}

func (f *fakeSettings) Save(_ context.Context, s *entity.SystemSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *s
	f.s = &c
	return nil
}
