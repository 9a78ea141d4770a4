package auth_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
)

var _ repository.UserRepository = (*fakeUsers)(nil)

// fakeUsers almacén de credenciales en memoria, particionado por esquema.
type fakeUsers struct {
	mu      sync.Mutex
	schemas map[string]map[string]*entity.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{schemas: map[string]map[string]*entity.User{}}
}

func hash(pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

func (f *fakeUsers) put(schema string, u *entity.User) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.schemas[schema] == nil {
		f.schemas[schema] = map[string]*entity.User{}
	}
	u.Schema = schema
	u.IsActive = true
	f.schemas[schema][u.ID] = u
	return u
}

func (f *fakeUsers) find(schema string, match func(*entity.User) bool) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.schemas[schema] {
		if match(u) {
			c := *u
			return &c
		}
	}
	return nil
}

func (f *fakeUsers) Create(_ context.Context, schema string, u *entity.User) error {
	if f.find(schema, func(x *entity.User) bool { return x.Email != "" && x.Email == u.Email }) != nil {
		return domain.ErrEmailAlreadyExists
	}
	c := *u
	f.put(schema, &c)
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

func (f *fakeUsers) CountWithPrefix(_ context.Context, schema, prefix string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, u := range f.schemas[schema] {
		if strings.HasPrefix(u.RegistrationNumber, prefix+"-") {
			n++
		}
	}
	return n, nil
}

func (f *fakeUsers) Count(_ context.Context, schema string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.schemas[schema]), nil
}

func (f *fakeUsers) CountJoinedByMonth(context.Context, string, time.Time) (map[string]int, error) {
	return map[string]int{}, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, schema, id, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.schemas[schema][id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.BootstrapPending = false
	return nil
}

func (f *fakeUsers) ConsumeBootstrap(_ context.Context, schema, id string, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.schemas[schema][id]
	if !ok || !u.BootstrapPending || u.BootstrapExpiresAt == nil || !now.Before(*u.BootstrapExpiresAt) {
		return false, nil
	}
	u.BootstrapPending = false
	return true, nil
}
