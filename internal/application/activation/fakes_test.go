package activation_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Campus-api/internal/application/activation"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
	"github.com/jhoicas/Campus-api/internal/domain/tenancy"
)

// memTenants registro en memoria. Cada mutación es atómica bajo mu, como un UPDATE con guarda.
type memTenants struct {
	mu      sync.Mutex
	tenants map[string]*entity.Tenant
	events  map[string]bool
}

func newMemTenants(ts ...*entity.Tenant) *memTenants {
	m := &memTenants{tenants: map[string]*entity.Tenant{}, events: map[string]bool{}}
	for _, t := range ts {
		m.tenants[t.SchemaName] = t
	}
	return m
}

func (m *memTenants) RunActivation(_ context.Context, fn func(repository.TenantRepository, repository.WebhookEventRepository) error) error {
	m.mu.Lock()
	snapshot := make(map[string]entity.Tenant, len(m.tenants))
	for k, v := range m.tenants {
		snapshot[k] = *v
	}
	events := make(map[string]bool, len(m.events))
	for k, v := range m.events {
		events[k] = v
	}
	m.mu.Unlock()

	tx := &txView{memTenants: m}
	if err := fn(tx, tx); err != nil {
		m.mu.Lock()
		for k, v := range snapshot {
			c := v
			m.tenants[k] = &c
		}
		m.events = events
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memTenants) copyOf(schema string) *entity.Tenant {
	t, ok := m.tenants[schema]
	if !ok {
		return nil
	}
	c := *t
	return &c
}

func (m *memTenants) Create(_ context.Context, t *entity.Tenant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tenants[t.SchemaName] = t
	return nil
}

func (m *memTenants) GetBySchema(_ context.Context, schema string) (*entity.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copyOf(schema), nil
}

func (m *memTenants) GetByPaymentOrder(_ context.Context, orderID string) (*entity.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tenants {
		if t.PaymentOrderID != nil && *t.PaymentOrderID == orderID {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memTenants) List(context.Context) ([]*entity.Tenant, error) { return nil, nil }

func (m *memTenants) ListByOwner(context.Context, entity.OwnerRef) ([]*entity.Tenant, error) {
	return nil, nil
}

func (m *memTenants) Count(context.Context) (int, error) { return len(m.tenants), nil }

func (m *memTenants) CountCreatedByMonth(context.Context, time.Time) (map[string]int, error) {
	return nil, errors.New("no usado")
}

func (m *memTenants) UpdateProfile(context.Context, string, entity.TenantProfile) (*entity.Tenant, error) {
	return nil, errors.New("no usado")
}

func (m *memTenants) SetPaymentOrder(_ context.Context, schema, orderID string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenants[schema]
	if !ok {
		return errors.New("no existe")
	}
	t.PaymentOrderID = &orderID
	t.PaymentAmount = amount
	return nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func (m *memTenants) Transition(_ context.Context, schema string, from []string, state string, paidUntil *time.Time) (*entity.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenants[schema]
	if !ok || !contains(from, t.State) {
		return nil, nil
	}
	t.State = state
	if paidUntil != nil {
		d := *paidUntil
		t.PaidUntil = &d
	}
	return m.copyOf(schema), nil
}

func (m *memTenants) Renew(_ context.Context, schema string, from []string, months int, today time.Time) (*entity.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenants[schema]
	if !ok || !contains(from, t.State) {
		return nil, nil
	}
	until := tenancy.RenewedUntil(t.PaidUntil, today, months)
	t.PaidUntil = &until
	t.State = entity.StateActive
	return m.copyOf(schema), nil
}

func (m *memTenants) Toggle(_ context.Context, schema string) (*entity.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenants[schema]
	if !ok {
		return nil, nil
	}
	switch t.State {
	case entity.StateActive:
		t.State = entity.StateExpired
	case entity.StateExpired:
		t.State = entity.StateActive
	default:
		return nil, nil
	}
	return m.copyOf(schema), nil
}

func (m *memTenants) Delete(context.Context, string) error { return nil }

// txView expone el registro y la tabla de eventos dentro de RunActivation.
type txView struct{ *memTenants }

func (v *txView) Insert(_ context.Context, ev *entity.WebhookEvent) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	key := ev.Provider + "|" + ev.OrderID + "|" + ev.Status
	if v.events[key] {
		return false, nil
	}
	v.events[key] = true
	return true, nil
}

// fakeProvider proveedor configurable.
type fakeProvider struct {
	mu       sync.Mutex
	err      error
	delay    time.Duration
	assigned string // order id propio del proveedor; vacío devuelve el recibido
	orders   []activation.PaymentOrder
}

func (p *fakeProvider) Name() string { return "zenopay" }

func (p *fakeProvider) CreateOrder(ctx context.Context, o activation.PaymentOrder) (*activation.PaymentOrderResult, error) {
	p.mu.Lock()
	p.orders = append(p.orders, o)
	p.mu.Unlock()
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	id := o.OrderID
	if p.assigned != "" {
		id = p.assigned
	}
	return &activation.PaymentOrderResult{OrderID: id, PaymentURL: "https://pay.example/" + id}, nil
}

var (
	_ activation.TxRunner        = (*memTenants)(nil)
	_ activation.PaymentProvider = (*fakeProvider)(nil)
)
