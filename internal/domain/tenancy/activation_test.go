package tenancy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/tenancy"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInitialState_FreeActivaConPrueba(t *testing.T) {
	state, until, err := tenancy.InitialState(entity.PlanFree, time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), 14)
	require.NoError(t, err)
	assert.Equal(t, entity.StateActive, state)
	require.NotNil(t, until)
	assert.Equal(t, date(2024, 1, 15), *until)
}

func TestInitialState_PremiumPendiente(t *testing.T) {
	state, until, err := tenancy.InitialState(entity.PlanPremium, time.Now(), 14)
	require.NoError(t, err)
	assert.Equal(t, entity.StatePendingPayment, state)
	assert.Nil(t, until)
}

func TestInitialState_PlanDesconocido(t *testing.T) {
	_, _, err := tenancy.InitialState("gold", time.Now(), 14)
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
}

func TestNext_Transiciones(t *testing.T) {
	cases := []struct {
		from, event, to string
		err             error
	}{
		{entity.StatePendingPayment, tenancy.EventPaymentCompleted, entity.StateActive, nil},
		{entity.StatePendingPayment, tenancy.EventPaymentFailed, entity.StateExpired, nil},
		{entity.StateActive, tenancy.EventDeactivate, entity.StateExpired, nil},
		{entity.StateExpired, tenancy.EventRenew, entity.StateActive, nil},
		{entity.StateExpired, tenancy.EventReactivate, entity.StateActive, nil},
		{entity.StateActive, tenancy.EventPaymentFailed, "", domain.ErrConflict},
		{entity.StatePendingPayment, tenancy.EventDeactivate, "", domain.ErrConflict},
		{entity.StatePendingPayment, tenancy.EventReactivate, "", domain.ErrConflict},
		{entity.StateActive, "explode", "", domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		got, err := tenancy.Next(tc.from, tc.event)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, "%s + %s", tc.from, tc.event)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.to, got, "%s + %s", tc.from, tc.event)
	}
}

func TestAllowedSources_DevuelveCopia(t *testing.T) {
	src := tenancy.AllowedSources(tenancy.EventPaymentFailed)
	require.Equal(t, []string{entity.StatePendingPayment}, src)
	src[0] = "mutado"
	assert.Equal(t, []string{entity.StatePendingPayment}, tenancy.AllowedSources(tenancy.EventPaymentFailed))
	assert.Nil(t, tenancy.AllowedSources("desconocido"))
}

func TestPaidUntilAfterPayment_EsIdempotenteEnElDia(t *testing.T) {
	morning := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, tenancy.PaidUntilAfterPayment(morning, 365), tenancy.PaidUntilAfterPayment(evening, 365))
	assert.Equal(t, date(2025, 3, 1), tenancy.PaidUntilAfterPayment(morning, 365))
}

func TestRenewedUntil(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	future := date(2024, 7, 1)
	assert.Equal(t, date(2024, 10, 1), tenancy.RenewedUntil(&future, now, 3), "extiende desde la vigencia futura")

	past := date(2024, 1, 1)
	assert.Equal(t, date(2024, 9, 10), tenancy.RenewedUntil(&past, now, 3), "vigencia vencida: extiende desde hoy")

	assert.Equal(t, date(2025, 6, 10), tenancy.RenewedUntil(nil, now, 12))
}

func TestTenant_IsActive(t *testing.T) {
	now := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)
	until := date(2024, 1, 15)
	tn := &entity.Tenant{State: entity.StateActive, PaidUntil: &until}
	assert.True(t, tn.IsActive(now), "el último día de vigencia sigue activo")
	assert.False(t, tn.IsActive(now.Add(2*time.Hour)))
	assert.Equal(t, entity.StateExpired, tn.EffectiveState(now.Add(2*time.Hour)))

	pending := &entity.Tenant{State: entity.StatePendingPayment}
	assert.False(t, pending.IsActive(now))

	var nilTenant *entity.Tenant
	assert.False(t, nilTenant.IsActive(now))
}

func TestTarget(t *testing.T) {
	to, err := tenancy.Target(tenancy.EventRenew)
	require.NoError(t, err)
	assert.Equal(t, entity.StateActive, to)

	to, err = tenancy.Target(tenancy.EventPaymentFailed)
	require.NoError(t, err)
	assert.Equal(t, entity.StateExpired, to)

	_, err = tenancy.Target("explode")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
