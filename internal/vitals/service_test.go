package vitals

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/hearthero/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestService() (*Service, *InMemRepo, *profile.InMemRepo) {
	metricsRepo := NewInMemRepo()
	profilesRepo := profile.NewInMemRepo()
	service := NewService(metricsRepo, profilesRepo)
	service.NowFunc = func() time.Time {
		return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	}
	return service, metricsRepo, profilesRepo
}

func TestService_UpdateSteps_createsRecordWithDefaults(t *testing.T) {
	service, _, profilesRepo := newTestService()
	ctx := context.Background()

	m, err := service.UpdateSteps(ctx, "ip_1.2.3.4", 5000)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, 5000, m.Steps)
	assert.Equal(t, DefaultHeartRate, m.HeartRate)
	assert.Equal(t, DefaultSystolicBP, m.SystolicBP)
	assert.Equal(t, DefaultDiastolicBP, m.DiastolicBP)

	// a default profile is created alongside the first metric
	p, err := profilesRepo.Get(ctx, "ip_1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultHeight, p.Height)
	assert.Equal(t, profile.DefaultWeight, p.Weight)
}

func TestService_Update_overwritesLatestKeepsOthers(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.UpdateSteps(ctx, "ip_1.2.3.4", 5000)
	require.NoError(t, err)

	m, err := service.UpdateSteps(ctx, "ip_1.2.3.4", 8000)
	require.NoError(t, err)
	assert.Equal(t, 8000, m.Steps)
	assert.Equal(t, DefaultHeartRate, m.HeartRate)

	m, err = service.UpdateHeartRate(ctx, "ip_1.2.3.4", 95)
	require.NoError(t, err)
	assert.Equal(t, 8000, m.Steps)
	assert.Equal(t, 95, m.HeartRate)
	assert.Equal(t, DefaultSystolicBP, m.SystolicBP)

	m, err = service.UpdateBloodPressure(ctx, "ip_1.2.3.4", 130, 85)
	require.NoError(t, err)
	assert.Equal(t, 8000, m.Steps)
	assert.Equal(t, 95, m.HeartRate)
	assert.Equal(t, 130, m.SystolicBP)
	assert.Equal(t, 85, m.DiastolicBP)
}

func TestService_Update_noHistoryIsKept(t *testing.T) {
	service, metricsRepo, _ := newTestService()
	ctx := context.Background()

	first, err := service.UpdateSteps(ctx, "ip_1.2.3.4", 5000)
	require.NoError(t, err)

	second, err := service.UpdateSteps(ctx, "ip_1.2.3.4", 8000)
	require.NoError(t, err)

	// same record, updated in place
	assert.Equal(t, first.ID, second.ID)

	latest, err := metricsRepo.Latest(ctx, "ip_1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 8000, latest.Steps)
}

func TestService_Update_idempotent(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	first, err := service.UpdateHeartRate(ctx, "ip_1.2.3.4", 80)
	require.NoError(t, err)

	second, err := service.UpdateHeartRate(ctx, "ip_1.2.3.4", 80)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Steps, second.Steps)
	assert.Equal(t, first.HeartRate, second.HeartRate)
	assert.Equal(t, first.SystolicBP, second.SystolicBP)
	assert.Equal(t, first.DiastolicBP, second.DiastolicBP)
}

func TestService_ClientsAreIsolated(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.UpdateSteps(ctx, "ip_1.2.3.4", 5000)
	require.NoError(t, err)
	_, err = service.UpdateSteps(ctx, "ip_5.6.7.8", 12000)
	require.NoError(t, err)

	m1, err := service.Today(ctx, "ip_1.2.3.4")
	require.NoError(t, err)
	m2, err := service.Today(ctx, "ip_5.6.7.8")
	require.NoError(t, err)

	assert.Equal(t, 5000, m1.Steps)
	assert.Equal(t, 12000, m2.Steps)
}

func TestService_UpdateSteps_rejectsNegative(t *testing.T) {
	service, metricsRepo, _ := newTestService()
	ctx := context.Background()

	_, err := service.UpdateSteps(ctx, "ip_1.2.3.4", -1)
	require.ErrorIs(t, err, ErrInvalidInput)

	// nothing was written
	_, err = metricsRepo.Latest(ctx, "ip_1.2.3.4")
	assert.ErrorIs(t, err, ErrMetricNotFound)
}

func TestService_UpdateHeartRate_rejectsOutOfRange(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	for _, heartRate := range []int{10, 29, 251, 400} {
		_, err := service.UpdateHeartRate(ctx, "ip_1.2.3.4", heartRate)
		assert.ErrorIs(t, err, ErrInvalidInput, "heart rate %d", heartRate)
	}

	for _, heartRate := range []int{MinHeartRate, 72, MaxHeartRate} {
		_, err := service.UpdateHeartRate(ctx, "ip_1.2.3.4", heartRate)
		assert.NoError(t, err, "heart rate %d", heartRate)
	}
}

func TestService_UpdateBloodPressure_rejectsInvalid(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	type bpCase struct {
		systolic  int
		diastolic int
	}
	for _, c := range []bpCase{
		{systolic: 60, diastolic: 50},   // systolic too low
		{systolic: 210, diastolic: 80},  // systolic too high
		{systolic: 120, diastolic: 30},  // diastolic too low
		{systolic: 180, diastolic: 140}, // diastolic too high
		{systolic: 120, diastolic: 120}, // diastolic not below systolic
		{systolic: 120, diastolic: 125},
	} {
		_, err := service.UpdateBloodPressure(ctx, "ip_1.2.3.4", c.systolic, c.diastolic)
		assert.ErrorIs(t, err, ErrInvalidInput, "%d/%d", c.systolic, c.diastolic)
	}
}

func TestService_UpdateBloodPressure_rejectedUpdateDoesNotMutate(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.UpdateBloodPressure(ctx, "ip_1.2.3.4", 130, 85)
	require.NoError(t, err)

	_, err = service.UpdateBloodPressure(ctx, "ip_1.2.3.4", 120, 125)
	require.ErrorIs(t, err, ErrInvalidInput)

	m, err := service.Today(ctx, "ip_1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 130, m.SystolicBP)
	assert.Equal(t, 85, m.DiastolicBP)
}

func TestService_Today_materializesDefaultsForKnownProfile(t *testing.T) {
	service, metricsRepo, profilesRepo := newTestService()
	ctx := context.Background()

	_, err := profilesRepo.Ensure(ctx, "ip_1.2.3.4")
	require.NoError(t, err)

	m, err := service.Today(ctx, "ip_1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, DefaultSteps, m.Steps)
	assert.Equal(t, DefaultHeartRate, m.HeartRate)
	assert.Equal(t, DefaultSystolicBP, m.SystolicBP)
	assert.Equal(t, DefaultDiastolicBP, m.DiastolicBP)

	// the materialized record is persisted
	persisted, err := metricsRepo.Latest(ctx, "ip_1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, m.ID, persisted.ID)
}

func TestService_Today_unknownClientGetsDefaultsWithoutInsert(t *testing.T) {
	service, metricsRepo, _ := newTestService()
	ctx := context.Background()

	m, err := service.Today(ctx, "ip_9.9.9.9")
	require.NoError(t, err)
	assert.Equal(t, DefaultSteps, m.Steps)
	assert.Equal(t, DefaultHeartRate, m.HeartRate)

	_, err = metricsRepo.Latest(ctx, "ip_9.9.9.9")
	assert.ErrorIs(t, err, ErrMetricNotFound)
}

func TestService_ConcurrentUpdatesAreSerialized(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func(steps int) {
			defer func() { done <- struct{}{} }()
			_, err := service.UpdateSteps(ctx, "ip_1.2.3.4", steps)
			assert.NoError(t, err)
		}(1000 + i)
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	m, err := service.Today(ctx, "ip_1.2.3.4")
	require.NoError(t, err)
	// the surviving value is one of the written ones, all other fields intact
	assert.GreaterOrEqual(t, m.Steps, 1000)
	assert.Less(t, m.Steps, 1020)
	assert.Equal(t, DefaultHeartRate, m.HeartRate)
}
