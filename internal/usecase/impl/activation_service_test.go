package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"simbridge/config"
	"simbridge/internal/domain/entity"
	domainerrors "simbridge/internal/domain/errors"
	"simbridge/internal/domain/repository"
	"simbridge/internal/errors"
	mockRepo "simbridge/internal/mocks/repository"
	"simbridge/internal/registry"
	"simbridge/internal/usecase"
)

// activationServiceFixtures holds all test dependencies for activation service tests.
type activationServiceFixtures struct {
	service        usecase.ActivationUsecase
	activationRepo *mockRepo.MockActivationRepository
	usageRepo      *mockRepo.MockNumberUsageRepository
	registry       *registry.Registry
}

func createTestActivationService(t *testing.T) activationServiceFixtures {
	activationRepo := mockRepo.NewMockActivationRepository(t)
	usageRepo := mockRepo.NewMockNumberUsageRepository(t)
	reg := registry.New()

	cfg := &config.Config{}
	cfg.Hub.Services = []string{"vk", "tg"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewActivationService(activationRepo, usageRepo, reg, cfg, logger)

	return activationServiceFixtures{
		service:        service,
		activationRepo: activationRepo,
		usageRepo:      usageRepo,
		registry:       reg,
	}
}

func addReadyModem(t *testing.T, reg *registry.Registry, port, phone string) {
	t.Helper()

	reg.Register(port, "russia", "mts")
	require.NoError(t, reg.UpdateTelemetry(port, entity.Telemetry{PhoneNumber: phone, SignalQuality: 80}))
	require.NoError(t, reg.MarkReady(port))
}

func TestActivationService_GetNumber_FreshNumber(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")

	fx.usageRepo.EXPECT().
		Get(ctx, "+79161111111").
		Return(nil, nil)

	fx.activationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Activation")).
		RunAndReturn(func(_ context.Context, activation *entity.Activation) error {
			activation.ID = 101
			return nil
		})

	fx.usageRepo.EXPECT().
		BindService(ctx, "+79161111111", "vk").
		Return(nil)

	assignment, err := fx.service.GetNumber(ctx, usecase.NumberQuery{Service: "vk"})
	require.NoError(t, err)
	assert.Equal(t, int64(101), assignment.ActivationID)
	assert.Equal(t, "+79161111111", assignment.Number)

	modem, err := fx.registry.Get("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, entity.ModemBusy, modem.State)
	assert.Equal(t, int64(101), modem.ActivationID)
}

func TestActivationService_GetNumber_NoModems(t *testing.T) {
	fx := createTestActivationService(t)

	_, err := fx.service.GetNumber(context.Background(), usecase.NumberQuery{Service: "vk"})
	assert.ErrorIs(t, err, domainerrors.ErrNoCapacity)
}

func TestActivationService_GetNumber_UnknownService(t *testing.T) {
	fx := createTestActivationService(t)
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")

	_, err := fx.service.GetNumber(context.Background(), usecase.NumberQuery{Service: "unknown-service"})
	assert.ErrorIs(t, err, domainerrors.ErrNoCapacity)
}

func TestActivationService_GetNumber_ExceptionPrefixSkipsPhone(t *testing.T) {
	fx := createTestActivationService(t)
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")

	_, err := fx.service.GetNumber(context.Background(), usecase.NumberQuery{Service: "vk", ExceptionPrefixes: []string{"7916"}})
	assert.ErrorIs(t, err, domainerrors.ErrNoCapacity)
}

func TestActivationService_GetNumber_ExhaustedNumberExcluded(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")

	fx.usageRepo.EXPECT().
		Get(ctx, "+79161111111").
		Return(&entity.NumberUsage{PhoneNumber: "+79161111111", Service: "vk", Count: entity.MaxPhoneReuses}, nil)

	_, err := fx.service.GetNumber(ctx, usecase.NumberQuery{Service: "vk"})
	assert.ErrorIs(t, err, domainerrors.ErrNoCapacity)
}

func TestActivationService_GetNumber_CancelledNumberReusable(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")

	fx.usageRepo.EXPECT().
		Get(ctx, "+79161111111").
		Return(&entity.NumberUsage{PhoneNumber: "+79161111111", Service: "vk", Count: 2}, nil)

	fx.activationRepo.EXPECT().
		FindLatestByPhoneAndService(ctx, "+79161111111", "vk").
		Return(&entity.Activation{ID: 90, Status: entity.StatusCancelledReusable}, nil)

	fx.activationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Activation")).
		RunAndReturn(func(_ context.Context, activation *entity.Activation) error {
			activation.ID = 102
			return nil
		})

	fx.usageRepo.EXPECT().
		BindService(ctx, "+79161111111", "vk").
		Return(nil)

	assignment, err := fx.service.GetNumber(ctx, usecase.NumberQuery{Service: "vk"})
	require.NoError(t, err)
	assert.Equal(t, int64(102), assignment.ActivationID)
}

func TestActivationService_GetNumber_CompletedNumberNotReusable(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")

	fx.usageRepo.EXPECT().
		Get(ctx, "+79161111111").
		Return(&entity.NumberUsage{PhoneNumber: "+79161111111", Service: "vk", Count: 1}, nil)

	fx.activationRepo.EXPECT().
		FindLatestByPhoneAndService(ctx, "+79161111111", "vk").
		Return(&entity.Activation{ID: 90, Status: entity.StatusCompleted}, nil)

	_, err := fx.service.GetNumber(ctx, usecase.NumberQuery{Service: "vk"})
	assert.ErrorIs(t, err, domainerrors.ErrNoCapacity)
}

func TestActivationService_GetNumber_PrefersReusableOverFresh(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	// Fresh number sorts first by port; the reusable one must still win.
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")
	addReadyModem(t, fx.registry, "/dev/ttyUSB1", "+79162222222")

	fx.usageRepo.EXPECT().
		Get(ctx, "+79161111111").
		Return(nil, nil)

	fx.usageRepo.EXPECT().
		Get(ctx, "+79162222222").
		Return(&entity.NumberUsage{PhoneNumber: "+79162222222", Service: "vk", Count: 1}, nil)

	fx.activationRepo.EXPECT().
		FindLatestByPhoneAndService(ctx, "+79162222222", "vk").
		Return(&entity.Activation{ID: 90, Status: entity.StatusCancelledReusable}, nil)

	fx.activationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Activation")).
		RunAndReturn(func(_ context.Context, activation *entity.Activation) error {
			activation.ID = 103
			return nil
		})

	fx.usageRepo.EXPECT().
		BindService(ctx, "+79162222222", "vk").
		Return(nil)

	assignment, err := fx.service.GetNumber(ctx, usecase.NumberQuery{Service: "vk"})
	require.NoError(t, err)
	assert.Equal(t, "+79162222222", assignment.Number)
}

func TestActivationService_GetNumber_PersistFailureRollsBackReservation(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")

	fx.usageRepo.EXPECT().
		Get(ctx, "+79161111111").
		Return(nil, nil)

	fx.activationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Activation")).
		Return(repository.ErrBusy)

	_, err := fx.service.GetNumber(ctx, usecase.NumberQuery{Service: "vk"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PERSISTENCE_FAILED", appErr.ErrorCode())

	modem, regErr := fx.registry.Get("/dev/ttyUSB0")
	require.NoError(t, regErr)
	assert.Equal(t, entity.ModemReady, modem.State, "reservation must be rolled back")
	assert.False(t, modem.Bound())
}

func TestActivationService_FinishActivation_InvalidStatus(t *testing.T) {
	fx := createTestActivationService(t)

	err := fx.service.FinishActivation(context.Background(), 1, 11)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS", appErr.ErrorCode())

	err = fx.service.FinishActivation(context.Background(), 1, 0)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS", appErr.ErrorCode())
}

func TestActivationService_FinishActivation_NotFound(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	fx.activationRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrActivationNotFound)

	err := fx.service.FinishActivation(ctx, 404, 3)
	assert.ErrorIs(t, err, domainerrors.ErrActivationNotFound)
}

func TestActivationService_FinishActivation_CancellationIncrementsAndReleases(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")
	require.NoError(t, fx.registry.Reserve("/dev/ttyUSB0", 101))

	fx.activationRepo.EXPECT().
		FindByID(ctx, int64(101)).
		Return(&entity.Activation{
			ID:          101,
			ModemPort:   "/dev/ttyUSB0",
			PhoneNumber: "+79161111111",
			Service:     "vk",
			Status:      entity.StatusWaiting,
		}, nil)

	fx.activationRepo.EXPECT().
		UpdateStatus(ctx, int64(101), entity.StatusCancelledReusable).
		Return(nil)

	fx.usageRepo.EXPECT().
		Increment(ctx, "+79161111111", "vk").
		Return(nil)

	require.NoError(t, fx.service.FinishActivation(ctx, 101, int(entity.StatusCancelledReusable)))

	modem, err := fx.registry.Get("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, entity.ModemReady, modem.State)
	assert.False(t, modem.Bound())
}

func TestActivationService_FinishActivation_ReplayedCancellationIdempotent(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	fx.activationRepo.EXPECT().
		FindByID(ctx, int64(101)).
		Return(&entity.Activation{
			ID:          101,
			ModemPort:   "/dev/ttyUSB0",
			PhoneNumber: "+79161111111",
			Service:     "vk",
			Status:      entity.StatusCancelledReusable,
		}, nil)

	fx.activationRepo.EXPECT().
		UpdateStatus(ctx, int64(101), entity.StatusCancelledReusable).
		Return(nil)

	// No Increment expectation: a replay must not double-count.
	require.NoError(t, fx.service.FinishActivation(ctx, 101, int(entity.StatusCancelledReusable)))
}

func TestActivationService_FinishActivation_CompletionReleasesWithoutIncrement(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")
	require.NoError(t, fx.registry.Reserve("/dev/ttyUSB0", 101))

	fx.activationRepo.EXPECT().
		FindByID(ctx, int64(101)).
		Return(&entity.Activation{
			ID:          101,
			ModemPort:   "/dev/ttyUSB0",
			PhoneNumber: "+79161111111",
			Service:     "vk",
			Status:      entity.StatusReady,
		}, nil)

	fx.activationRepo.EXPECT().
		UpdateStatus(ctx, int64(101), entity.StatusCompleted).
		Return(nil)

	require.NoError(t, fx.service.FinishActivation(ctx, 101, int(entity.StatusCompleted)))

	modem, err := fx.registry.Get("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, entity.ModemReady, modem.State)
}

func TestActivationService_FinishActivation_OpaqueHubStatusApplied(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	fx.activationRepo.EXPECT().
		FindByID(ctx, int64(101)).
		Return(&entity.Activation{
			ID:          101,
			ModemPort:   "/dev/ttyUSB0",
			PhoneNumber: "+79161111111",
			Service:     "vk",
			Status:      entity.StatusCompleted,
		}, nil)

	fx.activationRepo.EXPECT().
		UpdateStatus(ctx, int64(101), entity.ActivationStatus(8)).
		Return(nil)

	require.NoError(t, fx.service.FinishActivation(ctx, 101, 8))
}

func TestActivationService_GetServices_CountsPerCountryOperator(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")
	addReadyModem(t, fx.registry, "/dev/ttyUSB1", "+79162222222")

	fx.usageRepo.EXPECT().
		Get(ctx, "+79161111111").
		Return(nil, nil)

	// Second number has spent its reuse budget for vk but not for tg.
	fx.usageRepo.EXPECT().
		Get(ctx, "+79162222222").
		Return(&entity.NumberUsage{PhoneNumber: "+79162222222", Service: "vk", Count: entity.MaxPhoneReuses}, nil)

	countryList, err := fx.service.GetServices(ctx)
	require.NoError(t, err)
	require.Len(t, countryList, 1)

	assert.Equal(t, "russia", countryList[0].Country)
	serviceMap := countryList[0].OperatorMap["mts"]
	require.NotNil(t, serviceMap)
	assert.Equal(t, 1, serviceMap["vk"])
	assert.Equal(t, 2, serviceMap["tg"])
}

func TestActivationService_GetServices_EmptyRegistry(t *testing.T) {
	fx := createTestActivationService(t)

	countryList, err := fx.service.GetServices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, countryList)
}

func TestActivationService_GetNumber_UsageBindFailureRollsBack(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	addReadyModem(t, fx.registry, "/dev/ttyUSB0", "+79161111111")

	fx.usageRepo.EXPECT().
		Get(ctx, "+79161111111").
		Return(nil, nil)

	fx.activationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Activation")).
		RunAndReturn(func(_ context.Context, activation *entity.Activation) error {
			activation.ID = 7
			return nil
		})

	fx.usageRepo.EXPECT().
		BindService(ctx, "+79161111111", "vk").
		Return(errors.New("disk I/O error"))

	// The aborted lease is cancelled so it never counts as active again.
	fx.activationRepo.EXPECT().
		UpdateStatus(ctx, int64(7), entity.StatusCancelledReusable).
		Return(nil)

	_, err := fx.service.GetNumber(ctx, usecase.NumberQuery{Service: "vk"})
	require.Error(t, err)

	modem, regErr := fx.registry.Get("/dev/ttyUSB0")
	require.NoError(t, regErr)
	assert.Equal(t, entity.ModemReady, modem.State)
	assert.False(t, modem.Bound())
}
