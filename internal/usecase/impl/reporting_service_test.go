package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simbridge/internal/domain/entity"
	domainerrors "simbridge/internal/domain/errors"
	"simbridge/internal/domain/repository"
	mockRepo "simbridge/internal/mocks/repository"
	"simbridge/internal/registry"
	"simbridge/internal/usecase"
)

// reportingServiceFixtures holds all test dependencies for reporting service tests.
type reportingServiceFixtures struct {
	service        usecase.ReportingUsecase
	activationRepo *mockRepo.MockActivationRepository
	smsRepo        *mockRepo.MockSMSRepository
	registry       *registry.Registry
}

func createTestReportingService(t *testing.T) reportingServiceFixtures {
	activationRepo := mockRepo.NewMockActivationRepository(t)
	smsRepo := mockRepo.NewMockSMSRepository(t)
	reg := registry.New()

	service := NewReportingService(activationRepo, smsRepo, reg)

	return reportingServiceFixtures{
		service:        service,
		activationRepo: activationRepo,
		smsRepo:        smsRepo,
		registry:       reg,
	}
}

func TestReportingService_ListModems(t *testing.T) {
	fx := createTestReportingService(t)
	fx.registry.Register("/dev/ttyUSB0", "russia", "mts")

	modems, err := fx.service.ListModems(context.Background())
	require.NoError(t, err)
	require.Len(t, modems, 1)
	assert.Equal(t, "/dev/ttyUSB0", modems[0].Port)
}

func TestReportingService_ListActivations_DefaultLimit(t *testing.T) {
	fx := createTestReportingService(t)
	ctx := context.Background()

	fx.activationRepo.EXPECT().
		List(ctx, defaultListLimit).
		Return([]*entity.Activation{{ID: 1}}, nil)

	activations, err := fx.service.ListActivations(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, activations, 1)
}

func TestReportingService_GetActivation_NotFound(t *testing.T) {
	fx := createTestReportingService(t)
	ctx := context.Background()

	fx.activationRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrActivationNotFound)

	_, err := fx.service.GetActivation(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrActivationNotFound)
}

func TestReportingService_GetSMS_NotFound(t *testing.T) {
	fx := createTestReportingService(t)
	ctx := context.Background()

	fx.smsRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrSMSNotFound)

	_, err := fx.service.GetSMS(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrSMSNotFound)
}

func TestReportingService_Stats(t *testing.T) {
	fx := createTestReportingService(t)
	ctx := context.Background()

	fx.registry.Register("/dev/ttyUSB0", "russia", "mts")
	require.NoError(t, fx.registry.MarkReady("/dev/ttyUSB0"))
	fx.registry.Register("/dev/ttyUSB1", "russia", "mts")

	fx.activationRepo.EXPECT().
		CountByStatus(ctx).
		Return(map[entity.ActivationStatus]int64{
			entity.StatusWaiting:   2,
			entity.StatusCompleted: 5,
		}, nil)

	fx.smsRepo.EXPECT().
		CountUndelivered(ctx).
		Return(int64(3), nil)

	stats, err := fx.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ModemsByState[string(entity.ModemReady)])
	assert.Equal(t, 1, stats.ModemsByState[string(entity.ModemInitializing)])
	assert.Equal(t, int64(2), stats.ActivationsByStatus[1])
	assert.Equal(t, int64(5), stats.ActivationsByStatus[3])
	assert.Equal(t, int64(3), stats.UndeliveredSMS)
}
