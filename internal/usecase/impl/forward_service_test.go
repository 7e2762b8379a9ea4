package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"simbridge/config"
	"simbridge/internal/domain/entity"
	"simbridge/internal/errors"
	mockRepo "simbridge/internal/mocks/repository"
	mockService "simbridge/internal/mocks/service"
	"simbridge/internal/registry"
	"simbridge/internal/usecase"
)

// forwardServiceFixtures holds all test dependencies for forward service tests.
type forwardServiceFixtures struct {
	service  usecase.SMSForwardUsecase
	smsRepo  *mockRepo.MockSMSRepository
	hub      *mockService.MockHubClient
	registry *registry.Registry
}

func createTestForwardService(t *testing.T) forwardServiceFixtures {
	smsRepo := mockRepo.NewMockSMSRepository(t)
	hub := mockService.NewMockHubClient(t)
	reg := registry.New()

	cfg := &config.Config{}
	cfg.Forwarder.Workers = 2
	cfg.Hub.MaxAttempts = 3
	cfg.Hub.RetryBackoff = time.Millisecond

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewForwardService(smsRepo, hub, reg, cfg, logger)

	return forwardServiceFixtures{
		service:  service,
		smsRepo:  smsRepo,
		hub:      hub,
		registry: reg,
	}
}

func addBoundModem(t *testing.T, reg *registry.Registry, port, phone string, activationID int64) {
	t.Helper()

	reg.Register(port, "russia", "mts")
	require.NoError(t, reg.UpdateTelemetry(port, entity.Telemetry{PhoneNumber: phone}))
	require.NoError(t, reg.MarkReady(port))
	require.NoError(t, reg.Reserve(port, activationID))
}

func inbound(port string) entity.InboundSMS {
	return entity.InboundSMS{
		Port:       port,
		Sender:     "ServiceName",
		Text:       "Your code is 4821",
		ReceivedAt: time.Now(),
	}
}

func TestForwardService_Forward_DeliversBoundSMS(t *testing.T) {
	fx := createTestForwardService(t)
	ctx := context.Background()
	addBoundModem(t, fx.registry, "/dev/ttyUSB0", "+79161234567", 101)

	var created *entity.SMSRecord
	fx.smsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SMSRecord")).
		RunAndReturn(func(_ context.Context, record *entity.SMSRecord) error {
			created = record
			return nil
		})

	fx.hub.EXPECT().
		PushSMS(ctx, mock.AnythingOfType("*entity.SMSRecord")).
		Return(nil)

	fx.smsRepo.EXPECT().
		MarkDelivered(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil)

	require.NoError(t, fx.service.Forward(ctx, inbound("/dev/ttyUSB0")))

	require.NotNil(t, created)
	assert.Equal(t, int64(101), created.ActivationID)
	assert.Equal(t, "+79161234567", created.PhoneTo)
	assert.Equal(t, "ServiceName", created.PhoneFrom)
	assert.NotEmpty(t, created.ID)
}

func TestForwardService_Forward_OrphanPersistedNeverPushed(t *testing.T) {
	fx := createTestForwardService(t)
	ctx := context.Background()

	// Ready but unbound: the message has no activation to belong to.
	reg := fx.registry
	reg.Register("/dev/ttyUSB0", "russia", "mts")
	require.NoError(t, reg.UpdateTelemetry("/dev/ttyUSB0", entity.Telemetry{PhoneNumber: "+79161234567"}))
	require.NoError(t, reg.MarkReady("/dev/ttyUSB0"))

	var created *entity.SMSRecord
	fx.smsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SMSRecord")).
		RunAndReturn(func(_ context.Context, record *entity.SMSRecord) error {
			created = record
			return nil
		})

	// No PushSMS expectation: orphans must never reach the Hub.
	require.NoError(t, fx.service.Forward(ctx, inbound("/dev/ttyUSB0")))

	require.NotNil(t, created)
	assert.True(t, created.Orphan())
}

func TestForwardService_Forward_UnknownPortPersistedAsOrphan(t *testing.T) {
	fx := createTestForwardService(t)
	ctx := context.Background()

	fx.smsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SMSRecord")).
		Return(nil)

	require.NoError(t, fx.service.Forward(ctx, inbound("/dev/ttyUSB9")))
}

func TestForwardService_Forward_RetriesThenSucceeds(t *testing.T) {
	fx := createTestForwardService(t)
	ctx := context.Background()
	addBoundModem(t, fx.registry, "/dev/ttyUSB0", "+79161234567", 101)

	fx.smsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SMSRecord")).
		Return(nil)

	pushErr := errors.New("hub unreachable")
	fx.hub.EXPECT().
		PushSMS(ctx, mock.AnythingOfType("*entity.SMSRecord")).
		Return(pushErr).
		Twice()

	fx.smsRepo.EXPECT().
		RecordAttempt(ctx, mock.AnythingOfType("string"), 1, "hub unreachable").
		Return(nil)

	fx.smsRepo.EXPECT().
		RecordAttempt(ctx, mock.AnythingOfType("string"), 2, "hub unreachable").
		Return(nil)

	fx.hub.EXPECT().
		PushSMS(ctx, mock.AnythingOfType("*entity.SMSRecord")).
		Return(nil).
		Once()

	fx.smsRepo.EXPECT().
		MarkDelivered(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil)

	require.NoError(t, fx.service.Forward(ctx, inbound("/dev/ttyUSB0")))
}

func TestForwardService_Forward_ExhaustionKeepsLastError(t *testing.T) {
	fx := createTestForwardService(t)
	ctx := context.Background()
	addBoundModem(t, fx.registry, "/dev/ttyUSB0", "+79161234567", 101)

	fx.smsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SMSRecord")).
		Return(nil)

	pushErr := errors.New("hub unreachable")
	fx.hub.EXPECT().
		PushSMS(ctx, mock.AnythingOfType("*entity.SMSRecord")).
		Return(pushErr).
		Times(3)

	for attempt := 1; attempt <= 3; attempt++ {
		fx.smsRepo.EXPECT().
			RecordAttempt(ctx, mock.AnythingOfType("string"), attempt, "hub unreachable").
			Return(nil)
	}

	err := fx.service.Forward(ctx, inbound("/dev/ttyUSB0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pushErr)
}

func TestForwardService_Forward_PersistFailureAbortsDelivery(t *testing.T) {
	fx := createTestForwardService(t)
	ctx := context.Background()
	addBoundModem(t, fx.registry, "/dev/ttyUSB0", "+79161234567", 101)

	fx.smsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SMSRecord")).
		Return(errors.New("disk full"))

	// No PushSMS expectation: nothing may be pushed before it is durable.
	err := fx.service.Forward(ctx, inbound("/dev/ttyUSB0"))
	require.Error(t, err)
}

func TestForwardService_Run_ConsumesEventStream(t *testing.T) {
	fx := createTestForwardService(t)
	addBoundModem(t, fx.registry, "/dev/ttyUSB0", "+79161234567", 101)

	fx.smsRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.SMSRecord")).
		Return(nil).
		Times(3)

	fx.hub.EXPECT().
		PushSMS(mock.Anything, mock.AnythingOfType("*entity.SMSRecord")).
		Return(nil).
		Times(3)

	fx.smsRepo.EXPECT().
		MarkDelivered(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil).
		Times(3)

	events := make(chan entity.InboundSMS, 3)
	for range 3 {
		events <- inbound("/dev/ttyUSB0")
	}
	close(events)

	done := make(chan struct{})
	go func() {
		fx.service.Run(context.Background(), events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker pool did not drain the closed event stream")
	}
}
