package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"simbridge/config"
	"simbridge/internal/domain/entity"
	"simbridge/internal/domain/repository"
	"simbridge/internal/domain/service"
	"simbridge/internal/errors"
	"simbridge/internal/registry"
	"simbridge/internal/usecase"
)

type forwardService struct {
	smsRepo  repository.SMSRepository
	hub      service.HubClient
	registry *registry.Registry
	logger   *slog.Logger

	workers     int
	maxAttempts int
	backoff     time.Duration
}

// NewForwardService creates the worker pool that pushes captured SMS to
// the Hub. Pool sizing keeps slow Hub responses from ever blocking the
// serial read loops.
func NewForwardService(
	smsRepo repository.SMSRepository,
	hub service.HubClient,
	reg *registry.Registry,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SMSForwardUsecase {
	return &forwardService{
		smsRepo:     smsRepo,
		hub:         hub,
		registry:    reg,
		logger:      logger,
		workers:     cfg.Forwarder.Workers,
		maxAttempts: cfg.Hub.MaxAttempts,
		backoff:     cfg.Hub.RetryBackoff,
	}
}

// Run fans the event stream out to the worker pool and blocks until the
// stream closes or ctx is done.
func (s *forwardService) Run(ctx context.Context, events <-chan entity.InboundSMS) {
	var wg sync.WaitGroup

	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-ctx.Done():
					return
				case sms, ok := <-events:
					if !ok {
						return
					}
					if err := s.Forward(ctx, sms); err != nil {
						s.logger.Error("sms forwarding failed",
							slog.String("port", sms.Port),
							slog.Any("error", err),
						)
					}
				}
			}
		}()
	}

	wg.Wait()
}

// Forward persists the message first, then attempts delivery. The record
// exists before the first push so a crash can never lose a captured SMS.
func (s *forwardService) Forward(ctx context.Context, sms entity.InboundSMS) error {
	activationID, err := s.registry.BindingFor(sms.Port)
	if err != nil && !errors.Is(err, registry.ErrModemNotFound) {
		return err
	}

	record := &entity.SMSRecord{
		ID:           uuid.NewString(),
		ActivationID: activationID,
		ModemPort:    sms.Port,
		PhoneFrom:    sms.Sender,
		Text:         sms.Text,
		ReceivedAt:   sms.ReceivedAt,
	}

	if modem, regErr := s.registry.Get(sms.Port); regErr == nil {
		record.PhoneTo = modem.PhoneNumber
	}

	if err := s.smsRepo.Create(ctx, record); err != nil {
		return errors.Wrap(err, "persist inbound sms")
	}

	if record.Orphan() {
		// No activation is bound to the port. The message stays on record
		// but is never pushed; the Hub has nothing to correlate it with.
		s.logger.Warn("orphan sms recorded",
			slog.String("smsId", record.ID),
			slog.String("port", sms.Port),
			slog.String("from", sms.Sender),
		)

		return nil
	}

	return s.deliver(ctx, record)
}

// deliver retries PUSH_SMS with bounded exponential backoff. Every
// attempt is written through to the record so the dashboard reflects
// delivery progress even mid-retry.
func (s *forwardService) deliver(ctx context.Context, record *entity.SMSRecord) error {
	backoff := s.backoff

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		pushErr := s.hub.PushSMS(ctx, record)
		if pushErr == nil {
			deliveredAt := time.Now()
			if err := s.smsRepo.MarkDelivered(ctx, record.ID, deliveredAt); err != nil {
				return errors.Wrap(err, "mark sms delivered")
			}

			s.logger.Info("sms delivered to hub",
				slog.String("smsId", record.ID),
				slog.Int("attempts", attempt),
			)

			return nil
		}

		lastErr = pushErr
		if err := s.smsRepo.RecordAttempt(ctx, record.ID, attempt, pushErr.Error()); err != nil {
			s.logger.Error("failed to record delivery attempt",
				slog.String("smsId", record.ID),
				slog.Any("error", err),
			)
		}
	}

	return errors.Wrapf(lastErr, "sms %s undelivered after %d attempts", record.ID, s.maxAttempts)
}
