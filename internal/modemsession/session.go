// Package modemsession runs one supervised session per physical modem.
// The session owns its driver exclusively: every AT command and every
// notification for a port flows through its loops, so there is never
// more than one in-flight command per device.
package modemsession

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"simbridge/config"
	"simbridge/internal/domain/entity"
	"simbridge/internal/errors"
	"simbridge/internal/infra/modem"
	"simbridge/internal/registry"
)

// ErrModemFailed is surfaced once command retries are exhausted. The
// modem is marked Error in the registry and stays out of rotation until
// an explicit Reconnect.
var ErrModemFailed = errors.New("modem command retries exhausted")

// DriverFactory opens a fresh driver for the session's port. Reconnect
// uses it to replace a wedged device handle.
type DriverFactory func() (modem.Driver, error)

// Session supervises one modem: init sequence, inbound SMS capture and
// periodic telemetry refresh.
type Session struct {
	port     string
	cfg      config.SessionConfig
	open     DriverFactory
	registry *registry.Registry
	logger   *slog.Logger

	events chan entity.InboundSMS

	malformed atomic.Int64

	mu     sync.Mutex
	driver modem.Driver
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New registers the modem and prepares a session. Start must be called
// before any events are produced.
func New(modemCfg config.ModemConfig, sessionCfg config.SessionConfig, open DriverFactory, reg *registry.Registry, logger *slog.Logger) *Session {
	reg.Register(modemCfg.Port, modemCfg.Country, modemCfg.Operator)

	return &Session{
		port:     modemCfg.Port,
		cfg:      sessionCfg,
		open:     open,
		registry: reg,
		logger:   logger.With(slog.String("port", modemCfg.Port)),
		events:   make(chan entity.InboundSMS, 16),
	}
}

// Events is the stream of inbound messages captured by this session.
func (s *Session) Events() <-chan entity.InboundSMS {
	return s.events
}

// MalformedCount reports how many inbound payloads were dropped as unparseable.
func (s *Session) MalformedCount() int64 {
	return s.malformed.Load()
}

// Start opens the driver, runs the init sequence and launches the
// notification and telemetry loops.
func (s *Session) Start(ctx context.Context) error {
	driver, err := s.open()
	if err != nil {
		_ = s.registry.MarkOffline(s.port)

		return errors.Wrapf(err, "open modem %s", s.port)
	}

	loopCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.driver = driver
	s.cancel = cancel
	s.mu.Unlock()

	if err := s.initialize(loopCtx, driver); err != nil {
		cancel()
		_ = driver.Close()
		_ = s.registry.MarkError(s.port)

		return err
	}

	if err := s.registry.MarkReady(s.port); err != nil {
		cancel()
		_ = driver.Close()

		return err
	}

	s.wg.Add(2)
	go s.notificationLoop(loopCtx, driver)
	go s.telemetryLoop(loopCtx, driver)

	s.logger.Info("modem session started")

	return nil
}

// Stop tears the session down. In-flight commands are aborted by the
// driver close.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	driver := s.driver
	s.cancel = nil
	s.driver = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if driver != nil {
		_ = driver.Close()
	}
	s.wg.Wait()
}

// Reconnect replaces the device handle and restarts the loops. The old
// driver is closed first so any wedged command fails immediately.
func (s *Session) Reconnect(ctx context.Context) error {
	s.Stop()
	s.registry.Register(s.port, s.countryOf(), s.operatorOf())

	return s.Start(ctx)
}

func (s *Session) countryOf() string {
	m, err := s.registry.Get(s.port)
	if err != nil {
		return ""
	}

	return m.Country
}

func (s *Session) operatorOf() string {
	m, err := s.registry.Get(s.port)
	if err != nil {
		return ""
	}

	return m.Operator
}

// initialize puts the modem into text mode with slot notifications and
// records the first telemetry snapshot.
func (s *Session) initialize(ctx context.Context, driver modem.Driver) error {
	for _, cmd := range []string{
		modem.CmdEchoOff,
		modem.CmdTextMode,
		modem.CmdSetStorage,
		modem.CmdNotifyOnSMS,
	} {
		if _, err := s.sendWithRetry(ctx, driver, cmd); err != nil {
			return err
		}
	}

	telemetry, err := driver.GetTelemetry(ctx)
	if err != nil {
		return errors.Wrapf(err, "initial telemetry for %s", s.port)
	}

	return s.registry.UpdateTelemetry(s.port, telemetry)
}

// sendWithRetry applies linear backoff up to the configured retry budget.
// Exhaustion marks the modem Error and returns ErrModemFailed; there is
// no silent auto recovery.
func (s *Session) sendWithRetry(ctx context.Context, driver modem.Driver, cmd string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= s.cfg.CommandRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", errors.WithStack(ctx.Err())
			case <-time.After(time.Duration(attempt) * s.cfg.RetryBackoff):
			}
		}

		response, err := driver.SendCommand(ctx, cmd, s.cfg.CommandTimeout)
		if err == nil {
			return response, nil
		}
		if errors.Is(err, modem.ErrDriverClosed) || errors.Is(err, context.Canceled) {
			return "", err
		}

		lastErr = err
		s.logger.Warn("modem command failed",
			slog.String("cmd", cmd),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err),
		)
	}

	_ = s.registry.MarkError(s.port)

	return "", errors.Wrapf(ErrModemFailed, "%s: %v", cmd, lastErr)
}

// notificationLoop waits for +CMTI slot notifications, reads the full
// message body and only then deletes the slot. A slot whose body could
// not be read stays on the SIM.
func (s *Session) notificationLoop(ctx context.Context, driver modem.Driver) {
	defer s.wg.Done()

	for {
		line, err := driver.ReadNotification(ctx)
		if err != nil {
			if !errors.Is(err, modem.ErrDriverClosed) && !errors.Is(err, context.Canceled) {
				s.logger.Error("notification read failed", slog.Any("error", err))
				_ = s.registry.MarkError(s.port)
			}

			return
		}

		s.handleNotification(ctx, driver, line)
	}
}

func (s *Session) handleNotification(ctx context.Context, driver modem.Driver, line string) {
	_, index, err := modem.ParseCMTI(line)
	if err != nil {
		s.malformed.Add(1)
		s.logger.Warn("dropping malformed notification", slog.String("line", line))

		return
	}

	response, err := s.sendWithRetry(ctx, driver, fmt.Sprintf(modem.CmdReadSMSFormat, index))
	if err != nil {
		s.logger.Error("failed to read inbound sms", slog.Int("slot", index), slog.Any("error", err))

		return
	}

	receivedAt := time.Now()
	sender, text, parseErr := modem.ParseCMGR(response)

	// The body made it off the device; free the slot either way so the
	// SIM storage cannot fill up on garbage.
	if _, err := s.sendWithRetry(ctx, driver, fmt.Sprintf(modem.CmdDeleteSMSFormat, index)); err != nil {
		s.logger.Warn("failed to delete sms slot", slog.Int("slot", index), slog.Any("error", err))
	}

	if parseErr != nil {
		s.malformed.Add(1)
		s.logger.Warn("dropping malformed inbound sms",
			slog.Int("slot", index),
			slog.Any("error", parseErr),
		)

		return
	}

	event := entity.InboundSMS{
		Port:       s.port,
		Sender:     sender,
		Text:       text,
		ReceivedAt: receivedAt,
	}

	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

// telemetryLoop refreshes signal and identity on the poll interval.
// Failures within the retry budget are tolerated; only sustained failure
// takes the modem out of rotation.
func (s *Session) telemetryLoop(ctx context.Context, driver modem.Driver) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	var consecutiveFailures int
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		telemetry, err := driver.GetTelemetry(ctx)
		if err != nil {
			if errors.Is(err, modem.ErrDriverClosed) || errors.Is(err, context.Canceled) {
				return
			}

			consecutiveFailures++
			s.logger.Warn("telemetry poll failed",
				slog.Int("consecutive", consecutiveFailures),
				slog.Any("error", err),
			)
			if consecutiveFailures > s.cfg.CommandRetries {
				_ = s.registry.MarkError(s.port)
			}

			continue
		}
		consecutiveFailures = 0

		if err := s.registry.UpdateTelemetry(s.port, telemetry); err != nil {
			s.logger.Warn("telemetry update rejected", slog.Any("error", err))
		}
	}
}
