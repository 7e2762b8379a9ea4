package modemsession

import (
	"context"
	"log/slog"
	"sync"

	"simbridge/config"
	"simbridge/internal/domain/entity"
	"simbridge/internal/domain/repository"
	"simbridge/internal/errors"
	"simbridge/internal/infra/modem"
	"simbridge/internal/registry"
	"simbridge/internal/usecase"

	"go.uber.org/fx"
)

// ErrUnknownPort is returned for a reconnect request naming a port no
// session was configured for.
var ErrUnknownPort = errors.New("no session for port")

// ManagerParams defines the parameters required for the session fleet.
type ManagerParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Registry    *registry.Registry
	Activations repository.ActivationRepository
	Forwarder   usecase.SMSForwardUsecase
	Logger      *slog.Logger
}

// Manager supervises one session per configured modem and fans their
// inbound SMS streams into the forwarder's worker pool.
type Manager struct {
	sessions    []*Session
	reg         *registry.Registry
	activations repository.ActivationRepository
	forwarder   usecase.SMSForwardUsecase
	logger      *slog.Logger

	merged chan entity.InboundSMS
	runCtx context.Context
	cancel context.CancelFunc
	fanIn  sync.WaitGroup
	done   chan struct{}

	mu       sync.Mutex
	draining map[string]bool
}

// NewManager builds the fleet from config and hooks it into the fx
// lifecycle. A modem that fails to start is marked in the registry and
// left out of rotation; it never blocks application startup.
func NewManager(params ManagerParams) *Manager {
	m := &Manager{
		reg:         params.Registry,
		activations: params.Activations,
		forwarder:   params.Forwarder,
		logger:      params.Logger,
		merged:      make(chan entity.InboundSMS, params.Config.Forwarder.QueueSize),
		done:        make(chan struct{}),
		draining:    make(map[string]bool),
	}

	for _, modemCfg := range params.Config.Modems {
		factory := func() (modem.Driver, error) {
			return modem.OpenSerial(modemCfg, params.Logger)
		}
		m.sessions = append(m.sessions, New(modemCfg, params.Config.Session, factory, params.Registry, params.Logger))
	}

	params.Append(fx.Hook{
		OnStart: m.start,
		OnStop:  m.stop,
	})

	return m
}

func (m *Manager) start(ctx context.Context) error {
	// Loops outlive the bounded OnStart context.
	runCtx, cancel := context.WithCancel(context.Background())
	m.runCtx = runCtx
	m.cancel = cancel

	var started []*Session
	for _, session := range m.sessions {
		if err := session.Start(runCtx); err != nil {
			m.logger.Error("modem session failed to start",
				slog.String("port", session.port),
				slog.Any("error", err),
			)

			continue
		}

		started = append(started, session)
	}

	// Bindings must be restored before any inbound SMS is forwarded,
	// otherwise messages for pre-restart activations would be orphaned.
	if err := RebindActive(ctx, m.activations, m.reg, m.logger); err != nil {
		return err
	}

	for _, session := range started {
		m.drain(session)
	}

	go func() {
		defer close(m.done)
		m.forwarder.Run(runCtx, m.merged)
	}()

	return nil
}

// RebindActive restores registry bindings for activations that were in
// the active set when the process last stopped. The Hub still holds
// these numbers; a restart must not hand them out again or orphan their
// inbound SMS.
func RebindActive(ctx context.Context, repo repository.ActivationRepository, reg *registry.Registry, logger *slog.Logger) error {
	active, err := repo.ListActive(ctx)
	if err != nil {
		return errors.Wrap(err, "list active activations")
	}

	for _, activation := range active {
		current, err := reg.Get(activation.ModemPort)
		if err != nil {
			logger.Warn("active activation references unknown port",
				slog.Int64("activationId", activation.ID),
				slog.String("port", activation.ModemPort),
			)

			continue
		}

		// A different SIM in the slot means the activation's number is
		// gone; the modem stays free rather than carrying a stale binding.
		if current.PhoneNumber != "" && current.PhoneNumber != activation.PhoneNumber {
			logger.Warn("active activation phone mismatch, leaving modem unbound",
				slog.Int64("activationId", activation.ID),
				slog.String("port", activation.ModemPort),
				slog.String("phone", activation.PhoneNumber),
			)

			continue
		}

		if err := reg.Reserve(activation.ModemPort, activation.ID); err != nil {
			logger.Warn("could not rebind active activation",
				slog.Int64("activationId", activation.ID),
				slog.String("port", activation.ModemPort),
				slog.Any("error", err),
			)

			continue
		}

		logger.Info("rebound active activation",
			slog.Int64("activationId", activation.ID),
			slog.String("port", activation.ModemPort),
		)
	}

	return nil
}

// drain launches the fan-in goroutine for a session exactly once.
func (m *Manager) drain(session *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draining[session.port] {
		return
	}
	m.draining[session.port] = true

	m.fanIn.Add(1)
	go m.forward(m.runCtx, session)
}

func (m *Manager) forward(ctx context.Context, session *Session) {
	defer m.fanIn.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-session.Events():
			select {
			case m.merged <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

// ReconnectPort tears down and reopens the session for one port. The
// restarted loops run on the manager's lifetime context, not the
// caller's request context.
func (m *Manager) ReconnectPort(_ context.Context, port string) error {
	if m.runCtx == nil {
		return errors.New("modem sessions not started")
	}

	for _, session := range m.sessions {
		if session.port != port {
			continue
		}

		if err := session.Reconnect(m.runCtx); err != nil {
			return err
		}

		// A session that never came up had no fan-in goroutine yet.
		m.drain(session)

		return nil
	}

	return errors.Wrapf(ErrUnknownPort, "port %s", port)
}

func (m *Manager) stop(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}

	for _, session := range m.sessions {
		session.Stop()
	}

	m.fanIn.Wait()

	select {
	case <-m.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	m.logger.Info("modem sessions stopped")

	return nil
}

// Sessions exposes the supervised sessions, keyed by nothing but their
// configured order.
func (m *Manager) Sessions() []*Session {
	return m.sessions
}
