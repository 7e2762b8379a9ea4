// Package registry tracks every attached modem and owns the transition
// between Ready and Busy. All state lives in memory; the registry never
// performs network or database I/O while holding its lock.
package registry

import (
	"sync"
	"time"

	"simbridge/internal/domain/entity"
	"simbridge/internal/errors"
)

var (
	// ErrModemNotFound is returned for a port the registry has never seen.
	ErrModemNotFound = errors.New("modem not found")

	// ErrModemNotReady is returned when a reservation loses the race or
	// targets a modem outside the Ready state.
	ErrModemNotReady = errors.New("modem not ready")
)

// Registry is the in-memory source of truth for modem state.
type Registry struct {
	mu     sync.RWMutex
	modems map[string]*entity.Modem
}

func New() *Registry {
	return &Registry{
		modems: make(map[string]*entity.Modem),
	}
}

// Register adds a modem in the Initializing state. Re-registering an
// existing port resets its entry; sessions do this on reconnect.
func (r *Registry) Register(port, country, operator string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.modems[port] = &entity.Modem{
		Port:     port,
		State:    entity.ModemInitializing,
		Country:  country,
		Operator: operator,
		LastSeen: time.Now(),
	}
}

// MarkReady moves a modem into the Ready pool.
func (r *Registry) MarkReady(port string) error {
	return r.setState(port, entity.ModemReady)
}

// MarkError takes a modem out of rotation after a command failure.
func (r *Registry) MarkError(port string) error {
	return r.setState(port, entity.ModemError)
}

// MarkOffline records that the port disappeared.
func (r *Registry) MarkOffline(port string) error {
	return r.setState(port, entity.ModemOffline)
}

func (r *Registry) setState(port string, state entity.ModemState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	modem, ok := r.modems[port]
	if !ok {
		return errors.Wrapf(ErrModemNotFound, "port %s", port)
	}

	modem.State = state
	modem.LastSeen = time.Now()

	return nil
}

// UpdateTelemetry refreshes the identity and signal fields of a modem.
func (r *Registry) UpdateTelemetry(port string, telemetry entity.Telemetry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	modem, ok := r.modems[port]
	if !ok {
		return errors.Wrapf(ErrModemNotFound, "port %s", port)
	}

	modem.SignalQuality = telemetry.SignalQuality
	if telemetry.Operator != "" {
		modem.Operator = telemetry.Operator
	}
	if telemetry.ICCID != "" {
		modem.ICCID = telemetry.ICCID
	}
	if telemetry.IMEI != "" {
		modem.IMEI = telemetry.IMEI
	}
	if telemetry.PhoneNumber != "" {
		modem.PhoneNumber = telemetry.PhoneNumber
	}
	modem.LastSeen = time.Now()

	return nil
}

// ListAvailable returns copies of every Ready, unbound modem with a known
// phone number, optionally filtered by country and operator.
func (r *Registry) ListAvailable(country, operator string) []entity.Modem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var available []entity.Modem
	for _, modem := range r.modems {
		if modem.State != entity.ModemReady || modem.Bound() || modem.PhoneNumber == "" {
			continue
		}
		if country != "" && modem.Country != country {
			continue
		}
		if operator != "" && modem.Operator != operator {
			continue
		}
		available = append(available, *modem)
	}

	return available
}

// Reserve atomically moves a Ready modem to Busy and binds the activation.
// Exactly one concurrent caller wins; everyone else gets ErrModemNotReady.
func (r *Registry) Reserve(port string, activationID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	modem, ok := r.modems[port]
	if !ok {
		return errors.Wrapf(ErrModemNotFound, "port %s", port)
	}
	if modem.State != entity.ModemReady || modem.Bound() {
		return errors.Wrapf(ErrModemNotReady, "port %s state %s", port, modem.State)
	}

	modem.State = entity.ModemBusy
	modem.ActivationID = activationID

	return nil
}

// Bind attaches an activation to an already reserved modem. Reservation
// happens before the activation row exists, so its generated ID is bound
// in a second step.
func (r *Registry) Bind(port string, activationID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	modem, ok := r.modems[port]
	if !ok {
		return errors.Wrapf(ErrModemNotFound, "port %s", port)
	}
	if modem.State != entity.ModemBusy {
		return errors.Wrapf(ErrModemNotReady, "bind on port %s in state %s", port, modem.State)
	}

	modem.ActivationID = activationID

	return nil
}

// Release unbinds a modem and returns it to the Ready pool. Releasing a
// modem that has since gone to Error or Offline clears the binding but
// keeps the fault state.
func (r *Registry) Release(port string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	modem, ok := r.modems[port]
	if !ok {
		return errors.Wrapf(ErrModemNotFound, "port %s", port)
	}

	modem.ActivationID = 0
	if modem.State == entity.ModemBusy {
		modem.State = entity.ModemReady
	}

	return nil
}

// BindingFor returns the activation currently bound to a port, 0 when unbound.
func (r *Registry) BindingFor(port string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modem, ok := r.modems[port]
	if !ok {
		return 0, errors.Wrapf(ErrModemNotFound, "port %s", port)
	}

	return modem.ActivationID, nil
}

// Get returns a copy of one modem entry.
func (r *Registry) Get(port string) (entity.Modem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modem, ok := r.modems[port]
	if !ok {
		return entity.Modem{}, errors.Wrapf(ErrModemNotFound, "port %s", port)
	}

	return *modem, nil
}

// Snapshot returns copies of every registered modem for reporting.
func (r *Registry) Snapshot() []entity.Modem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]entity.Modem, 0, len(r.modems))
	for _, modem := range r.modems {
		snapshot = append(snapshot, *modem)
	}

	return snapshot
}
