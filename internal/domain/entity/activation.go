package entity

import "time"

// ActivationStatus is the Hub-owned status code of an activation.
// The bridge stores and reports these codes; it never originates a
// transition itself. Codes 6-10 are reserved by the Hub and opaque here.
type ActivationStatus int

const (
	StatusWaiting           ActivationStatus = 1
	StatusReady             ActivationStatus = 2
	StatusCompleted         ActivationStatus = 3
	StatusCancelledReusable ActivationStatus = 4
	StatusRefunded          ActivationStatus = 5

	// Codes 6-10 are reserved by the Hub; the bridge passes them through.
	statusReservedHigh ActivationStatus = 10
)

// Valid reports whether the code is inside the protocol range.
func (s ActivationStatus) Valid() bool {
	return s >= StatusWaiting && s <= statusReservedHigh
}

// Active reports whether the activation still owns its phone number.
func (s ActivationStatus) Active() bool {
	return s == StatusWaiting || s == StatusReady
}

// MaxPhoneReuses is how many times a cancelled-reusable number may be
// re-issued for the same service before it is excluded.
const MaxPhoneReuses = 4

// Activation is one rental of a phone number for one service.
// History is append-only; rows are updated, never deleted.
type Activation struct {
	ID          int64            `json:"id"`
	ModemPort   string           `json:"modem_port"`
	PhoneNumber string           `json:"phone_number"`
	Service     string           `json:"service"`
	Status      ActivationStatus `json:"status"`
	Country     string           `json:"country,omitempty"`
	Operator    string           `json:"operator,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NumberUsage tracks how often a phone number was cancelled-reusable
// for a given service. The counter survives restarts; the reuse rule
// is driven entirely by this persisted state.
type NumberUsage struct {
	PhoneNumber string    `json:"phone_number"`
	Service     string    `json:"service"`
	Count       int       `json:"count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Exhausted reports whether the number may no longer be issued for the service.
func (u *NumberUsage) Exhausted() bool {
	return u.Count >= MaxPhoneReuses
}
