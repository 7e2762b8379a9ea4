// Package entity contains the core business objects of the bridge.
package entity

import "time"

// ModemState is the lifecycle state of one physical modem.
type ModemState string

const (
	ModemInitializing ModemState = "initializing"
	ModemReady        ModemState = "ready"
	ModemBusy         ModemState = "busy"
	ModemError        ModemState = "error"
	ModemOffline      ModemState = "offline"
)

// Modem represents one physical device bound to one SIM card.
// The port identifier is its stable key across the whole bridge.
type Modem struct {
	Port          string     `json:"port"`
	State         ModemState `json:"state"`
	PhoneNumber   string     `json:"phone_number,omitempty"` // Empty until read from the SIM.
	IMEI          string     `json:"imei,omitempty"`
	ICCID         string     `json:"iccid,omitempty"`
	SignalQuality int        `json:"signal_quality"` // 0-100, scaled from CSQ.
	Operator      string     `json:"operator,omitempty"`
	Country       string     `json:"country,omitempty"`
	ActivationID  int64      `json:"activation_id,omitempty"` // 0 when unbound.
	LastSeen      time.Time  `json:"last_seen"`
}

// Bound reports whether the modem currently carries an active activation.
func (m *Modem) Bound() bool {
	return m.ActivationID != 0
}

// Telemetry is the point-in-time status read from a modem.
type Telemetry struct {
	SignalQuality int    `json:"signal_quality"`
	Operator      string `json:"operator"`
	ICCID         string `json:"iccid"`
	IMEI          string `json:"imei"`
	PhoneNumber   string `json:"phone_number"`
}

// InboundSMS is one message observed by a modem session, before any
// activation resolution has happened.
type InboundSMS struct {
	Port       string    `json:"port"`
	Sender     string    `json:"sender"`
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`
}
