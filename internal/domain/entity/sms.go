package entity

import "time"

// SMSRecord is the durable trace of one received message and its
// delivery attempts toward the Hub. Records are never deleted.
type SMSRecord struct {
	// ID is a UUID, also the smsId on the wire. ActivationID is 0 for
	// orphan messages.
	ID           string     `json:"id"`
	ActivationID int64      `json:"activation_id,omitempty"`
	ModemPort    string     `json:"modem_port"`
	PhoneFrom    string     `json:"phone_from"`
	PhoneTo      string     `json:"phone_to"`
	Text         string     `json:"text"`
	Delivered    bool       `json:"delivered"`
	Attempts     int        `json:"attempts"`
	LastError    string     `json:"last_error,omitempty"`
	ReceivedAt   time.Time  `json:"received_at"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Orphan reports whether the message arrived outside any tracked activation.
func (r *SMSRecord) Orphan() bool {
	return r.ActivationID == 0
}
