package model

import (
	"time"

	"simbridge/internal/domain/entity"
)

// SMSRecordModel is the GORM-specific struct for the 'sms_records' table.
type SMSRecordModel struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	ActivationID int64  `gorm:"index"` // 0 for orphan messages.
	ModemPort    string `gorm:"type:varchar(100);not null;index"`
	PhoneFrom    string `gorm:"type:varchar(100);not null"`
	PhoneTo      string `gorm:"type:varchar(20);not null"`
	Text         string `gorm:"type:text;not null"`
	Delivered    bool   `gorm:"not null;default:false;index"`
	Attempts     int    `gorm:"not null;default:0"`
	LastError    string `gorm:"type:text"`
	ReceivedAt   time.Time
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SMSRecordModel) TableName() string {
	return "sms_records"
}

// NumberUsageModel is the GORM-specific struct for the 'number_usage' table.
// One row per phone number; the service column names the counter's owner.
type NumberUsageModel struct {
	PhoneNumber string `gorm:"type:varchar(20);primaryKey"`
	Service     string `gorm:"type:varchar(50);not null"`
	Count       int    `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NumberUsageModel) TableName() string {
	return "number_usage"
}

// ToSMSDomain converts a GORM SMSRecordModel to a domain SMSRecord entity.
func ToSMSDomain(data *SMSRecordModel) *entity.SMSRecord {
	if data == nil {
		return nil
	}

	return &entity.SMSRecord{
		ID:           data.ID,
		ActivationID: data.ActivationID,
		ModemPort:    data.ModemPort,
		PhoneFrom:    data.PhoneFrom,
		PhoneTo:      data.PhoneTo,
		Text:         data.Text,
		Delivered:    data.Delivered,
		Attempts:     data.Attempts,
		LastError:    data.LastError,
		ReceivedAt:   data.ReceivedAt,
		DeliveredAt:  data.DeliveredAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// FromSMSDomain converts a domain SMSRecord entity to a GORM SMSRecordModel.
func FromSMSDomain(data *entity.SMSRecord) *SMSRecordModel {
	if data == nil {
		return nil
	}

	return &SMSRecordModel{
		ID:           data.ID,
		ActivationID: data.ActivationID,
		ModemPort:    data.ModemPort,
		PhoneFrom:    data.PhoneFrom,
		PhoneTo:      data.PhoneTo,
		Text:         data.Text,
		Delivered:    data.Delivered,
		Attempts:     data.Attempts,
		LastError:    data.LastError,
		ReceivedAt:   data.ReceivedAt,
		DeliveredAt:  data.DeliveredAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// ToUsageDomain converts a GORM NumberUsageModel to a domain NumberUsage entity.
func ToUsageDomain(data *NumberUsageModel) *entity.NumberUsage {
	if data == nil {
		return nil
	}

	return &entity.NumberUsage{
		PhoneNumber: data.PhoneNumber,
		Service:     data.Service,
		Count:       data.Count,
		UpdatedAt:   data.UpdatedAt,
	}
}
