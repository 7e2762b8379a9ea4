// Package model holds the GORM-specific structs for the embedded store.
package model

import (
	"time"

	"simbridge/internal/domain/entity"
)

// ActivationModel is the GORM-specific struct for the 'activations' table.
type ActivationModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	ModemPort   string `gorm:"type:varchar(100);not null;index"`
	PhoneNumber string `gorm:"type:varchar(20);not null;index:idx_activations_phone_service"`
	Service     string `gorm:"type:varchar(50);not null;index:idx_activations_phone_service"`
	Status      int    `gorm:"not null;default:1"`
	Country     string `gorm:"type:varchar(50)"`
	Operator    string `gorm:"type:varchar(50)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivationModel) TableName() string {
	return "activations"
}

// --- Mapper Functions ---

// ToActivationDomain converts a GORM ActivationModel to a domain Activation entity.
func ToActivationDomain(data *ActivationModel) *entity.Activation {
	if data == nil {
		return nil
	}

	return &entity.Activation{
		ID:          data.ID,
		ModemPort:   data.ModemPort,
		PhoneNumber: data.PhoneNumber,
		Service:     data.Service,
		Status:      entity.ActivationStatus(data.Status),
		Country:     data.Country,
		Operator:    data.Operator,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// FromActivationDomain converts a domain Activation entity to a GORM ActivationModel.
func FromActivationDomain(data *entity.Activation) *ActivationModel {
	if data == nil {
		return nil
	}

	return &ActivationModel{
		ID:          data.ID,
		ModemPort:   data.ModemPort,
		PhoneNumber: data.PhoneNumber,
		Service:     data.Service,
		Status:      int(data.Status),
		Country:     data.Country,
		Operator:    data.Operator,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
