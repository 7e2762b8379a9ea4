package usecase

import (
	"context"

	"simbridge/internal/domain/entity"
)

// BridgeStats is the dashboard summary of the whole bridge.
type BridgeStats struct {
	ModemsByState       map[string]int `json:"modemsByState"`
	ActivationsByStatus map[int]int64  `json:"activationsByStatus"`
	UndeliveredSMS      int64          `json:"undeliveredSms"`
}

// ReportingUsecase serves the read-only dashboard. It never mutates state.
type ReportingUsecase interface {
	ListModems(ctx context.Context) ([]entity.Modem, error)
	ListActivations(ctx context.Context, limit int) ([]*entity.Activation, error)
	GetActivation(ctx context.Context, id int64) (*entity.Activation, error)
	ListSMS(ctx context.Context, limit int) ([]*entity.SMSRecord, error)
	GetSMS(ctx context.Context, id string) (*entity.SMSRecord, error)
	Stats(ctx context.Context) (*BridgeStats, error)
}
