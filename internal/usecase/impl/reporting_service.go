package impl

import (
	"context"

	"simbridge/internal/domain/entity"
	domainerrors "simbridge/internal/domain/errors"
	"simbridge/internal/domain/repository"
	"simbridge/internal/errors"
	"simbridge/internal/registry"
	"simbridge/internal/usecase"
)

const defaultListLimit = 100

type reportingService struct {
	activationRepo repository.ActivationRepository
	smsRepo        repository.SMSRepository
	registry       *registry.Registry
}

// NewReportingService creates the read-only dashboard backend.
func NewReportingService(
	activationRepo repository.ActivationRepository,
	smsRepo repository.SMSRepository,
	reg *registry.Registry,
) usecase.ReportingUsecase {
	return &reportingService{
		activationRepo: activationRepo,
		smsRepo:        smsRepo,
		registry:       reg,
	}
}

func (s *reportingService) ListModems(context.Context) ([]entity.Modem, error) {
	return s.registry.Snapshot(), nil
}

func (s *reportingService) ListActivations(ctx context.Context, limit int) ([]*entity.Activation, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	return s.activationRepo.List(ctx, limit)
}

func (s *reportingService) GetActivation(ctx context.Context, id int64) (*entity.Activation, error) {
	activation, err := s.activationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivationNotFound) {
			return nil, domainerrors.ErrActivationNotFound
		}

		return nil, err
	}

	return activation, nil
}

func (s *reportingService) ListSMS(ctx context.Context, limit int) ([]*entity.SMSRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	return s.smsRepo.List(ctx, limit)
}

func (s *reportingService) GetSMS(ctx context.Context, id string) (*entity.SMSRecord, error) {
	record, err := s.smsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSMSNotFound) {
			return nil, domainerrors.ErrSMSNotFound
		}

		return nil, err
	}

	return record, nil
}

func (s *reportingService) Stats(ctx context.Context) (*usecase.BridgeStats, error) {
	byState := make(map[string]int)
	for _, modem := range s.registry.Snapshot() {
		byState[string(modem.State)]++
	}

	byStatus, err := s.activationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	statusCounts := make(map[int]int64, len(byStatus))
	for status, count := range byStatus {
		statusCounts[int(status)] = count
	}

	undelivered, err := s.smsRepo.CountUndelivered(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.BridgeStats{
		ModemsByState:       byState,
		ActivationsByStatus: statusCounts,
		UndeliveredSMS:      undelivered,
	}, nil
}
