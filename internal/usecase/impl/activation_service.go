package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"simbridge/config"
	"simbridge/internal/domain/entity"
	domainerrors "simbridge/internal/domain/errors"
	"simbridge/internal/domain/repository"
	"simbridge/internal/errors"
	"simbridge/internal/registry"
	"simbridge/internal/usecase"
	"simbridge/internal/util"
)

type activationService struct {
	activationRepo repository.ActivationRepository
	usageRepo      repository.NumberUsageRepository
	registry       *registry.Registry
	locks          *util.KeyedMutex
	services       []string
	logger         *slog.Logger
}

// NewActivationService creates the Hub-facing activation coordinator.
func NewActivationService(
	activationRepo repository.ActivationRepository,
	usageRepo repository.NumberUsageRepository,
	reg *registry.Registry,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ActivationUsecase {
	return &activationService{
		activationRepo: activationRepo,
		usageRepo:      usageRepo,
		registry:       reg,
		locks:          util.NewKeyedMutex(),
		services:       cfg.Hub.Services,
		logger:         logger,
	}
}

// GetServices counts rentable numbers per (country, operator, service).
// Only Ready, unbound modems with a known number are counted, and a
// number whose reuse budget is spent for a service is excluded from that
// service's count.
func (s *activationService) GetServices(ctx context.Context) ([]usecase.CountryServices, error) {
	available := s.registry.ListAvailable("", "")

	byCountry := make(map[string]map[string]map[string]int)
	for _, modem := range available {
		usable, err := s.usableServices(ctx, modem.PhoneNumber)
		if err != nil {
			return nil, err
		}
		if len(usable) == 0 {
			continue
		}

		operatorMap, ok := byCountry[modem.Country]
		if !ok {
			operatorMap = make(map[string]map[string]int)
			byCountry[modem.Country] = operatorMap
		}
		serviceMap, ok := operatorMap[modem.Operator]
		if !ok {
			serviceMap = make(map[string]int)
			operatorMap[modem.Operator] = serviceMap
		}
		for _, serviceName := range usable {
			serviceMap[serviceName]++
		}
	}

	countryList := make([]usecase.CountryServices, 0, len(byCountry))
	for country, operatorMap := range byCountry {
		countryList = append(countryList, usecase.CountryServices{
			Country:     country,
			OperatorMap: operatorMap,
		})
	}
	sort.Slice(countryList, func(i, j int) bool {
		return countryList[i].Country < countryList[j].Country
	})

	return countryList, nil
}

// usableServices returns the configured services this phone may still serve.
func (s *activationService) usableServices(ctx context.Context, phone string) ([]string, error) {
	usage, err := s.usageRepo.Get(ctx, phone)
	if err != nil {
		return nil, s.mapPersistenceError(err)
	}

	usable := make([]string, 0, len(s.services))
	for _, serviceName := range s.services {
		if usage != nil && usage.Service == serviceName && usage.Exhausted() {
			continue
		}
		usable = append(usable, serviceName)
	}

	return usable, nil
}

// GetNumber leases one ready modem for a service. Candidates that were
// already cancelled for this service are preferred over fresh numbers so
// the reuse budget is spent before new SIMs are burned.
func (s *activationService) GetNumber(ctx context.Context, query usecase.NumberQuery) (*usecase.NumberAssignment, error) {
	serviceName := query.Service
	if !s.serviceKnown(serviceName) {
		return nil, domainerrors.ErrNoCapacity
	}

	candidates := s.registry.ListAvailable(query.Country, query.Operator)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Port < candidates[j].Port
	})

	reusable := make([]entity.Modem, 0, len(candidates))
	fresh := make([]entity.Modem, 0, len(candidates))

	for _, candidate := range candidates {
		if matchesPrefix(candidate.PhoneNumber, query.ExceptionPrefixes) {
			continue
		}

		eligible, wasCancelled, err := s.eligibleForService(ctx, candidate.PhoneNumber, serviceName)
		if err != nil {
			return nil, err
		}
		if !eligible {
			continue
		}

		if wasCancelled {
			reusable = append(reusable, candidate)
		} else {
			fresh = append(fresh, candidate)
		}
	}

	for _, candidate := range append(reusable, fresh...) {
		assignment, err := s.lease(ctx, candidate, serviceName)
		if err != nil {
			if errors.Is(err, registry.ErrModemNotReady) || errors.Is(err, registry.ErrModemNotFound) {
				// Lost the race to a concurrent request, try the next one.
				continue
			}

			return nil, err
		}

		return assignment, nil
	}

	return nil, domainerrors.ErrNoCapacity
}

// eligibleForService applies the persisted reuse rule for one (phone, service)
// pair. wasCancelled reports that the number has a spendable reuse budget,
// used to prefer it over fresh numbers.
func (s *activationService) eligibleForService(ctx context.Context, phone, serviceName string) (eligible, wasCancelled bool, err error) {
	usage, err := s.usageRepo.Get(ctx, phone)
	if err != nil {
		return false, false, s.mapPersistenceError(err)
	}

	if usage == nil || usage.Service != serviceName {
		// Never used, or last used by a different service. Binding a new
		// service resets the counter, so the phone is treated as fresh.
		return true, false, nil
	}

	if usage.Exhausted() {
		return false, false, nil
	}

	latest, err := s.activationRepo.FindLatestByPhoneAndService(ctx, phone, serviceName)
	if err != nil {
		if errors.Is(err, repository.ErrActivationNotFound) {
			return true, false, nil
		}

		return false, false, s.mapPersistenceError(err)
	}

	// Within the same service, only a cancelled-reusable outcome frees the
	// number for another round.
	if latest.Status == entity.StatusCancelledReusable {
		return true, true, nil
	}

	return false, false, nil
}

// lease reserves the modem first and persists second. A failed durable
// write rolls the reservation back, so the Hub never hears about an
// activation the bridge cannot remember.
func (s *activationService) lease(ctx context.Context, candidate entity.Modem, serviceName string) (*usecase.NumberAssignment, error) {
	s.locks.Lock(portKey(candidate.Port))
	defer s.locks.Unlock(portKey(candidate.Port))

	if err := s.registry.Reserve(candidate.Port, 0); err != nil {
		return nil, err
	}

	activation := &entity.Activation{
		ModemPort:   candidate.Port,
		PhoneNumber: candidate.PhoneNumber,
		Service:     serviceName,
		Status:      entity.StatusWaiting,
		Country:     candidate.Country,
		Operator:    candidate.Operator,
	}

	if err := s.activationRepo.Create(ctx, activation); err != nil {
		if releaseErr := s.registry.Release(candidate.Port); releaseErr != nil {
			s.logger.Error("failed to roll back reservation",
				slog.String("port", candidate.Port),
				slog.Any("error", releaseErr),
			)
		}

		return nil, s.mapPersistenceError(err)
	}

	if err := s.registry.Bind(candidate.Port, activation.ID); err != nil {
		return nil, err
	}

	// The usage row must be durable before the lease is acked: a lost
	// service rebind would leave the reuse counter on the old service.
	if err := s.usageRepo.BindService(ctx, candidate.PhoneNumber, serviceName); err != nil {
		s.abortLease(ctx, candidate.Port, activation.ID)

		return nil, s.mapPersistenceError(err)
	}

	s.logger.Info("number leased",
		slog.Int64("activationId", activation.ID),
		slog.String("port", candidate.Port),
		slog.String("service", serviceName),
	)

	return &usecase.NumberAssignment{
		ActivationID: activation.ID,
		Number:       activation.PhoneNumber,
	}, nil
}

// abortLease rolls back a lease whose follow-up write failed after the
// activation row was created. The row is marked cancelled-reusable so it
// never counts as active again; the Hub was never told about it.
func (s *activationService) abortLease(ctx context.Context, port string, activationID int64) {
	if err := s.registry.Release(port); err != nil {
		s.logger.Error("failed to roll back reservation",
			slog.String("port", port),
			slog.Any("error", err),
		)
	}

	if err := s.activationRepo.UpdateStatus(ctx, activationID, entity.StatusCancelledReusable); err != nil {
		s.logger.Error("failed to cancel aborted lease",
			slog.Int64("activationId", activationID),
			slog.Any("error", err),
		)
	}
}

// FinishActivation applies a Hub-instructed transition. Validation is
// structural only; whatever status the Hub sends inside the protocol
// range is applied as-is, and replays are harmless.
func (s *activationService) FinishActivation(ctx context.Context, activationID int64, status int) error {
	newStatus := entity.ActivationStatus(status)
	if !newStatus.Valid() {
		return domainerrors.ErrInvalidStatus.WithDetails(fmt.Sprintf("status %d", status))
	}

	s.locks.Lock(activationKey(activationID))
	defer s.locks.Unlock(activationKey(activationID))

	current, err := s.activationRepo.FindByID(ctx, activationID)
	if err != nil {
		if errors.Is(err, repository.ErrActivationNotFound) {
			return domainerrors.ErrActivationNotFound
		}

		return s.mapPersistenceError(err)
	}

	if err := s.activationRepo.UpdateStatus(ctx, activationID, newStatus); err != nil {
		return s.mapPersistenceError(err)
	}

	// The reuse counter moves only on the transition into cancelled-reusable,
	// so a replayed cancellation cannot double-count.
	if newStatus == entity.StatusCancelledReusable && current.Status != entity.StatusCancelledReusable {
		if err := s.usageRepo.Increment(ctx, current.PhoneNumber, current.Service); err != nil {
			return s.mapPersistenceError(err)
		}
	}

	if current.Status.Active() && !newStatus.Active() {
		if err := s.registry.Release(current.ModemPort); err != nil && !errors.Is(err, registry.ErrModemNotFound) {
			s.logger.Warn("failed to release modem",
				slog.String("port", current.ModemPort),
				slog.Any("error", err),
			)
		}
	}

	s.logger.Info("activation finished",
		slog.Int64("activationId", activationID),
		slog.Int("from", int(current.Status)),
		slog.Int("to", status),
	)

	return nil
}

func (s *activationService) serviceKnown(serviceName string) bool {
	for _, known := range s.services {
		if known == serviceName {
			return true
		}
	}

	return false
}

func (s *activationService) mapPersistenceError(err error) error {
	if errors.Is(err, repository.ErrBusy) {
		return domainerrors.ErrPersistenceFailed.WithDetails(err.Error())
	}

	return err
}

func matchesPrefix(phone string, prefixes []string) bool {
	normalized := strings.TrimPrefix(phone, "+")
	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}
		if strings.HasPrefix(normalized, strings.TrimPrefix(prefix, "+")) {
			return true
		}
	}

	return false
}

func portKey(port string) string {
	return "port:" + port
}

func activationKey(id int64) string {
	return fmt.Sprintf("activation:%d", id)
}
