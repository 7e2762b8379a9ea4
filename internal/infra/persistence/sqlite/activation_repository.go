package sqlite

import (
	"context"
	"time"

	"simbridge/config"
	"simbridge/internal/domain/entity"
	"simbridge/internal/domain/repository"
	"simbridge/internal/errors"
	"simbridge/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// activationRepository implements the repository.ActivationRepository interface.
type activationRepository struct {
	db    *gorm.DB
	retry retrier
}

// NewActivationRepository is the constructor for activationRepository.
func NewActivationRepository(db *gorm.DB, cfg *config.Config) repository.ActivationRepository {
	return &activationRepository{
		db:    db,
		retry: newRetrier(cfg.Sqlite),
	}
}

// Create persists a new activation and fills in its generated ID.
func (repo *activationRepository) Create(ctx context.Context, activation *entity.Activation) error {
	activationM := model.FromActivationDomain(activation)

	err := repo.retry.Do(ctx, func() error {
		return repo.db.WithContext(ctx).Create(activationM).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to create activation")
	}

	activation.ID = activationM.ID
	activation.CreatedAt = activationM.CreatedAt
	activation.UpdatedAt = activationM.UpdatedAt

	return nil
}

// UpdateStatus writes the Hub-instructed status for an activation.
func (repo *activationRepository) UpdateStatus(ctx context.Context, id int64, status entity.ActivationStatus) error {
	var rowsAffected int64

	err := repo.retry.Do(ctx, func() error {
		result := repo.db.WithContext(ctx).
			Model(&model.ActivationModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"status":     int(status),
				"updated_at": time.Now(),
			})
		rowsAffected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to update activation status")
	}

	if rowsAffected == 0 {
		return repository.ErrActivationNotFound
	}

	return nil
}

// FindByID retrieves an activation by its ID.
func (repo *activationRepository) FindByID(ctx context.Context, id int64) (*entity.Activation, error) {
	var activationM model.ActivationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&activationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivationNotFound
		}

		return nil, errors.Wrap(err, "failed to find activation by ID")
	}

	return model.ToActivationDomain(&activationM), nil
}

// FindLatestByPhoneAndService retrieves the most recent activation for a
// (phone, service) pair.
func (repo *activationRepository) FindLatestByPhoneAndService(ctx context.Context, phone, service string) (*entity.Activation, error) {
	var activationM model.ActivationModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ? AND service = ?", phone, service).
		Order("id DESC").
		First(&activationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest activation for phone and service")
	}

	return model.ToActivationDomain(&activationM), nil
}

// ListActive retrieves every activation still in the active set.
func (repo *activationRepository) ListActive(ctx context.Context) ([]*entity.Activation, error) {
	var activationModels []*model.ActivationModel

	if err := repo.db.WithContext(ctx).
		Where("status IN ?", []int{int(entity.StatusWaiting), int(entity.StatusReady)}).
		Order("id ASC").
		Find(&activationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active activations")
	}

	activations := make([]*entity.Activation, 0, len(activationModels))
	for _, activationM := range activationModels {
		activations = append(activations, model.ToActivationDomain(activationM))
	}

	return activations, nil
}

// List retrieves activations newest first, bounded by limit.
func (repo *activationRepository) List(ctx context.Context, limit int) ([]*entity.Activation, error) {
	var activationModels []*model.ActivationModel

	if err := repo.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&activationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activations")
	}

	activations := make([]*entity.Activation, 0, len(activationModels))
	for _, activationM := range activationModels {
		activations = append(activations, model.ToActivationDomain(activationM))
	}

	return activations, nil
}

// CountByStatus aggregates activation counts per status for reporting.
func (repo *activationRepository) CountByStatus(ctx context.Context) (map[entity.ActivationStatus]int64, error) {
	type statusCount struct {
		Status int
		Count  int64
	}

	var rows []statusCount
	if err := repo.db.WithContext(ctx).
		Model(&model.ActivationModel{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count activations by status")
	}

	counts := make(map[entity.ActivationStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.ActivationStatus(row.Status)] = row.Count
	}

	return counts, nil
}
