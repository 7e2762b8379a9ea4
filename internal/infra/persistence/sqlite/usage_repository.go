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
	"gorm.io/gorm/clause"
)

// usageRepository implements the repository.NumberUsageRepository interface.
type usageRepository struct {
	db    *gorm.DB
	retry retrier
}

// NewNumberUsageRepository is the constructor for usageRepository.
func NewNumberUsageRepository(db *gorm.DB, cfg *config.Config) repository.NumberUsageRepository {
	return &usageRepository{
		db:    db,
		retry: newRetrier(cfg.Sqlite),
	}
}

// Get returns the usage row for a phone, or nil when none exists.
func (repo *usageRepository) Get(ctx context.Context, phone string) (*entity.NumberUsage, error) {
	var usageM model.NumberUsageModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ?", phone).
		First(&usageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get number usage")
	}

	return model.ToUsageDomain(&usageM), nil
}

// BindService points the phone at a service. A service change resets the
// counter to zero; rebinding the same service keeps the current count.
func (repo *usageRepository) BindService(ctx context.Context, phone, service string) error {
	err := repo.retry.Do(ctx, func() error {
		return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var usageM model.NumberUsageModel

			err := tx.Where("phone_number = ?", phone).First(&usageM).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.NumberUsageModel{
					PhoneNumber: phone,
					Service:     service,
					Count:       0,
					UpdatedAt:   time.Now(),
				}).Error
			case err != nil:
				return err
			}

			if usageM.Service == service {
				return nil
			}

			// New service discards the prior count permanently.
			return tx.Model(&model.NumberUsageModel{}).
				Where("phone_number = ?", phone).
				Updates(map[string]any{
					"service":    service,
					"count":      0,
					"updated_at": time.Now(),
				}).Error
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to bind service to number")
	}

	return nil
}

// Increment bumps the counter for the phone's current service.
func (repo *usageRepository) Increment(ctx context.Context, phone, service string) error {
	err := repo.retry.Do(ctx, func() error {
		return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&model.NumberUsageModel{}).
				Where("phone_number = ? AND service = ?", phone, service).
				Updates(map[string]any{
					"count":      gorm.Expr("count + 1"),
					"updated_at": time.Now(),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				return nil
			}

			// First cancellation for this pair.
			return tx.Create(&model.NumberUsageModel{
				PhoneNumber: phone,
				Service:     service,
				Count:       1,
				UpdatedAt:   time.Now(),
			}).Error
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to increment number usage")
	}

	return nil
}

var _ repository.NumberUsageRepository = (*usageRepository)(nil)
