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

// smsRepository implements the repository.SMSRepository interface.
type smsRepository struct {
	db    *gorm.DB
	retry retrier
}

// NewSMSRepository is the constructor for smsRepository.
func NewSMSRepository(db *gorm.DB, cfg *config.Config) repository.SMSRepository {
	return &smsRepository{
		db:    db,
		retry: newRetrier(cfg.Sqlite),
	}
}

// Create persists a new SMS record before any delivery attempt.
func (repo *smsRepository) Create(ctx context.Context, record *entity.SMSRecord) error {
	recordM := model.FromSMSDomain(record)

	err := repo.retry.Do(ctx, func() error {
		return repo.db.WithContext(ctx).Create(recordM).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to create sms record")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// RecordAttempt bumps the attempt counter and stores the last error.
func (repo *smsRepository) RecordAttempt(ctx context.Context, id string, attempt int, lastError string) error {
	var rowsAffected int64

	err := repo.retry.Do(ctx, func() error {
		result := repo.db.WithContext(ctx).
			Model(&model.SMSRecordModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"attempts":   attempt,
				"last_error": lastError,
				"updated_at": time.Now(),
			})
		rowsAffected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to record delivery attempt")
	}

	if rowsAffected == 0 {
		return repository.ErrSMSNotFound
	}

	return nil
}

// MarkDelivered flags the record as delivered to the Hub.
func (repo *smsRepository) MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error {
	var rowsAffected int64

	err := repo.retry.Do(ctx, func() error {
		result := repo.db.WithContext(ctx).
			Model(&model.SMSRecordModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"delivered":    true,
				"delivered_at": deliveredAt,
				"last_error":   "",
				"updated_at":   time.Now(),
			})
		rowsAffected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to mark sms delivered")
	}

	if rowsAffected == 0 {
		return repository.ErrSMSNotFound
	}

	return nil
}

// FindByID retrieves one SMS record.
func (repo *smsRepository) FindByID(ctx context.Context, id string) (*entity.SMSRecord, error) {
	var recordM model.SMSRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSMSNotFound
		}

		return nil, errors.Wrap(err, "failed to find sms record by ID")
	}

	return model.ToSMSDomain(&recordM), nil
}

// List retrieves records newest first, bounded by limit.
func (repo *smsRepository) List(ctx context.Context, limit int) ([]*entity.SMSRecord, error) {
	var recordModels []*model.SMSRecordModel

	if err := repo.db.WithContext(ctx).
		Order("received_at DESC").
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sms records")
	}

	records := make([]*entity.SMSRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, model.ToSMSDomain(recordM))
	}

	return records, nil
}

// CountUndelivered returns how many records have exhausted delivery.
func (repo *smsRepository) CountUndelivered(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SMSRecordModel{}).
		Where("delivered = ? AND attempts > 0", false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count undelivered sms records")
	}

	return count, nil
}
