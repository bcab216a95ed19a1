package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/models"
)

type DefaultRateRepository struct {
	DB *gorm.DB
}

func NewDefaultRateRepository(db *gorm.DB) *DefaultRateRepository {
	return &DefaultRateRepository{DB: db}
}

func (r *DefaultRateRepository) Current(ctx context.Context, scope domain.RateScope, entityID string) (*domain.RateRecord, error) {
	var model models.RateRecordModel
	err := r.DB.WithContext(ctx).
		Where("scope = ? AND entity_id = ? AND effective_to IS NULL", scope, entityID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainRateRecord(&model), nil
}

func (r *DefaultRateRepository) CurrentBulk(ctx context.Context, scope domain.RateScope) (map[string]float64, error) {
	var rows []models.RateRecordModel
	if err := r.DB.WithContext(ctx).
		Where("scope = ? AND effective_to IS NULL", scope).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	rates := make(map[string]float64, len(rows))
	for _, row := range rows {
		rates[row.EntityID] = row.Rate
	}
	return rates, nil
}

func (r *DefaultRateRepository) History(ctx context.Context, scope domain.RateScope, entityID string) ([]*domain.RateRecord, error) {
	var rows []models.RateRecordModel
	if err := r.DB.WithContext(ctx).
		Where("scope = ? AND entity_id = ?", scope, entityID).
		Order("effective_from DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.RateRecord, len(rows))
	for i := range rows {
		records[i] = mappers.ToDomainRateRecord(&rows[i])
	}
	return records, nil
}

// SetCurrent closes the entity's open interval and opens a new one in a
// single transaction, keeping the one-open-interval invariant at the store
// boundary.
func (r *DefaultRateRepository) SetCurrent(ctx context.Context, scope domain.RateScope, entityID string, rate float64) error {
	now := time.Now()
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.RateRecordModel{}).
			Where("scope = ? AND entity_id = ? AND effective_to IS NULL", scope, entityID).
			Update("effective_to", now).Error; err != nil {
			return err
		}

		return tx.Create(&models.RateRecordModel{
			ID:            uuid.NewString(),
			Scope:         scope,
			EntityID:      entityID,
			Rate:          rate,
			EffectiveFrom: now,
		}).Error
	})
}
