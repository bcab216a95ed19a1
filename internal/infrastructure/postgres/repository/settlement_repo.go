package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/models"
)

type DefaultSettlementRepository struct {
	DB *gorm.DB
}

func NewDefaultSettlementRepository(db *gorm.DB) *DefaultSettlementRepository {
	return &DefaultSettlementRepository{DB: db}
}

func (r *DefaultSettlementRepository) GetByID(ctx context.Context, id string) (*domain.Settlement, error) {
	var model models.SettlementModel
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainSettlement(&model), nil
}

func (r *DefaultSettlementRepository) GetByClubWeek(ctx context.Context, clubID string, weekStart time.Time) (*domain.Settlement, error) {
	var model models.SettlementModel
	err := r.DB.WithContext(ctx).
		Where("club_id = ? AND week_start = ?", clubID, weekStart).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainSettlement(&model), nil
}

func (r *DefaultSettlementRepository) ListByWeek(ctx context.Context, weekStart time.Time) ([]*domain.Settlement, error) {
	var rows []models.SettlementModel
	if err := r.DB.WithContext(ctx).
		Where("week_start = ?", weekStart).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	settlements := make([]*domain.Settlement, len(rows))
	for i := range rows {
		settlements[i] = mappers.ToDomainSettlement(&rows[i])
	}
	return settlements, nil
}

func (r *DefaultSettlementRepository) Create(ctx context.Context, settlement *domain.Settlement) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMSettlement(settlement)).Error
}

func (r *DefaultSettlementRepository) UpdateStatus(ctx context.Context, id string, from, to domain.SettlementStatus) error {
	result := r.DB.WithContext(ctx).
		Model(&models.SettlementModel{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func (r *DefaultSettlementRepository) BumpVersion(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).
		Model(&models.SettlementModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		}).Error
}
