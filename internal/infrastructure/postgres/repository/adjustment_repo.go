package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/models"
)

type DefaultAdjustmentRepository struct {
	DB *gorm.DB
}

func NewDefaultAdjustmentRepository(db *gorm.DB) *DefaultAdjustmentRepository {
	return &DefaultAdjustmentRepository{DB: db}
}

func (r *DefaultAdjustmentRepository) ListBySettlement(ctx context.Context, settlementID string) ([]*domain.SubclubAdjustments, error) {
	var rows []models.SubclubAdjustmentsModel
	if err := r.DB.WithContext(ctx).
		Where("settlement_id = ?", settlementID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	adjustments := make([]*domain.SubclubAdjustments, len(rows))
	for i := range rows {
		adjustments[i] = mappers.ToDomainAdjustments(&rows[i])
	}
	return adjustments, nil
}

func (r *DefaultAdjustmentRepository) GetBySubclub(ctx context.Context, settlementID, subclubID string) (*domain.SubclubAdjustments, error) {
	var model models.SubclubAdjustmentsModel
	err := r.DB.WithContext(ctx).
		Where("settlement_id = ? AND subclub_id = ?", settlementID, subclubID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainAdjustments(&model), nil
}

func (r *DefaultAdjustmentRepository) Upsert(ctx context.Context, adjustments *domain.SubclubAdjustments) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "settlement_id"}, {Name: "subclub_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"overlay", "purchases", "security", "other", "notes",
			}),
		}).
		Create(&models.SubclubAdjustmentsModel{
			ID:           adjustments.ID,
			SettlementID: adjustments.SettlementID,
			SubclubID:    adjustments.SubclubID,
			Overlay:      adjustments.Overlay,
			Purchases:    adjustments.Purchases,
			Security:     adjustments.Security,
			Other:        adjustments.Other,
			Notes:        adjustments.Notes,
		}).Error
}

type DefaultFeeConfigRepository struct {
	DB *gorm.DB
}

func NewDefaultFeeConfigRepository(db *gorm.DB) *DefaultFeeConfigRepository {
	return &DefaultFeeConfigRepository{DB: db}
}

func (r *DefaultFeeConfigRepository) GetByClub(ctx context.Context, clubID string) (*domain.FeeRateConfig, error) {
	var model models.FeeRateConfigModel
	err := r.DB.WithContext(ctx).Where("club_id = ?", clubID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &domain.FeeRateConfig{
		ClubID:         model.ClubID,
		AppRate:        model.AppRate,
		LeagueRate:     model.LeagueRate,
		RevenueRate:    model.RevenueRate,
		RevenueAppRate: model.RevenueAppRate,
	}, nil
}
