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

type DefaultCarryRepository struct {
	DB *gorm.DB
}

func NewDefaultCarryRepository(db *gorm.DB) *DefaultCarryRepository {
	return &DefaultCarryRepository{DB: db}
}

func (r *DefaultCarryRepository) Get(ctx context.Context, entityRef string, weekStart time.Time) (*domain.CarryBalance, error) {
	var model models.CarryBalanceModel
	err := r.DB.WithContext(ctx).
		Where("entity_ref = ? AND week_start = ?", entityRef, weekStart).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainCarryBalance(&model), nil
}

func (r *DefaultCarryRepository) ListByWeek(ctx context.Context, weekStart time.Time) ([]*domain.CarryBalance, error) {
	var rows []models.CarryBalanceModel
	if err := r.DB.WithContext(ctx).
		Where("week_start = ?", weekStart).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	balances := make([]*domain.CarryBalance, len(rows))
	for i := range rows {
		balances[i] = mappers.ToDomainCarryBalance(&rows[i])
	}
	return balances, nil
}

func (r *DefaultCarryRepository) Create(ctx context.Context, balance *domain.CarryBalance) error {
	return r.DB.WithContext(ctx).Create(&models.CarryBalanceModel{
		ID:           balance.ID,
		EntityRef:    balance.EntityRef,
		WeekStart:    balance.WeekStart,
		Amount:       balance.Amount,
		SettlementID: balance.SettlementID,
		CreatedAt:    balance.CreatedAt,
	}).Error
}
