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

type DefaultLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultLedgerRepository(db *gorm.DB) *DefaultLedgerRepository {
	return &DefaultLedgerRepository{DB: db}
}

func (r *DefaultLedgerRepository) GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	var model models.LedgerEntryModel
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainLedgerEntry(&model), nil
}

func (r *DefaultLedgerRepository) ListByEntityWeek(ctx context.Context, entityRef string, weekStart time.Time) ([]*domain.LedgerEntry, error) {
	var rows []models.LedgerEntryModel
	if err := r.DB.WithContext(ctx).
		Where("entity_ref = ? AND week_start = ?", entityRef, weekStart).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(rows), nil
}

func (r *DefaultLedgerRepository) ListByWeek(ctx context.Context, weekStart time.Time) ([]*domain.LedgerEntry, error) {
	var rows []models.LedgerEntryModel
	if err := r.DB.WithContext(ctx).
		Where("week_start = ?", weekStart).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(rows), nil
}

func toDomainEntries(rows []models.LedgerEntryModel) []*domain.LedgerEntry {
	entries := make([]*domain.LedgerEntry, len(rows))
	for i := range rows {
		entries[i] = mappers.ToDomainLedgerEntry(&rows[i])
	}
	return entries
}

func (r *DefaultLedgerRepository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMLedgerEntry(entry)).Error
}

func (r *DefaultLedgerRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.LedgerEntryModel{}).Error
}

func (r *DefaultLedgerRepository) MarkReconciled(ctx context.Context, id string, reconciled bool) error {
	return r.DB.WithContext(ctx).
		Model(&models.LedgerEntryModel{}).
		Where("id = ?", id).
		Update("reconciled", reconciled).Error
}
