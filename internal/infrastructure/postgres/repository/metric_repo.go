package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/models"
)

type DefaultMetricRepository struct {
	DB *gorm.DB
}

func NewDefaultMetricRepository(db *gorm.DB) *DefaultMetricRepository {
	return &DefaultMetricRepository{DB: db}
}

func (r *DefaultMetricRepository) ListPlayerMetrics(ctx context.Context, settlementID string) ([]*domain.PlayerMetric, error) {
	var rows []models.PlayerMetricModel
	if err := r.DB.WithContext(ctx).
		Where("settlement_id = ?", settlementID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	metrics := make([]*domain.PlayerMetric, len(rows))
	for i := range rows {
		metrics[i] = mappers.ToDomainPlayerMetric(&rows[i])
	}
	return metrics, nil
}

func (r *DefaultMetricRepository) ListAgentMetrics(ctx context.Context, settlementID string) ([]*domain.AgentMetric, error) {
	var rows []models.AgentMetricModel
	if err := r.DB.WithContext(ctx).
		Where("settlement_id = ?", settlementID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	metrics := make([]*domain.AgentMetric, len(rows))
	for i := range rows {
		metrics[i] = mappers.ToDomainAgentMetric(&rows[i])
	}
	return metrics, nil
}

func (r *DefaultMetricRepository) SavePlayerResult(ctx context.Context, metricID string, rbValue, resultado float64) error {
	return r.DB.WithContext(ctx).
		Model(&models.PlayerMetricModel{}).
		Where("id = ?", metricID).
		Updates(map[string]interface{}{
			"rb_value":  rbValue,
			"resultado": resultado,
		}).Error
}

func (r *DefaultMetricRepository) SaveAgentResult(ctx context.Context, metricID string, commission, resultado float64) error {
	return r.DB.WithContext(ctx).
		Model(&models.AgentMetricModel{}).
		Where("id = ?", metricID).
		Updates(map[string]interface{}{
			"commission": commission,
			"resultado":  resultado,
		}).Error
}

// UpdatePlayerRate is a conditional write: it lands only while the stored
// rate still matches what the caller read. Zero rows affected means a
// concurrent writer got there first.
func (r *DefaultMetricRepository) UpdatePlayerRate(ctx context.Context, metricID string, expectedRate, rate, rbValue, resultado float64) (bool, error) {
	result := r.DB.WithContext(ctx).
		Model(&models.PlayerMetricModel{}).
		Where("id = ? AND rb_rate = ?", metricID, expectedRate).
		Updates(map[string]interface{}{
			"rb_rate":   rate,
			"rb_value":  rbValue,
			"resultado": resultado,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultMetricRepository) UpdateAgentRate(ctx context.Context, metricID string, expectedRate, rate, commission, resultado float64) (bool, error) {
	result := r.DB.WithContext(ctx).
		Model(&models.AgentMetricModel{}).
		Where("id = ? AND rb_rate = ?", metricID, expectedRate).
		Updates(map[string]interface{}{
			"rb_rate":    rate,
			"commission": commission,
			"resultado":  resultado,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultMetricRepository) LinkPlayerEntity(ctx context.Context, metricID, playerID, agentID string) error {
	return r.DB.WithContext(ctx).
		Model(&models.PlayerMetricModel{}).
		Where("id = ?", metricID).
		Updates(map[string]interface{}{
			"player_id": playerID,
			"agent_id":  agentID,
		}).Error
}

func (r *DefaultMetricRepository) LinkAgentEntity(ctx context.Context, metricID, agentID string) error {
	return r.DB.WithContext(ctx).
		Model(&models.AgentMetricModel{}).
		Where("id = ?", metricID).
		Update("agent_id", agentID).Error
}
