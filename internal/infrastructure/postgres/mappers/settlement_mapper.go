package mappers

import (
	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainSettlement(model *models.SettlementModel) *domain.Settlement {
	return &domain.Settlement{
		ID:        model.ID,
		ClubID:    model.ClubID,
		WeekStart: model.WeekStart,
		Status:    model.Status,
		Version:   model.Version,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMSettlement(settlement *domain.Settlement) *models.SettlementModel {
	return &models.SettlementModel{
		ID:        settlement.ID,
		ClubID:    settlement.ClubID,
		WeekStart: settlement.WeekStart,
		Status:    settlement.Status,
		Version:   settlement.Version,
		CreatedAt: settlement.CreatedAt,
		UpdatedAt: settlement.UpdatedAt,
	}
}
