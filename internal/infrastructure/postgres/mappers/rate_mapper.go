package mappers

import (
	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainRateRecord(model *models.RateRecordModel) *domain.RateRecord {
	return &domain.RateRecord{
		ID:            model.ID,
		Scope:         model.Scope,
		EntityID:      model.EntityID,
		Rate:          model.Rate,
		EffectiveFrom: model.EffectiveFrom,
		EffectiveTo:   model.EffectiveTo,
	}
}

func ToDomainCarryBalance(model *models.CarryBalanceModel) *domain.CarryBalance {
	return &domain.CarryBalance{
		ID:           model.ID,
		EntityRef:    model.EntityRef,
		WeekStart:    model.WeekStart,
		Amount:       model.Amount,
		SettlementID: model.SettlementID,
		CreatedAt:    model.CreatedAt,
	}
}

func ToDomainAdjustments(model *models.SubclubAdjustmentsModel) *domain.SubclubAdjustments {
	return &domain.SubclubAdjustments{
		ID:           model.ID,
		SettlementID: model.SettlementID,
		SubclubID:    model.SubclubID,
		Overlay:      model.Overlay,
		Purchases:    model.Purchases,
		Security:     model.Security,
		Other:        model.Other,
		Notes:        model.Notes,
	}
}
