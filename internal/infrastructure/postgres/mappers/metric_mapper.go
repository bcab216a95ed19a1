package mappers

import (
	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainPlayerMetric(model *models.PlayerMetricModel) *domain.PlayerMetric {
	return &domain.PlayerMetric{
		ID:               model.ID,
		SettlementID:     model.SettlementID,
		ExternalPlayerID: model.ExternalPlayerID,
		PlayerID:         model.PlayerID,
		AgentRef:         model.AgentRef,
		AgentID:          model.AgentID,
		Winnings:         model.Winnings,
		RakeTotal:        model.RakeTotal,
		GamingRevenue:    model.GamingRevenue,
		RBRate:           model.RBRate,
		RBValue:          model.RBValue,
		Resultado:        model.Resultado,
	}
}

func ToDomainAgentMetric(model *models.AgentMetricModel) *domain.AgentMetric {
	return &domain.AgentMetric{
		ID:            model.ID,
		SettlementID:  model.SettlementID,
		AgentRef:      model.AgentRef,
		AgentID:       model.AgentID,
		SubclubID:     model.SubclubID,
		PlayerCount:   model.PlayerCount,
		RakeTotal:     model.RakeTotal,
		WinningsTotal: model.WinningsTotal,
		RevenueTotal:  model.RevenueTotal,
		RBRate:        model.RBRate,
		Commission:    model.Commission,
		Resultado:     model.Resultado,
		IsDirect:      model.IsDirect,
	}
}
