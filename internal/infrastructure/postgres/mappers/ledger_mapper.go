package mappers

import (
	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainLedgerEntry(model *models.LedgerEntryModel) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:         model.ID,
		EntityRef:  model.EntityRef,
		Direction:  model.Direction,
		Amount:     model.Amount,
		Method:     model.Method,
		WeekStart:  model.WeekStart,
		Reconciled: model.Reconciled,
		Notes:      model.Notes,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMLedgerEntry(entry *domain.LedgerEntry) *models.LedgerEntryModel {
	return &models.LedgerEntryModel{
		ID:         entry.ID,
		EntityRef:  entry.EntityRef,
		Direction:  entry.Direction,
		Amount:     entry.Amount,
		Method:     entry.Method,
		WeekStart:  entry.WeekStart,
		Reconciled: entry.Reconciled,
		Notes:      entry.Notes,
		CreatedAt:  entry.CreatedAt,
	}
}
