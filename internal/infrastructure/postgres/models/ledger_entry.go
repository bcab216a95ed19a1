package models

import (
	"time"

	"github.com/pokerliga/settlement-service/internal/domain"
)

type LedgerEntryModel struct {
	ID         string                 `gorm:"primaryKey"`
	EntityRef  string                 `gorm:"index:idx_entity_week"`
	Direction  domain.LedgerDirection `gorm:"not null"`
	Amount     float64                `gorm:"not null"`
	Method     string
	WeekStart  time.Time `gorm:"index:idx_entity_week;index:idx_ledger_week"`
	Reconciled bool
	Notes      string
	CreatedAt  time.Time
}

func (LedgerEntryModel) TableName() string { return "ledger_entries" }
