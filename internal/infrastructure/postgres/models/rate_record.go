package models

import (
	"time"

	"github.com/pokerliga/settlement-service/internal/domain"
)

// RateRecordModel is one validity interval of an entity's rate history. A
// NULL effective_to marks the open interval; a partial unique index enforces
// at most one open interval per (scope, entity).
type RateRecordModel struct {
	ID            string           `gorm:"primaryKey;type:uuid"`
	Scope         domain.RateScope `gorm:"index:idx_rate_entity"`
	EntityID      string           `gorm:"type:uuid;index:idx_rate_entity"`
	Rate          float64
	EffectiveFrom time.Time
	EffectiveTo   *time.Time `gorm:"index"`
}

func (RateRecordModel) TableName() string { return "rate_records" }
