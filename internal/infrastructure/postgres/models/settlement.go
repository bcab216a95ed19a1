package models

import (
	"time"

	"github.com/pokerliga/settlement-service/internal/domain"
)

type SettlementModel struct {
	ID        string                  `gorm:"primaryKey;type:uuid"`
	ClubID    string                  `gorm:"type:uuid;index:idx_club_week,unique"`
	WeekStart time.Time               `gorm:"index:idx_club_week,unique;index:idx_week"`
	Status    domain.SettlementStatus `gorm:"index"`
	Version   int                     `gorm:"default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SettlementModel) TableName() string { return "settlements" }
