package models

import "time"

type CarryBalanceModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	EntityRef    string    `gorm:"index:idx_carry_entity_week,unique"`
	WeekStart    time.Time `gorm:"index:idx_carry_entity_week,unique"`
	Amount       float64
	SettlementID string `gorm:"type:uuid"`
	CreatedAt    time.Time
}

func (CarryBalanceModel) TableName() string { return "carry_balances" }
