package models

type SubclubAdjustmentsModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	SettlementID string `gorm:"type:uuid;index:idx_adj_settlement_subclub,unique"`
	SubclubID    string `gorm:"type:uuid;index:idx_adj_settlement_subclub,unique"`
	Overlay      float64
	Purchases    float64
	Security     float64
	Other        float64
	Notes        string
}

func (SubclubAdjustmentsModel) TableName() string { return "subclub_adjustments" }

type FeeRateConfigModel struct {
	ClubID         string `gorm:"primaryKey;type:uuid"`
	AppRate        float64
	LeagueRate     float64
	RevenueRate    float64
	RevenueAppRate float64
}

func (FeeRateConfigModel) TableName() string { return "fee_rate_configs" }
