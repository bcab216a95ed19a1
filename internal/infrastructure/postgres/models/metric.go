package models

type PlayerMetricModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	SettlementID     string `gorm:"type:uuid;not null;index"`
	ExternalPlayerID string `gorm:"index"`
	PlayerID         string `gorm:"type:uuid;index"`
	AgentRef         string
	AgentID          string `gorm:"type:uuid;index"`
	Winnings         float64
	RakeTotal        float64
	GamingRevenue    float64
	RBRate           float64 `gorm:"column:rb_rate"`
	RBValue          float64 `gorm:"column:rb_value"`
	Resultado        float64
}

func (PlayerMetricModel) TableName() string { return "player_metrics" }

type AgentMetricModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	SettlementID  string `gorm:"type:uuid;not null;index"`
	AgentRef      string
	AgentID       string `gorm:"type:uuid;index"`
	SubclubID     string `gorm:"type:uuid;index"`
	PlayerCount   int
	RakeTotal     float64
	WinningsTotal float64
	RevenueTotal  float64
	RBRate        float64 `gorm:"column:rb_rate"`
	Commission    float64
	Resultado     float64
	IsDirect      bool
}

func (AgentMetricModel) TableName() string { return "agent_metrics" }
