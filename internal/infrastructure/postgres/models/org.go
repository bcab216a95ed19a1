package models

type ClubModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"uniqueIndex"`
}

func (ClubModel) TableName() string { return "clubs" }

type SubclubModel struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	ClubID string `gorm:"type:uuid;index"`
	Name   string
}

func (SubclubModel) TableName() string { return "subclubs" }

type AgentModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	SubclubID string `gorm:"type:uuid;index"`
	Name      string `gorm:"index"`
}

func (AgentModel) TableName() string { return "agents" }

type PlayerModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	AgentID    string `gorm:"type:uuid;index"`
	ExternalID string `gorm:"uniqueIndex"`
	Name       string
}

func (PlayerModel) TableName() string { return "players" }
