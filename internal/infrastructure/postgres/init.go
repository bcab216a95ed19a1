package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pokerliga/settlement-service/internal/config"
	"github.com/pokerliga/settlement-service/internal/infrastructure/logger"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.SettlementConfig) *gorm.DB {
	dsn := cfg.SettlementDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.ClubModel{},
		&models.SubclubModel{},
		&models.AgentModel{},
		&models.PlayerModel{},
		&models.SettlementModel{},
		&models.PlayerMetricModel{},
		&models.AgentMetricModel{},
		&models.SubclubAdjustmentsModel{},
		&models.FeeRateConfigModel{},
		&models.LedgerEntryModel{},
		&models.RateRecordModel{},
		&models.CarryBalanceModel{},
		&logger.RateSyncRunLog{},
	)

	return db
}
