package setup

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/pokerliga/settlement-service/internal/config"
	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/kafka"
	"github.com/pokerliga/settlement-service/internal/infrastructure/logger"
	"github.com/pokerliga/settlement-service/internal/infrastructure/metrics"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/repository"
)

type Dependencies struct {
	Config       *config.SettlementConfig
	Logger       *slog.Logger
	DB           *gorm.DB
	Publisher    *kafka.SettlementPublisher
	Metrics      *metrics.SettlementMetrics
	RunLogger    *logger.RateSyncRunLogger
	Repositories *Repositories
}

type Repositories struct {
	SettlementRepo domain.SettlementRepository
	MetricRepo     domain.MetricRepository
	AdjustmentRepo domain.AdjustmentRepository
	FeeConfigRepo  domain.FeeConfigRepository
	LedgerRepo     domain.LedgerRepository
	RateRepo       domain.RateRepository
	CarryRepo      domain.CarryRepository
	OrgRepo        domain.OrgRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()
	log := logger.MustInitLogger(cfg)

	db := postgres.MustInitDB(cfg)

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	publisher := kafka.NewSettlementPublisher(brokers)

	repos := &Repositories{
		SettlementRepo: repository.NewDefaultSettlementRepository(db),
		MetricRepo:     repository.NewDefaultMetricRepository(db),
		AdjustmentRepo: repository.NewDefaultAdjustmentRepository(db),
		FeeConfigRepo:  repository.NewDefaultFeeConfigRepository(db),
		LedgerRepo:     repository.NewDefaultLedgerRepository(db),
		RateRepo:       repository.NewDefaultRateRepository(db),
		CarryRepo:      repository.NewDefaultCarryRepository(db),
		OrgRepo:        repository.NewDefaultOrgRepository(db),
	}

	return &Dependencies{
		Config:       cfg,
		Logger:       log,
		DB:           db,
		Publisher:    publisher,
		Metrics:      metrics.NewSettlementMetrics(),
		RunLogger:    logger.NewRateSyncRunLogger(db),
		Repositories: repos,
	}, nil
}
