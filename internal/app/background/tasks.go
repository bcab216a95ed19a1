package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/kafka"
	"github.com/pokerliga/settlement-service/internal/usecase"
)

type BackgroundTasks struct {
	SettlementRepo  domain.SettlementRepository
	RateSyncUsecase usecase.RateSyncUsecase
	Publisher       *kafka.SettlementPublisher
	SyncInterval    time.Duration
	Logger          *slog.Logger
}

func NewBackgroundTasks(
	settlementRepo domain.SettlementRepository,
	rateSyncUC usecase.RateSyncUsecase,
	publisher *kafka.SettlementPublisher,
	syncInterval time.Duration,
	logger *slog.Logger,
) *BackgroundTasks {
	if logger == nil {
		logger = slog.Default()
	}
	return &BackgroundTasks{
		SettlementRepo:  settlementRepo,
		RateSyncUsecase: rateSyncUC,
		Publisher:       publisher,
		SyncInterval:    syncInterval,
		Logger:          logger,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	// Interval 0 leaves periodic propagation off; syncs stay operator-driven.
	if bt.SyncInterval > 0 {
		go bt.startPeriodicRateSync(ctx)
	}
	if bt.Publisher != nil {
		go bt.startWriterHealthLog(ctx)
	}
}

// startWriterHealthLog surfaces Kafka write failures that the publish path
// only logs per event.
func (bt *BackgroundTasks) startWriterHealthLog(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := bt.Publisher.Stats()
			if stats.Errors > 0 {
				bt.Logger.Warn("kafka writer reported errors",
					"errors", stats.Errors, "writes", stats.Writes)
			}
		}
	}
}

// startPeriodicRateSync re-propagates rates into every DRAFT settlement of
// the current week, so edits made in the external rate tables land without
// an operator having to trigger a sync by hand.
func (bt *BackgroundTasks) startPeriodicRateSync(ctx context.Context) {
	ticker := time.NewTicker(bt.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.syncCurrentWeek(ctx)
		}
	}
}

func (bt *BackgroundTasks) syncCurrentWeek(ctx context.Context) {
	week := domain.NormalizeWeekStart(time.Now())
	settlements, err := bt.SettlementRepo.ListByWeek(ctx, week)
	if err != nil {
		bt.Logger.Error("list settlements for periodic rate sync failed", "error", err)
		return
	}

	for _, s := range settlements {
		if !s.Editable() {
			continue
		}
		report, err := bt.RateSyncUsecase.Sync(ctx, s.ID)
		if err != nil {
			bt.Logger.Error("periodic rate sync failed", "settlement_id", s.ID, "error", err)
			continue
		}
		if report.Succeeded > 0 {
			bt.Logger.Info("periodic rate sync applied changes",
				"settlement_id", s.ID,
				"agent_rates", report.AgentRatesUpdated,
				"player_rates", report.PlayerRatesUpdated)
		}
	}
}
