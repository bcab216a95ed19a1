package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pokerliga/settlement-service/internal/infrastructure/kafka"
	"github.com/pokerliga/settlement-service/internal/infrastructure/logger"
	"github.com/pokerliga/settlement-service/internal/infrastructure/metrics"
	"github.com/pokerliga/settlement-service/internal/usecase/ratesync"
)

type RateSyncUsecase interface {
	Sync(ctx context.Context, settlementID string) (*ratesync.Report, error)
}

// DefaultRateSyncUsecase wraps the propagator with run logging, metrics and
// event publication.
type DefaultRateSyncUsecase struct {
	propagator *ratesync.Propagator
	runLogger  *logger.RateSyncRunLogger
	publisher  *kafka.SettlementPublisher
	metrics    *metrics.SettlementMetrics
	logger     *slog.Logger
}

func NewDefaultRateSyncUsecase(
	propagator *ratesync.Propagator,
	runLogger *logger.RateSyncRunLogger,
	publisher *kafka.SettlementPublisher,
	settlementMetrics *metrics.SettlementMetrics,
	log *slog.Logger,
) *DefaultRateSyncUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &DefaultRateSyncUsecase{
		propagator: propagator,
		runLogger:  runLogger,
		publisher:  publisher,
		metrics:    settlementMetrics,
		logger:     log,
	}
}

func (uc *DefaultRateSyncUsecase) Sync(ctx context.Context, settlementID string) (*ratesync.Report, error) {
	started := time.Now()
	report, err := uc.propagator.Run(ctx, settlementID)
	duration := time.Since(started)

	if uc.metrics != nil {
		uc.metrics.ObserveRateSync(duration, report, err)
	}
	if uc.runLogger != nil {
		if logErr := uc.runLogger.LogRun(ctx, settlementID, started, duration, report, err); logErr != nil {
			uc.logger.Error("write rate sync run log failed", "error", logErr)
		}
	}
	if err != nil {
		return report, err
	}

	if uc.publisher != nil {
		event := kafka.RateSyncEvent{
			SettlementID:       settlementID,
			AgentRatesUpdated:  report.AgentRatesUpdated,
			PlayerRatesUpdated: report.PlayerRatesUpdated,
			Failed:             report.Failed,
			DurationMS:         duration.Milliseconds(),
		}
		if pubErr := uc.publisher.PublishRateSyncCompleted(event); pubErr != nil {
			uc.logger.Error("publish rate sync event failed", "error", pubErr)
		}
	}
	return report, nil
}
