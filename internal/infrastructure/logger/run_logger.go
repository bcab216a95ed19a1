package logger

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pokerliga/settlement-service/internal/usecase/ratesync"
)

// RateSyncRunLog is one persisted propagation run, kept for operator
// inspection of batch outcomes.
type RateSyncRunLog struct {
	ID                 uint `gorm:"primaryKey"`
	SettlementID       string
	StartedAt          time.Time
	DurationMS         int64
	AgentsCreated      int
	RowsLinked         int
	AgentRatesUpdated  int
	PlayerRatesUpdated int
	Skipped            int
	Succeeded          int
	Failed             int
	Error              string
}

type RateSyncRunLogger struct {
	db *gorm.DB
}

func NewRateSyncRunLogger(db *gorm.DB) *RateSyncRunLogger {
	return &RateSyncRunLogger{db: db}
}

func (l *RateSyncRunLogger) LogRun(ctx context.Context, settlementID string, started time.Time, duration time.Duration, report *ratesync.Report, runErr error) error {
	row := RateSyncRunLog{
		SettlementID: settlementID,
		StartedAt:    started,
		DurationMS:   duration.Milliseconds(),
	}
	if report != nil {
		row.AgentsCreated = report.AgentsCreated
		row.RowsLinked = report.RowsLinked
		row.AgentRatesUpdated = report.AgentRatesUpdated
		row.PlayerRatesUpdated = report.PlayerRatesUpdated
		row.Skipped = report.Skipped
		row.Succeeded = report.Succeeded
		row.Failed = report.Failed
	}
	if runErr != nil {
		row.Error = runErr.Error()
	}
	return l.db.WithContext(ctx).Create(&row).Error
}
