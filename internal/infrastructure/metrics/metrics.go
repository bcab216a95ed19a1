package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pokerliga/settlement-service/internal/usecase/ratesync"
)

// SettlementMetrics holds the Prometheus collectors for the engine.
type SettlementMetrics struct {
	SettlementsComputed  *prometheus.CounterVec
	SettlementsFinalized *prometheus.CounterVec

	LedgerEntriesRecorded *prometheus.CounterVec
	LedgerAmountRecorded  *prometheus.CounterVec

	RateSyncRuns        *prometheus.CounterVec
	RateSyncRowsUpdated *prometheus.CounterVec
	RateSyncRowsFailed  prometheus.Counter
	RateSyncDuration    prometheus.Histogram
}

func NewSettlementMetrics() *SettlementMetrics {
	return &SettlementMetrics{
		SettlementsComputed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "settlements_computed_total",
			Help: "Settlement recomputations, by club",
		}, []string{"club_id"}),
		SettlementsFinalized: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "settlements_finalized_total",
			Help: "DRAFT to FINAL transitions, by club",
		}, []string{"club_id"}),
		LedgerEntriesRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_entries_recorded_total",
			Help: "Recorded cash movements, by direction",
		}, []string{"direction"}),
		LedgerAmountRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_amount_recorded_total",
			Help: "Summed recorded cash amounts, by direction",
		}, []string{"direction"}),
		RateSyncRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ratesync_runs_total",
			Help: "Rate propagation runs, by outcome",
		}, []string{"outcome"}),
		RateSyncRowsUpdated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ratesync_rows_updated_total",
			Help: "Metric rows rewritten by rate propagation, by kind",
		}, []string{"kind"}),
		RateSyncRowsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ratesync_rows_failed_total",
			Help: "Metric rows whose propagation write failed",
		}),
		RateSyncDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ratesync_duration_seconds",
			Help:    "Wall time of rate propagation runs",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *SettlementMetrics) RecordSettlementComputed(clubID string) {
	m.SettlementsComputed.WithLabelValues(clubID).Inc()
}

func (m *SettlementMetrics) RecordSettlementFinalized(clubID string) {
	m.SettlementsFinalized.WithLabelValues(clubID).Inc()
}

func (m *SettlementMetrics) RecordLedgerEntry(direction string, amount float64) {
	m.LedgerEntriesRecorded.WithLabelValues(direction).Inc()
	m.LedgerAmountRecorded.WithLabelValues(direction).Add(amount)
}

func (m *SettlementMetrics) ObserveRateSync(duration time.Duration, report *ratesync.Report, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.RateSyncRuns.WithLabelValues(outcome).Inc()
	m.RateSyncDuration.Observe(duration.Seconds())

	if report == nil {
		return
	}
	m.RateSyncRowsUpdated.WithLabelValues("agent").Add(float64(report.AgentRatesUpdated))
	m.RateSyncRowsUpdated.WithLabelValues("player").Add(float64(report.PlayerRatesUpdated))
	m.RateSyncRowsFailed.Add(float64(report.Failed))
}
