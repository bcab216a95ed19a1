package domain

import "context"

// PlayerMetric is one player's raw activity inside one settlement, plus the
// rakeback fields derived from it. AgentRef carries the raw agent label from
// the import; AgentID is filled once the label is resolved to an entity.
type PlayerMetric struct {
	ID               string
	SettlementID     string
	ExternalPlayerID string
	PlayerID         string
	AgentRef         string
	AgentID          string
	Winnings         float64
	RakeTotal        float64
	GamingRevenue    float64
	RBRate           float64
	RBValue          float64
	Resultado        float64
}

// AgentMetric is one agent's aggregate inside one subclub of one settlement.
// When IsDirect is set the agent's rakeback is the sum of each player's own
// rate; the agent-level rate is ignored and reported as 0.
type AgentMetric struct {
	ID            string
	SettlementID  string
	AgentRef      string
	AgentID       string
	SubclubID     string
	PlayerCount   int
	RakeTotal     float64
	WinningsTotal float64
	RevenueTotal  float64
	RBRate        float64
	Commission    float64
	Resultado     float64
	IsDirect      bool
}

type MetricRepository interface {
	ListPlayerMetrics(ctx context.Context, settlementID string) ([]*PlayerMetric, error)
	ListAgentMetrics(ctx context.Context, settlementID string) ([]*AgentMetric, error)

	// SavePlayerResult persists the derived fields after a recompute.
	SavePlayerResult(ctx context.Context, metricID string, rbValue, resultado float64) error
	SaveAgentResult(ctx context.Context, metricID string, commission, resultado float64) error

	// UpdatePlayerRate applies a new rate plus recomputed fields, conditional
	// on the stored rate still being expectedRate. Returns false when the row
	// was already updated by someone else.
	UpdatePlayerRate(ctx context.Context, metricID string, expectedRate, rate, rbValue, resultado float64) (bool, error)
	UpdateAgentRate(ctx context.Context, metricID string, expectedRate, rate, commission, resultado float64) (bool, error)

	LinkPlayerEntity(ctx context.Context, metricID, playerID, agentID string) error
	LinkAgentEntity(ctx context.Context, metricID, agentID string) error
}
