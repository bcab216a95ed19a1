package settlementdto

import (
	"time"

	"github.com/pokerliga/settlement-service/internal/usecase/settle"
)

type Dashboard struct {
	WeekStart time.Time              `json:"week_start"`
	Totals    settle.DashboardTotals `json:"totals"`
	Subclubs  []settle.SubclubResult `json:"subclubs"`
}

// AgentView is the API shape of one agent's aggregate row. RBRate is always
// 0 on direct-mode rows: per-player rates govern them and any stored
// agent-level rate is not part of the contract.
type AgentView struct {
	AgentRef   string  `json:"agent_ref"`
	AgentID    string  `json:"agent_id,omitempty"`
	SubclubID  string  `json:"subclub_id"`
	Players    int     `json:"players"`
	Winnings   float64 `json:"winnings"`
	Rake       float64 `json:"rake"`
	Revenue    float64 `json:"revenue"`
	RBRate     float64 `json:"rb_rate"`
	Commission float64 `json:"commission"`
	Resultado  float64 `json:"resultado"`
	IsDirect   bool    `json:"is_direct"`
}
