package ratesync

// Report summarises one propagation run. Per-row failures are counted, never
// escalated; the caller turns counts into messages.
type Report struct {
	AgentsCreated    int `json:"agents_created"`
	AgentsReparented int `json:"agents_reparented"`
	RowsLinked       int `json:"rows_linked"`

	AgentRatesUpdated  int `json:"agent_rates_updated"`
	PlayerRatesUpdated int `json:"player_rates_updated"`

	// Skipped counts rows already matching their target rate, plus rows whose
	// conditional write lost to a concurrent update.
	Skipped   int `json:"skipped"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

func (r *Report) merge(b batchResult) {
	r.Succeeded += b.Succeeded
	r.Failed += b.Failed
}
