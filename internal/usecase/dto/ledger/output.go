package ledgerdto

import (
	"time"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/usecase/settle"
)

// EntryView is the API shape of one ledger entry.
type EntryView struct {
	ID         string    `json:"id"`
	EntityRef  string    `json:"entity_ref"`
	Direction  string    `json:"direction"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	WeekStart  time.Time `json:"week_start"`
	Reconciled bool      `json:"reconciled"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToEntryView(entry *domain.LedgerEntry) *EntryView {
	return &EntryView{
		ID:         entry.ID,
		EntityRef:  entry.EntityRef,
		Direction:  string(entry.Direction),
		Amount:     entry.Amount,
		Method:     entry.Method,
		WeekStart:  entry.WeekStart,
		Reconciled: entry.Reconciled,
		Notes:      entry.Notes,
		CreatedAt:  entry.CreatedAt,
	}
}

// Reconciliation is one entity's week reconciled against its ledger.
type Reconciliation struct {
	EntityRef    string               `json:"entity_ref"`
	WeekStart    time.Time            `json:"week_start"`
	PriorBalance float64              `json:"prior_balance"`
	PeriodResult float64              `json:"period_result"`
	In           float64              `json:"in"`
	Out          float64              `json:"out"`
	Net          float64              `json:"net"`
	Balance      float64              `json:"balance"`
	Pending      float64              `json:"pending"`
	Status       settle.PaymentStatus `json:"status"`
}
