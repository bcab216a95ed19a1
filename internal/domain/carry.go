package domain

import (
	"context"
	"time"
)

// CarryBalance is the open balance rolled from a finalized week into the next
// one. Written once at the DRAFT->FINAL transition, read by the next week's
// reconciliation. Positive means the club owes the entity.
type CarryBalance struct {
	ID           string
	EntityRef    string
	WeekStart    time.Time
	Amount       float64
	SettlementID string
	CreatedAt    time.Time
}

type CarryRepository interface {
	Get(ctx context.Context, entityRef string, weekStart time.Time) (*CarryBalance, error)
	ListByWeek(ctx context.Context, weekStart time.Time) ([]*CarryBalance, error)
	Create(ctx context.Context, balance *CarryBalance) error
}
