package domain

import (
	"context"
	"time"
)

type LedgerDirection string

const (
	LedgerIn  LedgerDirection = "IN"
	LedgerOut LedgerDirection = "OUT"
)

// LedgerEntry records one real cash movement. IN means cash flowed into the
// club from the entity. Entries are immutable once created except for the
// reconciled flag, and may be deleted only while the week is still DRAFT.
type LedgerEntry struct {
	ID         string
	EntityRef  string
	Direction  LedgerDirection
	Amount     float64
	Method     string
	WeekStart  time.Time
	Reconciled bool
	Notes      string
	CreatedAt  time.Time
}

type LedgerRepository interface {
	GetByID(ctx context.Context, id string) (*LedgerEntry, error)
	ListByEntityWeek(ctx context.Context, entityRef string, weekStart time.Time) ([]*LedgerEntry, error)
	ListByWeek(ctx context.Context, weekStart time.Time) ([]*LedgerEntry, error)
	Create(ctx context.Context, entry *LedgerEntry) error
	Delete(ctx context.Context, id string) error
	MarkReconciled(ctx context.Context, id string, reconciled bool) error
}
