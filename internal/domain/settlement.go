package domain

import (
	"context"
	"time"
)

type SettlementStatus string

const (
	SettlementDraft SettlementStatus = "DRAFT"
	SettlementFinal SettlementStatus = "FINAL"
	SettlementVoid  SettlementStatus = "VOID"
)

// Settlement identifies one club's one week. Only DRAFT settlements may be
// mutated by the engine; FINAL and VOID rows are read-only inputs.
type Settlement struct {
	ID        string
	ClubID    string
	WeekStart time.Time
	Status    SettlementStatus
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Settlement) Editable() bool {
	return s.Status == SettlementDraft
}

// NormalizeWeekStart truncates t to the Monday of its week, at midnight UTC.
func NormalizeWeekStart(t time.Time) time.Time {
	t = t.UTC().Truncate(24 * time.Hour)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

type SettlementRepository interface {
	GetByID(ctx context.Context, id string) (*Settlement, error)
	GetByClubWeek(ctx context.Context, clubID string, weekStart time.Time) (*Settlement, error)
	ListByWeek(ctx context.Context, weekStart time.Time) ([]*Settlement, error)
	Create(ctx context.Context, settlement *Settlement) error
	// UpdateStatus moves a settlement from one status to another. The write is
	// conditional on the current status still being `from`.
	UpdateStatus(ctx context.Context, id string, from, to SettlementStatus) error
	BumpVersion(ctx context.Context, id string) error
}
