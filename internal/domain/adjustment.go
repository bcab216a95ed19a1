package domain

import "context"

// SubclubAdjustments holds the manual, non-computed monetary entries for one
// subclub in one settlement week. Each field is a signed amount.
type SubclubAdjustments struct {
	ID           string
	SettlementID string
	SubclubID    string
	Overlay      float64
	Purchases    float64
	Security     float64
	Other        float64
	Notes        string
}

func (a *SubclubAdjustments) Total() float64 {
	return a.Overlay + a.Purchases + a.Security + a.Other
}

// FeeRateConfig holds the tenant-scoped fee rates. App and league rates apply
// to rake; the revenue rates apply to gaming revenue only when it is positive.
type FeeRateConfig struct {
	ClubID         string
	AppRate        float64
	LeagueRate     float64
	RevenueRate    float64
	RevenueAppRate float64
}

type AdjustmentRepository interface {
	ListBySettlement(ctx context.Context, settlementID string) ([]*SubclubAdjustments, error)
	GetBySubclub(ctx context.Context, settlementID, subclubID string) (*SubclubAdjustments, error)
	Upsert(ctx context.Context, adjustments *SubclubAdjustments) error
}

type FeeConfigRepository interface {
	GetByClub(ctx context.Context, clubID string) (*FeeRateConfig, error)
}
