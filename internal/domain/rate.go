package domain

import (
	"context"
	"time"
)

type RateScope string

const (
	RateScopeAgent  RateScope = "AGENT"
	RateScopePlayer RateScope = "PLAYER"
)

// RateRecord is one interval of an entity's rakeback-rate history. A nil
// EffectiveTo marks the currently active record; the store guarantees at most
// one open interval per (scope, entity).
type RateRecord struct {
	ID            string
	Scope         RateScope
	EntityID      string
	Rate          float64
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
}

func (r *RateRecord) Current() bool {
	return r.EffectiveTo == nil
}

type RateRepository interface {
	// Current returns the open-interval record for the entity, or nil when
	// the entity has no active rate.
	Current(ctx context.Context, scope RateScope, entityID string) (*RateRecord, error)
	// CurrentBulk returns entityID -> active rate for a whole scope.
	CurrentBulk(ctx context.Context, scope RateScope) (map[string]float64, error)
	History(ctx context.Context, scope RateScope, entityID string) ([]*RateRecord, error)
	// SetCurrent closes the open interval (if any) and opens a new one in a
	// single transaction.
	SetCurrent(ctx context.Context, scope RateScope, entityID string, rate float64) error
}
