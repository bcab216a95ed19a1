package ratedto

import (
	"time"

	"github.com/pokerliga/settlement-service/internal/domain"
)

type RateView struct {
	ID            string     `json:"id"`
	Scope         string     `json:"scope"`
	EntityID      string     `json:"entity_id"`
	Rate          float64    `json:"rate"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
}

func ToRateView(record *domain.RateRecord) *RateView {
	return &RateView{
		ID:            record.ID,
		Scope:         string(record.Scope),
		EntityID:      record.EntityID,
		Rate:          record.Rate,
		EffectiveFrom: record.EffectiveFrom,
		EffectiveTo:   record.EffectiveTo,
	}
}
