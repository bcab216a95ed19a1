package ledgerdto

import "time"

type RecordEntryInput struct {
	EntityRef string    `json:"entity_ref"`
	Direction string    `json:"direction"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	WeekStart time.Time `json:"week_start"`
	Notes     string    `json:"notes"`
}
