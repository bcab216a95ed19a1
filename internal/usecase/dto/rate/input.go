package ratedto

type SetRateInput struct {
	Scope    string  `json:"scope"`
	EntityID string  `json:"entity_id"`
	Rate     float64 `json:"rate"`
}
