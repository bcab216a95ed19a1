package settlementdto

type AdjustmentsInput struct {
	SubclubID string  `json:"subclub_id"`
	Overlay   float64 `json:"overlay"`
	Purchases float64 `json:"purchases"`
	Security  float64 `json:"security"`
	Other     float64 `json:"other"`
	Notes     string  `json:"notes"`
}
