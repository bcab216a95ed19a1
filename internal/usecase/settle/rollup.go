package settle

// SubclubResult is one subclub's fully computed week, the unit the rollup
// consumes. Monetary fields are already rounded to 2 decimals.
type SubclubResult struct {
	SubclubID        string  `json:"subclub_id"`
	SubclubName      string  `json:"subclub_name"`
	Players          int     `json:"players"`
	Agents           int     `json:"agents"`
	Winnings         float64 `json:"winnings"`
	Rake             float64 `json:"rake"`
	Revenue          float64 `json:"revenue"`
	RBTotal          float64 `json:"rb_total"`
	Resultado        float64 `json:"resultado"`
	TotalFees        float64 `json:"total_fees"`
	TotalFeesSigned  float64 `json:"total_fees_signed"`
	TotalAdjustments float64 `json:"total_adjustments"`
	ClubBalance      float64 `json:"club_balance"`
}

// DashboardTotals is the club-level (or cross-club) aggregate of many
// subclub results.
type DashboardTotals struct {
	Subclubs         int     `json:"subclubs"`
	Players          int     `json:"players"`
	Agents           int     `json:"agents"`
	Winnings         float64 `json:"winnings"`
	Rake             float64 `json:"rake"`
	Revenue          float64 `json:"revenue"`
	RBTotal          float64 `json:"rb_total"`
	Resultado        float64 `json:"resultado"`
	TotalFees        float64 `json:"total_fees"`
	TotalFeesSigned  float64 `json:"total_fees_signed"`
	TotalAdjustments float64 `json:"total_adjustments"`
	ClubBalance      float64 `json:"club_balance"`
}

// ClubBalance is the canonical settlement figure and must hold at every
// aggregation level: resultado plus signed fees plus adjustments.
func ClubBalance(resultado, totalFeesSigned, totalAdjustments float64) float64 {
	return Round2(Coerce(resultado) + Coerce(totalFeesSigned) + Coerce(totalAdjustments))
}

// Rollup combines subclub results into dashboard totals. The club balance is
// derived from the summed terms with the canonical formula, never recomputed
// from rates, so it stays additive over the inputs. Empty input yields
// all-zero totals.
func Rollup(subclubs []SubclubResult) DashboardTotals {
	var t DashboardTotals
	t.Subclubs = len(subclubs)

	for _, s := range subclubs {
		t.Players += s.Players
		t.Agents += s.Agents
		t.Winnings += Coerce(s.Winnings)
		t.Rake += Coerce(s.Rake)
		t.Revenue += Coerce(s.Revenue)
		t.RBTotal += Coerce(s.RBTotal)
		t.Resultado += Coerce(s.Resultado)
		t.TotalFees += Coerce(s.TotalFees)
		t.TotalAdjustments += Coerce(s.TotalAdjustments)
	}

	t.Winnings = Round2(t.Winnings)
	t.Rake = Round2(t.Rake)
	t.Revenue = Round2(t.Revenue)
	t.RBTotal = Round2(t.RBTotal)
	t.Resultado = Round2(t.Resultado)
	t.TotalFees = Round2(t.TotalFees)
	t.TotalFeesSigned = Round2(-t.TotalFees)
	t.TotalAdjustments = Round2(t.TotalAdjustments)
	t.ClubBalance = ClubBalance(t.Resultado, t.TotalFeesSigned, t.TotalAdjustments)
	return t
}
