package settle

// FeeRates are the tenant-scoped fee percentages. App and League apply to
// rake; Revenue and RevenueApp apply to gaming revenue.
type FeeRates struct {
	App        float64
	League     float64
	Revenue    float64
	RevenueApp float64
}

// FeeBreakdown is the league-fee result for one subclub. TotalFeesSigned is
// always the arithmetic negation of TotalFees: fees are a negative adjustment
// to the club's result.
type FeeBreakdown struct {
	AppFee          float64
	LeagueFee       float64
	RevenueFee      float64
	RevenueAppFee   float64
	TotalFees       float64
	TotalFeesSigned float64
}

// ComputeFees computes the fee breakdown for one subclub's totals.
// Revenue-based fees apply only when revenue is strictly positive; negative
// or zero revenue yields zero revenue fees. That gating is a business rule,
// not a rounding artifact.
func ComputeFees(rake, revenue float64, rates FeeRates) FeeBreakdown {
	rake = Coerce(rake)
	revenue = Coerce(revenue)

	revenueBase := 0.0
	if revenue > 0 {
		revenueBase = revenue
	}

	b := FeeBreakdown{
		AppFee:        Round2(rake * Coerce(rates.App) / 100),
		LeagueFee:     Round2(rake * Coerce(rates.League) / 100),
		RevenueFee:    Round2(revenueBase * Coerce(rates.Revenue) / 100),
		RevenueAppFee: Round2(revenueBase * Coerce(rates.RevenueApp) / 100),
	}
	b.TotalFees = Round2(b.AppFee + b.LeagueFee + b.RevenueFee + b.RevenueAppFee)
	b.TotalFeesSigned = Round2(-b.TotalFees)
	return b
}
