package settle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func subclubFixture(id string, rake, revenue, winnings float64, rbRate float64, adjustments float64, rates FeeRates) SubclubResult {
	rbTotal := Round2(rake * rbRate / 100)
	resultado := Round2(winnings + rbTotal)
	fees := ComputeFees(rake, revenue, rates)

	return SubclubResult{
		SubclubID:        id,
		Players:          3,
		Agents:           1,
		Winnings:         winnings,
		Rake:             rake,
		Revenue:          revenue,
		RBTotal:          rbTotal,
		Resultado:        resultado,
		TotalFees:        fees.TotalFees,
		TotalFeesSigned:  fees.TotalFeesSigned,
		TotalAdjustments: adjustments,
		ClubBalance:      ClubBalance(resultado, fees.TotalFeesSigned, adjustments),
	}
}

func TestRollupEmptyInput(t *testing.T) {
	got := Rollup(nil)
	assert.Equal(t, DashboardTotals{}, got)

	got = Rollup([]SubclubResult{})
	assert.Equal(t, DashboardTotals{}, got)
}

func TestRollupSumsCountsAndMoney(t *testing.T) {
	rates := FeeRates{App: 2, League: 8, Revenue: 10, RevenueApp: 1}
	subclubs := []SubclubResult{
		subclubFixture("a", 10000, 2000, -500, 30, 150.00, rates),
		subclubFixture("b", 5000, -300, 1200, 25, -75.50, rates),
	}

	got := Rollup(subclubs)
	assert.Equal(t, 2, got.Subclubs)
	assert.Equal(t, 6, got.Players)
	assert.Equal(t, 2, got.Agents)
	assert.Equal(t, 15000.00, got.Rake)
	assert.Equal(t, 1700.00, got.Revenue)
	assert.Equal(t, 700.00, got.Winnings)
	assert.Equal(t, -got.TotalFees, got.TotalFeesSigned)
	assert.Equal(t, 74.50, got.TotalAdjustments)
}

func TestRollupClubBalanceAdditivity(t *testing.T) {
	rates := FeeRates{App: 1.5, League: 7.25, Revenue: 12.5, RevenueApp: 0.75}
	subclubs := []SubclubResult{
		subclubFixture("a", 10000, 2000, -500.33, 30, 150.10, rates),
		subclubFixture("b", 5000.55, -300, 1200.99, 25, -75.50, rates),
		subclubFixture("c", 333.33, 0.01, 0, 8, 0, rates),
		subclubFixture("d", 0, 0, 0, 0, 0, rates),
	}

	got := Rollup(subclubs)

	var sum float64
	for _, s := range subclubs {
		sum += s.ClubBalance
	}
	assert.InDelta(t, Round2(sum), got.ClubBalance, 1e-9,
		"rollup club balance must equal the sum of subclub balances")

	// The canonical formula holds at the rollup level as well.
	assert.InDelta(t, ClubBalance(got.Resultado, got.TotalFeesSigned, got.TotalAdjustments),
		got.ClubBalance, 1e-9)
}
