package settle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokerliga/settlement-service/internal/domain"
)

func entry(dir domain.LedgerDirection, amount float64) *domain.LedgerEntry {
	return &domain.LedgerEntry{ID: "e", EntityRef: "subclub-1", Direction: dir, Amount: amount}
}

func TestLedgerNet(t *testing.T) {
	flow := LedgerNet([]*domain.LedgerEntry{
		entry(domain.LedgerIn, 30),
		entry(domain.LedgerIn, 20.50),
		entry(domain.LedgerOut, 10.25),
	})
	assert.Equal(t, 50.50, flow.In)
	assert.Equal(t, 10.25, flow.Out)
	assert.Equal(t, 40.25, flow.Net)
	assert.True(t, flow.Moved())
}

func TestLedgerNetEmpty(t *testing.T) {
	flow := LedgerNet(nil)
	assert.Equal(t, LedgerFlow{}, flow)
	assert.False(t, flow.Moved())
}

func TestLedgerNetWashStillCountsAsMovement(t *testing.T) {
	flow := LedgerNet([]*domain.LedgerEntry{
		entry(domain.LedgerIn, 1000),
		entry(domain.LedgerOut, 1000),
	})
	assert.Equal(t, 0.0, flow.Net)
	assert.True(t, flow.Moved(), "a wash is still an event")
}

func TestOpenBalanceReferenceCase(t *testing.T) {
	// prior=100, periodResult=0, one IN of 30: the entity paid 30 towards
	// what the club owes it, leaving 70 open.
	flow := LedgerNet([]*domain.LedgerEntry{entry(domain.LedgerIn, 30)})
	assert.Equal(t, 70.0, OpenBalance(100, 0, flow.Net))
}

func TestStatusClassification(t *testing.T) {
	noFlow := LedgerFlow{}
	wash := LedgerNet([]*domain.LedgerEntry{
		entry(domain.LedgerIn, 250),
		entry(domain.LedgerOut, 250),
	})

	tests := []struct {
		name    string
		balance float64
		flow    LedgerFlow
		want    PaymentStatus
	}{
		{"zero balance, no entries", 0.00, noFlow, StatusNeutro},
		{"open balance, no entries", 500.00, noFlow, StatusAberto},
		{"open balance, wash movement", 500.00, wash, StatusParcial},
		{"settled after entries", 0.00, wash, StatusPago},
		{"sub-cent balance counts as settled", 0.009, noFlow, StatusNeutro},
		{"negative open balance", -500.00, noFlow, StatusAberto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.balance, tt.flow))
		})
	}
}

func TestPendingAmountReferenceCases(t *testing.T) {
	assert.Equal(t, -833.0, PendingAmount(-3833, 3000))
	assert.Equal(t, -103.0, PendingAmount(968, -1071))
}
