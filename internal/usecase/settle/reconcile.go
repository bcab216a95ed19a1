package settle

import (
	"math"

	"github.com/pokerliga/settlement-service/internal/domain"
)

// PaymentStatus classifies an entity's week. It is recomputed fresh from the
// balance and the ledger each time, never advanced like a state machine.
type PaymentStatus string

const (
	StatusNeutro  PaymentStatus = "neutro"
	StatusAberto  PaymentStatus = "aberto"
	StatusParcial PaymentStatus = "parcial"
	StatusPago    PaymentStatus = "pago"
)

// settledEpsilon is the threshold under which a balance counts as settled.
const settledEpsilon = 0.01

// LedgerFlow is the summed cash movement of a period.
type LedgerFlow struct {
	In  float64
	Out float64
	Net float64
}

// Moved reports whether any cash movement happened, using the gross in/out
// sums rather than the net: an IN and an OUT of equal amount net to zero but
// a wash is still an event.
func (f LedgerFlow) Moved() bool {
	return f.In != 0 || f.Out != 0
}

// LedgerNet sums a period's entries into gross in, gross out and net flow.
func LedgerNet(entries []*domain.LedgerEntry) LedgerFlow {
	var f LedgerFlow
	for _, e := range entries {
		if e == nil {
			continue
		}
		switch e.Direction {
		case domain.LedgerIn:
			f.In += Coerce(e.Amount)
		case domain.LedgerOut:
			f.Out += Coerce(e.Amount)
		}
	}
	f.In = Round2(f.In)
	f.Out = Round2(f.Out)
	f.Net = Round2(f.In - f.Out)
	return f
}

// OpenBalance rolls the prior week's balance forward through this period's
// result and cash flow. Positive means the club owes the entity; IN entries
// are cash received from the entity, hence subtracted.
func OpenBalance(prior, periodResult, ledgerNet float64) float64 {
	return Round2(Coerce(prior) + Coerce(periodResult) - Coerce(ledgerNet))
}

// Status classifies the balance against the period's ledger activity.
func Status(balance float64, flow LedgerFlow) PaymentStatus {
	settled := math.Abs(Coerce(balance)) < settledEpsilon
	if settled {
		if flow.Moved() {
			return StatusPago
		}
		return StatusNeutro
	}
	if flow.Moved() {
		return StatusParcial
	}
	return StatusAberto
}

// PendingAmount is what remains to settle. ledgerNet already carries the
// correct sign, so this is a straight sum, not a subtraction.
func PendingAmount(totalOwed, ledgerNet float64) float64 {
	return Round2(Coerce(totalOwed) + Coerce(ledgerNet))
}
