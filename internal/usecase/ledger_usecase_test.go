package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerliga/settlement-service/internal/domain"
	ledgerdto "github.com/pokerliga/settlement-service/internal/usecase/dto/ledger"
	"github.com/pokerliga/settlement-service/internal/usecase/settle"
)

// stubResults pins the period result so reconciliation tests do not depend
// on settlement fixtures.
type stubResults struct{ value float64 }

func (s stubResults) PeriodResult(context.Context, string, time.Time) (float64, error) {
	return s.value, nil
}

func newLedgerUsecase(store *memStore, results ResultSource) *DefaultLedgerUsecase {
	return NewDefaultLedgerUsecase(
		store.ledgerRepo(), store, store.carryRepo(), store,
		results, nil, discardLogger(),
	)
}

func TestRecordEntryValidation(t *testing.T) {
	uc := newLedgerUsecase(newMemStore(), stubResults{})

	_, err := uc.RecordEntry(context.Background(), &ledgerdto.RecordEntryInput{
		EntityRef: "sub-1", Direction: "IN", Amount: 0, WeekStart: testWeek,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.RecordEntry(context.Background(), &ledgerdto.RecordEntryInput{
		EntityRef: "sub-1", Direction: "SIDEWAYS", Amount: 50, WeekStart: testWeek,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestRecordEntryNormalizesWeekAndRounds(t *testing.T) {
	store := newMemStore()
	uc := newLedgerUsecase(store, stubResults{})

	entry, err := uc.RecordEntry(context.Background(), &ledgerdto.RecordEntryInput{
		EntityRef: "sub-1",
		Direction: "IN",
		Amount:    3000.129,
		Method:    "pix",
		WeekStart: testWeek.AddDate(0, 0, 3), // a Thursday
	})
	require.NoError(t, err)

	assert.Len(t, entry.ID, 15)
	assert.Equal(t, testWeek, entry.WeekStart)
	assert.Equal(t, 3000.13, entry.Amount)
	assert.NotNil(t, store.ledger[entry.ID])
}

func TestRecordEntryRejectsFinalizedWeek(t *testing.T) {
	store := newMemStore()
	store.subclubs["sub-1"] = &domain.Subclub{ID: "sub-1", ClubID: "club-1", Name: "Norte"}
	store.settlements["stl-1"] = &domain.Settlement{
		ID: "stl-1", ClubID: "club-1", WeekStart: testWeek, Status: domain.SettlementFinal,
	}
	uc := newLedgerUsecase(store, stubResults{})

	_, err := uc.RecordEntry(context.Background(), &ledgerdto.RecordEntryInput{
		EntityRef: "sub-1", Direction: "OUT", Amount: 10, WeekStart: testWeek,
	})
	assert.ErrorIs(t, err, domain.ErrSettlementNotDraft)
}

func TestDeleteEntry(t *testing.T) {
	store := newMemStore()
	store.subclubs["sub-1"] = &domain.Subclub{ID: "sub-1", ClubID: "club-1", Name: "Norte"}
	store.settlements["stl-1"] = &domain.Settlement{
		ID: "stl-1", ClubID: "club-1", WeekStart: testWeek, Status: domain.SettlementDraft,
	}
	store.ledger["le-1"] = &domain.LedgerEntry{
		ID: "le-1", EntityRef: "sub-1", Direction: domain.LedgerIn, Amount: 100, WeekStart: testWeek,
	}
	uc := newLedgerUsecase(store, stubResults{})

	assert.ErrorIs(t, uc.DeleteEntry(context.Background(), "missing"), domain.ErrLedgerEntryNotFound)

	require.NoError(t, uc.DeleteEntry(context.Background(), "le-1"))
	assert.Nil(t, store.ledger["le-1"])

	// Entries of a FINAL week are frozen.
	store.settlements["stl-1"].Status = domain.SettlementFinal
	store.ledger["le-2"] = &domain.LedgerEntry{
		ID: "le-2", EntityRef: "sub-1", Direction: domain.LedgerOut, Amount: 40, WeekStart: testWeek,
	}
	assert.ErrorIs(t, uc.DeleteEntry(context.Background(), "le-2"), domain.ErrSettlementNotDraft)
}

func TestMarkReconciled(t *testing.T) {
	store := newMemStore()
	store.ledger["le-1"] = &domain.LedgerEntry{
		ID: "le-1", EntityRef: "sub-1", Direction: domain.LedgerIn, Amount: 100, WeekStart: testWeek,
	}
	uc := newLedgerUsecase(store, stubResults{})

	assert.ErrorIs(t, uc.MarkReconciled(context.Background(), "missing", true), domain.ErrLedgerEntryNotFound)

	require.NoError(t, uc.MarkReconciled(context.Background(), "le-1", true))
	assert.True(t, store.ledger["le-1"].Reconciled)
}

func TestReconcileCombinesCarryResultAndFlow(t *testing.T) {
	store := newMemStore()
	store.carries[carryKey("sub-1", testWeek)] = &domain.CarryBalance{
		ID: "cb-1", EntityRef: "sub-1", WeekStart: testWeek, Amount: -100,
	}
	store.ledger["le-1"] = &domain.LedgerEntry{
		ID: "le-1", EntityRef: "sub-1", Direction: domain.LedgerIn, Amount: 800, WeekStart: testWeek,
	}
	uc := newLedgerUsecase(store, stubResults{value: 964})

	rec, err := uc.Reconcile(context.Background(), "sub-1", testWeek)
	require.NoError(t, err)

	assert.Equal(t, -100.0, rec.PriorBalance)
	assert.Equal(t, 964.0, rec.PeriodResult)
	assert.Equal(t, 800.0, rec.In)
	assert.Zero(t, rec.Out)
	assert.Equal(t, 800.0, rec.Net)
	// -100 + 964 - 800 received.
	assert.Equal(t, 64.0, rec.Balance)
	assert.Equal(t, -64.0, rec.Pending)
	assert.Equal(t, settle.StatusParcial, rec.Status)
}

func TestReconcileQuietWeekIsNeutro(t *testing.T) {
	uc := newLedgerUsecase(newMemStore(), stubResults{})

	rec, err := uc.Reconcile(context.Background(), "sub-1", testWeek)
	require.NoError(t, err)

	assert.Zero(t, rec.Balance)
	assert.Zero(t, rec.Pending)
	assert.Equal(t, settle.StatusNeutro, rec.Status)
}

func TestReconcileWeekCoversLedgerAndCarryEntities(t *testing.T) {
	store := newMemStore()
	store.ledger["le-1"] = &domain.LedgerEntry{
		ID: "le-1", EntityRef: "sub-1", Direction: domain.LedgerIn,
		Amount: 800, WeekStart: testWeek,
	}
	// sub-2 had no movement this week, only a balance carried into it.
	store.carries[carryKey("sub-2", testWeek)] = &domain.CarryBalance{
		ID: "cb-1", EntityRef: "sub-2", WeekStart: testWeek, Amount: -150,
	}
	uc := newLedgerUsecase(store, stubResults{})

	recs, err := uc.ReconcileWeek(context.Background(), testWeek.AddDate(0, 0, 2)) // a Wednesday
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "sub-1", recs[0].EntityRef)
	assert.Equal(t, 800.0, recs[0].In)

	assert.Equal(t, "sub-2", recs[1].EntityRef)
	assert.Equal(t, -150.0, recs[1].PriorBalance)
	assert.Equal(t, -150.0, recs[1].Balance)
}
