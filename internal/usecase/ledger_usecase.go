package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jaevor/go-nanoid"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/metrics"
	ledgerdto "github.com/pokerliga/settlement-service/internal/usecase/dto/ledger"
	"github.com/pokerliga/settlement-service/internal/usecase/settle"
)

// ResultSource provides an entity's computed period result; implemented by
// the settlement usecase.
type ResultSource interface {
	PeriodResult(ctx context.Context, entityRef string, weekStart time.Time) (float64, error)
}

type LedgerUsecase interface {
	RecordEntry(ctx context.Context, input *ledgerdto.RecordEntryInput) (*domain.LedgerEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	MarkReconciled(ctx context.Context, entryID string, reconciled bool) error
	Reconcile(ctx context.Context, entityRef string, weekStart time.Time) (*ledgerdto.Reconciliation, error)
	// ReconcileWeek covers every entity with a ledger entry or a carried
	// balance in the week.
	ReconcileWeek(ctx context.Context, weekStart time.Time) ([]*ledgerdto.Reconciliation, error)
}

type DefaultLedgerUsecase struct {
	ledgerRepo     domain.LedgerRepository
	settlementRepo domain.SettlementRepository
	carryRepo      domain.CarryRepository
	orgRepo        domain.OrgRepository
	results        ResultSource
	metrics        *metrics.SettlementMetrics
	logger         *slog.Logger
}

func NewDefaultLedgerUsecase(
	ledgerRepo domain.LedgerRepository,
	settlementRepo domain.SettlementRepository,
	carryRepo domain.CarryRepository,
	orgRepo domain.OrgRepository,
	results ResultSource,
	settlementMetrics *metrics.SettlementMetrics,
	logger *slog.Logger,
) *DefaultLedgerUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultLedgerUsecase{
		ledgerRepo:     ledgerRepo,
		settlementRepo: settlementRepo,
		carryRepo:      carryRepo,
		orgRepo:        orgRepo,
		results:        results,
		metrics:        settlementMetrics,
		logger:         logger,
	}
}

// weekEditable reports whether the entity's settlement week still accepts
// ledger mutations. A week with no settlement yet is editable: entries may be
// recorded before the import lands.
func (uc *DefaultLedgerUsecase) weekEditable(ctx context.Context, entityRef string, weekStart time.Time) error {
	subclub, err := uc.orgRepo.GetSubclub(ctx, entityRef)
	if err != nil {
		return fmt.Errorf("resolve entity: %w", err)
	}
	if subclub == nil {
		return nil
	}

	settlement, err := uc.settlementRepo.GetByClubWeek(ctx, subclub.ClubID, weekStart)
	if errors.Is(err, domain.ErrNotFound) || settlement == nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load settlement: %w", err)
	}
	if !settlement.Editable() {
		return domain.ErrSettlementNotDraft
	}
	return nil
}

func (uc *DefaultLedgerUsecase) RecordEntry(ctx context.Context, input *ledgerdto.RecordEntryInput) (*domain.LedgerEntry, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	direction := domain.LedgerDirection(input.Direction)
	if direction != domain.LedgerIn && direction != domain.LedgerOut {
		return nil, domain.ErrInvalidDirection
	}

	weekStart := domain.NormalizeWeekStart(input.WeekStart)
	if err := uc.weekEditable(ctx, input.EntityRef, weekStart); err != nil {
		return nil, err
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	entry := &domain.LedgerEntry{
		ID:        idGenerator(),
		EntityRef: input.EntityRef,
		Direction: direction,
		Amount:    settle.Round2(input.Amount),
		Method:    input.Method,
		WeekStart: weekStart,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.ledgerRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create ledger entry: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.RecordLedgerEntry(string(direction), entry.Amount)
	}
	uc.logger.Info("ledger entry recorded",
		"entry_id", entry.ID, "entity", entry.EntityRef, "direction", direction, "amount", entry.Amount)
	return entry, nil
}

func (uc *DefaultLedgerUsecase) DeleteEntry(ctx context.Context, entryID string) error {
	entry, err := uc.ledgerRepo.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("load ledger entry: %w", err)
	}
	if entry == nil {
		return domain.ErrLedgerEntryNotFound
	}
	if err := uc.weekEditable(ctx, entry.EntityRef, entry.WeekStart); err != nil {
		return err
	}
	return uc.ledgerRepo.Delete(ctx, entryID)
}

func (uc *DefaultLedgerUsecase) MarkReconciled(ctx context.Context, entryID string, reconciled bool) error {
	entry, err := uc.ledgerRepo.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("load ledger entry: %w", err)
	}
	if entry == nil {
		return domain.ErrLedgerEntryNotFound
	}
	return uc.ledgerRepo.MarkReconciled(ctx, entryID, reconciled)
}

// Reconcile combines the entity's carried balance, computed period result
// and recorded cash movement into the week's open balance and status.
func (uc *DefaultLedgerUsecase) Reconcile(ctx context.Context, entityRef string, weekStart time.Time) (*ledgerdto.Reconciliation, error) {
	weekStart = domain.NormalizeWeekStart(weekStart)

	entries, err := uc.ledgerRepo.ListByEntityWeek(ctx, entityRef, weekStart)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	flow := settle.LedgerNet(entries)

	prior := 0.0
	if carry, err := uc.carryRepo.Get(ctx, entityRef, weekStart); err == nil && carry != nil {
		prior = carry.Amount
	}

	periodResult, err := uc.results.PeriodResult(ctx, entityRef, weekStart)
	if err != nil {
		return nil, err
	}

	balance := settle.OpenBalance(prior, periodResult, flow.Net)
	totalOwed := settle.Round2(-(prior + periodResult))

	return &ledgerdto.Reconciliation{
		EntityRef:    entityRef,
		WeekStart:    weekStart,
		PriorBalance: prior,
		PeriodResult: periodResult,
		In:           flow.In,
		Out:          flow.Out,
		Net:          flow.Net,
		Balance:      balance,
		Pending:      settle.PendingAmount(totalOwed, flow.Net),
		Status:       settle.Status(balance, flow),
	}, nil
}

// ReconcileWeek reconciles every entity that left a trace in the week: a
// recorded ledger entry, a carried balance, or both.
func (uc *DefaultLedgerUsecase) ReconcileWeek(ctx context.Context, weekStart time.Time) ([]*ledgerdto.Reconciliation, error) {
	weekStart = domain.NormalizeWeekStart(weekStart)

	entries, err := uc.ledgerRepo.ListByWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	carries, err := uc.carryRepo.ListByWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("list carry balances: %w", err)
	}

	entities := make(map[string]struct{})
	for _, e := range entries {
		entities[e.EntityRef] = struct{}{}
	}
	for _, c := range carries {
		entities[c.EntityRef] = struct{}{}
	}

	reconciliations := make([]*ledgerdto.Reconciliation, 0, len(entities))
	for entityRef := range entities {
		reconciliation, err := uc.Reconcile(ctx, entityRef, weekStart)
		if err != nil {
			return nil, err
		}
		reconciliations = append(reconciliations, reconciliation)
	}

	sort.Slice(reconciliations, func(i, j int) bool {
		return reconciliations[i].EntityRef < reconciliations[j].EntityRef
	})
	return reconciliations, nil
}
