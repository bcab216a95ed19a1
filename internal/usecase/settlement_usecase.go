package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/kafka"
	"github.com/pokerliga/settlement-service/internal/infrastructure/metrics"
	settlementdto "github.com/pokerliga/settlement-service/internal/usecase/dto/settlement"
	"github.com/pokerliga/settlement-service/internal/usecase/settle"
)

type SettlementUsecase interface {
	// Compute re-derives every player and agent result of a DRAFT settlement
	// and returns the per-subclub breakdown.
	Compute(ctx context.Context, settlementID string) ([]settle.SubclubResult, error)
	// Results reads the per-subclub breakdown from stored derived fields
	// without mutating anything; safe on FINAL settlements.
	Results(ctx context.Context, settlementID string) ([]settle.SubclubResult, error)
	// Agents lists the per-agent rows; direct-mode rows report a zero rate.
	Agents(ctx context.Context, settlementID string) ([]settlementdto.AgentView, error)
	Dashboard(ctx context.Context, weekStart time.Time) (*settlementdto.Dashboard, error)
	Finalize(ctx context.Context, settlementID string) error
	Void(ctx context.Context, settlementID string) error
	// MarkReimported bumps the settlement version after the import pipeline
	// replaced its metric rows.
	MarkReimported(ctx context.Context, settlementID string) error
	// SetAdjustments replaces one subclub's manual adjustment amounts; the
	// settlement must still be DRAFT.
	SetAdjustments(ctx context.Context, settlementID string, input *settlementdto.AdjustmentsInput) error
	// PeriodResult is the club balance of one subclub for one week, 0 when
	// the week has no data for it.
	PeriodResult(ctx context.Context, entityRef string, weekStart time.Time) (float64, error)
}

type DefaultSettlementUsecase struct {
	settlementRepo domain.SettlementRepository
	metricRepo     domain.MetricRepository
	adjustmentRepo domain.AdjustmentRepository
	feeConfigRepo  domain.FeeConfigRepository
	ledgerRepo     domain.LedgerRepository
	carryRepo      domain.CarryRepository
	orgRepo        domain.OrgRepository
	publisher      *kafka.SettlementPublisher
	metrics        *metrics.SettlementMetrics
	classifier     *settle.LabelClassifier
	logger         *slog.Logger
}

func NewDefaultSettlementUsecase(
	settlementRepo domain.SettlementRepository,
	metricRepo domain.MetricRepository,
	adjustmentRepo domain.AdjustmentRepository,
	feeConfigRepo domain.FeeConfigRepository,
	ledgerRepo domain.LedgerRepository,
	carryRepo domain.CarryRepository,
	orgRepo domain.OrgRepository,
	publisher *kafka.SettlementPublisher,
	settlementMetrics *metrics.SettlementMetrics,
	logger *slog.Logger,
) *DefaultSettlementUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultSettlementUsecase{
		settlementRepo: settlementRepo,
		metricRepo:     metricRepo,
		adjustmentRepo: adjustmentRepo,
		feeConfigRepo:  feeConfigRepo,
		ledgerRepo:     ledgerRepo,
		carryRepo:      carryRepo,
		orgRepo:        orgRepo,
		publisher:      publisher,
		metrics:        settlementMetrics,
		classifier:     settle.NewLabelClassifier(),
		logger:         logger,
	}
}

func (uc *DefaultSettlementUsecase) loadSettlement(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	settlement, err := uc.settlementRepo.GetByID(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("load settlement: %w", err)
	}
	if settlement == nil {
		return nil, domain.ErrSettlementNotFound
	}
	return settlement, nil
}

func (uc *DefaultSettlementUsecase) Compute(ctx context.Context, settlementID string) ([]settle.SubclubResult, error) {
	settlement, err := uc.loadSettlement(ctx, settlementID)
	if err != nil {
		return nil, err
	}
	if !settlement.Editable() {
		return nil, domain.ErrSettlementNotDraft
	}

	players, err := uc.metricRepo.ListPlayerMetrics(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("list player metrics: %w", err)
	}

	// Player results first: agent aggregates read player rows.
	byAgent := make(map[string][]settle.AgentPlayer)
	for _, p := range players {
		rbValue, resultado := settle.PlayerResult(p.Winnings, p.RakeTotal, p.RBRate)
		if rbValue != p.RBValue || resultado != p.Resultado {
			if err := uc.metricRepo.SavePlayerResult(ctx, p.ID, rbValue, resultado); err != nil {
				uc.logger.Error("save player result failed", "metric_id", p.ID, "error", err)
				continue
			}
		}
		key := agentKey(p.AgentID, p.AgentRef)
		byAgent[key] = append(byAgent[key], settle.AgentPlayer{
			Rake:     p.RakeTotal,
			Winnings: p.Winnings,
			RBRate:   p.RBRate,
		})
	}

	agents, err := uc.metricRepo.ListAgentMetrics(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("list agent metrics: %w", err)
	}
	for _, a := range agents {
		group := byAgent[agentKey(a.AgentID, a.AgentRef)]
		totals := settle.AgentResult(group, a.RBRate, a.IsDirect)
		if totals.RBTotal != a.Commission || totals.Resultado != a.Resultado {
			if err := uc.metricRepo.SaveAgentResult(ctx, a.ID, totals.RBTotal, totals.Resultado); err != nil {
				uc.logger.Error("save agent result failed", "metric_id", a.ID, "error", err)
			}
		}
	}

	if uc.metrics != nil {
		uc.metrics.RecordSettlementComputed(settlement.ClubID)
	}
	return uc.Results(ctx, settlementID)
}

// agentKey groups player rows under their agent: resolved entity ID when
// linked, raw label otherwise.
func agentKey(agentID, agentRef string) string {
	if agentID != "" {
		return agentID
	}
	return strings.ToLower(strings.TrimSpace(agentRef))
}

func (uc *DefaultSettlementUsecase) Results(ctx context.Context, settlementID string) ([]settle.SubclubResult, error) {
	settlement, err := uc.loadSettlement(ctx, settlementID)
	if err != nil {
		return nil, err
	}

	agents, err := uc.metricRepo.ListAgentMetrics(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("list agent metrics: %w", err)
	}

	feeRates, err := uc.feeRates(ctx, settlement.ClubID)
	if err != nil {
		return nil, err
	}

	adjustments, err := uc.adjustmentRepo.ListBySettlement(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	adjustmentBySubclub := make(map[string]float64, len(adjustments))
	for _, a := range adjustments {
		adjustmentBySubclub[a.SubclubID] = settle.Round2(a.Total())
	}

	grouped := make(map[string]*settle.SubclubResult)
	for _, a := range agents {
		r, ok := grouped[a.SubclubID]
		if !ok {
			r = &settle.SubclubResult{SubclubID: a.SubclubID}
			grouped[a.SubclubID] = r
		}
		r.Players += a.PlayerCount
		if category := uc.classifier.Classify(a.AgentRef); category == settle.LabelAgent || category == settle.LabelDirect {
			r.Agents++
		}
		r.Winnings += settle.Coerce(a.WinningsTotal)
		r.Rake += settle.Coerce(a.RakeTotal)
		r.Revenue += settle.Coerce(a.RevenueTotal)
		r.RBTotal += settle.Coerce(a.Commission)
		r.Resultado += settle.Coerce(a.Resultado)
	}

	results := make([]settle.SubclubResult, 0, len(grouped))
	for subclubID, r := range grouped {
		r.Winnings = settle.Round2(r.Winnings)
		r.Rake = settle.Round2(r.Rake)
		r.Revenue = settle.Round2(r.Revenue)
		r.RBTotal = settle.Round2(r.RBTotal)
		r.Resultado = settle.Round2(r.Resultado)

		fees := settle.ComputeFees(r.Rake, r.Revenue, feeRates)
		r.TotalFees = fees.TotalFees
		r.TotalFeesSigned = fees.TotalFeesSigned
		r.TotalAdjustments = adjustmentBySubclub[subclubID]
		r.ClubBalance = settle.ClubBalance(r.Resultado, r.TotalFeesSigned, r.TotalAdjustments)

		if subclub, err := uc.orgRepo.GetSubclub(ctx, subclubID); err == nil && subclub != nil {
			r.SubclubName = subclub.Name
		}
		results = append(results, *r)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].SubclubID < results[j].SubclubID })
	return results, nil
}

func (uc *DefaultSettlementUsecase) Agents(ctx context.Context, settlementID string) ([]settlementdto.AgentView, error) {
	if _, err := uc.loadSettlement(ctx, settlementID); err != nil {
		return nil, err
	}

	rows, err := uc.metricRepo.ListAgentMetrics(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("list agent metrics: %w", err)
	}

	views := make([]settlementdto.AgentView, 0, len(rows))
	for _, a := range rows {
		rate := a.RBRate
		if a.IsDirect {
			rate = 0
		}
		views = append(views, settlementdto.AgentView{
			AgentRef:   a.AgentRef,
			AgentID:    a.AgentID,
			SubclubID:  a.SubclubID,
			Players:    a.PlayerCount,
			Winnings:   a.WinningsTotal,
			Rake:       a.RakeTotal,
			Revenue:    a.RevenueTotal,
			RBRate:     rate,
			Commission: a.Commission,
			Resultado:  a.Resultado,
			IsDirect:   a.IsDirect,
		})
	}

	sort.Slice(views, func(i, j int) bool {
		if views[i].SubclubID != views[j].SubclubID {
			return views[i].SubclubID < views[j].SubclubID
		}
		return views[i].AgentRef < views[j].AgentRef
	})
	return views, nil
}

func (uc *DefaultSettlementUsecase) feeRates(ctx context.Context, clubID string) (settle.FeeRates, error) {
	cfg, err := uc.feeConfigRepo.GetByClub(ctx, clubID)
	if errors.Is(err, domain.ErrNotFound) {
		return settle.FeeRates{}, nil
	}
	if err != nil {
		return settle.FeeRates{}, fmt.Errorf("load fee config: %w", err)
	}
	return settle.FeeRates{
		App:        cfg.AppRate,
		League:     cfg.LeagueRate,
		Revenue:    cfg.RevenueRate,
		RevenueApp: cfg.RevenueAppRate,
	}, nil
}

func (uc *DefaultSettlementUsecase) Dashboard(ctx context.Context, weekStart time.Time) (*settlementdto.Dashboard, error) {
	weekStart = domain.NormalizeWeekStart(weekStart)
	settlements, err := uc.settlementRepo.ListByWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}

	var all []settle.SubclubResult
	for _, s := range settlements {
		if s.Status == domain.SettlementVoid {
			continue
		}
		results, err := uc.Results(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, results...)
	}

	return &settlementdto.Dashboard{
		WeekStart: weekStart,
		Totals:    settle.Rollup(all),
		Subclubs:  all,
	}, nil
}

func (uc *DefaultSettlementUsecase) PeriodResult(ctx context.Context, entityRef string, weekStart time.Time) (float64, error) {
	weekStart = domain.NormalizeWeekStart(weekStart)
	settlements, err := uc.settlementRepo.ListByWeek(ctx, weekStart)
	if err != nil {
		return 0, fmt.Errorf("list settlements: %w", err)
	}

	for _, s := range settlements {
		if s.Status == domain.SettlementVoid {
			continue
		}
		results, err := uc.Results(ctx, s.ID)
		if err != nil {
			return 0, err
		}
		for _, r := range results {
			if r.SubclubID == entityRef {
				return r.ClubBalance, nil
			}
		}
	}
	return 0, nil
}

// Finalize moves a DRAFT settlement to FINAL and rolls every subclub's open
// balance into a carry row for the next week. The conditional status flip
// serializes concurrent finalizers; only the winner writes carries. When any
// carry cannot be written the settlement reopens as DRAFT and Finalize
// returns an error so the caller can retry.
func (uc *DefaultSettlementUsecase) Finalize(ctx context.Context, settlementID string) error {
	settlement, err := uc.loadSettlement(ctx, settlementID)
	if err != nil {
		return err
	}
	if !settlement.Editable() {
		return domain.ErrSettlementNotDraft
	}

	results, err := uc.Results(ctx, settlementID)
	if err != nil {
		return err
	}

	if err := uc.settlementRepo.UpdateStatus(ctx, settlementID, domain.SettlementDraft, domain.SettlementFinal); err != nil {
		return fmt.Errorf("finalize settlement: %w", err)
	}

	nextWeek := settlement.WeekStart.AddDate(0, 0, 7)
	carryFailures := 0
	for _, r := range results {
		entries, err := uc.ledgerRepo.ListByEntityWeek(ctx, r.SubclubID, settlement.WeekStart)
		if err != nil {
			uc.logger.Error("list ledger entries failed", "subclub", r.SubclubID, "error", err)
			carryFailures++
			continue
		}
		flow := settle.LedgerNet(entries)

		prior := 0.0
		if carry, err := uc.carryRepo.Get(ctx, r.SubclubID, settlement.WeekStart); err == nil && carry != nil {
			prior = carry.Amount
		}

		// A retried finalize must not duplicate carries an earlier attempt
		// already wrote.
		if existing, err := uc.carryRepo.Get(ctx, r.SubclubID, nextWeek); err == nil && existing != nil {
			uc.reconcileEntries(ctx, entries)
			continue
		}

		balance := settle.OpenBalance(prior, r.ClubBalance, flow.Net)
		carry := &domain.CarryBalance{
			ID:           uuid.NewString(),
			EntityRef:    r.SubclubID,
			WeekStart:    nextWeek,
			Amount:       balance,
			SettlementID: settlementID,
			CreatedAt:    time.Now(),
		}
		if err := uc.carryRepo.Create(ctx, carry); err != nil {
			uc.logger.Error("write carry balance failed", "subclub", r.SubclubID, "error", err)
			carryFailures++
			continue
		}

		uc.reconcileEntries(ctx, entries)
	}

	if carryFailures > 0 {
		// A week finalized without its carries would start the next week from
		// a zero balance, so it reopens for a retry instead.
		if err := uc.settlementRepo.UpdateStatus(ctx, settlementID, domain.SettlementFinal, domain.SettlementDraft); err != nil {
			uc.logger.Error("reopen settlement after carry failures failed",
				"settlement_id", settlementID, "error", err)
		}
		return fmt.Errorf("finalize settlement: %d of %d carry balances not written", carryFailures, len(results))
	}

	if uc.metrics != nil {
		uc.metrics.RecordSettlementFinalized(settlement.ClubID)
	}
	if uc.publisher != nil {
		event := kafka.SettlementEvent{
			SettlementID: settlementID,
			ClubID:       settlement.ClubID,
			WeekStart:    settlement.WeekStart,
			Status:       string(domain.SettlementFinal),
			Subclubs:     len(results),
		}
		if err := uc.publisher.PublishSettlementFinalized(event); err != nil {
			uc.logger.Error("publish settlement finalized failed", "error", err)
		}
	}

	uc.logger.Info("settlement finalized",
		"settlement_id", settlementID, "subclubs", len(results), "next_week", nextWeek)
	return nil
}

func (uc *DefaultSettlementUsecase) reconcileEntries(ctx context.Context, entries []*domain.LedgerEntry) {
	for _, e := range entries {
		if e.Reconciled {
			continue
		}
		if err := uc.ledgerRepo.MarkReconciled(ctx, e.ID, true); err != nil {
			uc.logger.Error("mark entry reconciled failed", "entry_id", e.ID, "error", err)
		}
	}
}

func (uc *DefaultSettlementUsecase) Void(ctx context.Context, settlementID string) error {
	settlement, err := uc.loadSettlement(ctx, settlementID)
	if err != nil {
		return err
	}
	if !settlement.Editable() {
		return domain.ErrSettlementNotDraft
	}
	return uc.settlementRepo.UpdateStatus(ctx, settlementID, domain.SettlementDraft, domain.SettlementVoid)
}

func (uc *DefaultSettlementUsecase) SetAdjustments(ctx context.Context, settlementID string, input *settlementdto.AdjustmentsInput) error {
	settlement, err := uc.loadSettlement(ctx, settlementID)
	if err != nil {
		return err
	}
	if !settlement.Editable() {
		return domain.ErrSettlementNotDraft
	}

	existing, err := uc.adjustmentRepo.GetBySubclub(ctx, settlementID, input.SubclubID)
	if err != nil {
		return fmt.Errorf("load adjustments: %w", err)
	}
	id := uuid.NewString()
	if existing != nil {
		id = existing.ID
	}

	return uc.adjustmentRepo.Upsert(ctx, &domain.SubclubAdjustments{
		ID:           id,
		SettlementID: settlementID,
		SubclubID:    input.SubclubID,
		Overlay:      settle.Coerce(input.Overlay),
		Purchases:    settle.Coerce(input.Purchases),
		Security:     settle.Coerce(input.Security),
		Other:        settle.Coerce(input.Other),
		Notes:        input.Notes,
	})
}

func (uc *DefaultSettlementUsecase) MarkReimported(ctx context.Context, settlementID string) error {
	settlement, err := uc.loadSettlement(ctx, settlementID)
	if err != nil {
		return err
	}
	if !settlement.Editable() {
		return domain.ErrSettlementNotDraft
	}
	return uc.settlementRepo.BumpVersion(ctx, settlementID)
}
