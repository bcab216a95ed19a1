package ratesync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/usecase/settle"
)

// ErrPhaseExhausted is returned when every row in a phase failed, which
// points at the storage backend rather than the rows. Retryable.
var ErrPhaseExhausted = errors.New("all rows in phase failed")

// Propagator pushes the externally stored rate tables into the metric rows
// of a DRAFT settlement: resolves agent labels to entities, links rows,
// applies changed agent rates, and cascades agent rates down to players
// without an individually set rate. Rows already matching their target rate
// are left untouched, so a second run with no external changes writes
// nothing.
type Propagator struct {
	settlements domain.SettlementRepository
	metrics     domain.MetricRepository
	rates       domain.RateRepository
	org         domain.OrgRepository
	classifier  *settle.LabelClassifier
	workers     int
	logger      *slog.Logger
}

func NewPropagator(
	settlements domain.SettlementRepository,
	metrics domain.MetricRepository,
	rates domain.RateRepository,
	org domain.OrgRepository,
	workers int,
	logger *slog.Logger,
) *Propagator {
	if workers < 1 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Propagator{
		settlements: settlements,
		metrics:     metrics,
		rates:       rates,
		org:         org,
		classifier:  settle.NewLabelClassifier(),
		workers:     workers,
		logger:      logger,
	}
}

// Run executes the five phases in strict order. Each phase re-derives its
// working set from stored state, so an interrupted run resumes correctly on
// the next invocation. Non-DRAFT settlements short-circuit with a zero
// report and no error.
func (p *Propagator) Run(ctx context.Context, settlementID string) (*Report, error) {
	settlement, err := p.settlements.GetByID(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("load settlement: %w", err)
	}
	if settlement == nil {
		return nil, domain.ErrSettlementNotFound
	}

	report := &Report{}
	if !settlement.Editable() {
		p.logger.Info("settlement not editable, skipping propagation",
			"settlement_id", settlementID, "status", settlement.Status)
		return report, nil
	}

	resolved, err := p.resolveAgents(ctx, settlement, report)
	if err != nil {
		return report, err
	}

	if err := p.linkRows(ctx, settlement, resolved, report); err != nil {
		return report, err
	}

	if err := p.applyAgentRates(ctx, settlement, report); err != nil {
		return report, err
	}

	if err := p.applyPlayerRates(ctx, settlement, report); err != nil {
		return report, err
	}

	if err := p.recomputeDirectAgents(ctx, settlement, report); err != nil {
		return report, err
	}

	p.logger.Info("rate propagation finished",
		"settlement_id", settlementID,
		"agents_created", report.AgentsCreated,
		"rows_linked", report.RowsLinked,
		"agent_rates_updated", report.AgentRatesUpdated,
		"player_rates_updated", report.PlayerRatesUpdated,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return report, nil
}

// resolveAgents is phase 1: every agent label on a metric row is resolved to
// an organization entity. Missing agents are created (first seen wins on a
// name collision) and agents whose subclub assignment changed since the last
// import are re-parented. House and no-agent labels stay unresolved and are
// bucketed separately downstream, so totals remain conserved.
func (p *Propagator) resolveAgents(ctx context.Context, settlement *domain.Settlement, report *Report) (map[string]*domain.Agent, error) {
	rows, err := p.metrics.ListAgentMetrics(ctx, settlement.ID)
	if err != nil {
		return nil, fmt.Errorf("list agent metrics: %w", err)
	}

	resolved := make(map[string]*domain.Agent)
	attempted, failed := 0, 0

	for _, row := range rows {
		name := strings.TrimSpace(row.AgentRef)
		category := p.classifier.Classify(name)
		if category == settle.LabelNoAgent || category == settle.LabelHouse {
			continue
		}
		if _, done := resolved[name]; done {
			continue
		}
		attempted++

		agent, err := p.org.GetAgentByName(ctx, settlement.ClubID, name)
		switch {
		case err == nil:
			if row.SubclubID != "" && agent.SubclubID != row.SubclubID {
				if err := p.org.UpdateAgentSubclub(ctx, agent.ID, row.SubclubID); err != nil {
					p.logger.Error("reparent agent failed", "agent", name, "error", err)
					failed++
					continue
				}
				agent.SubclubID = row.SubclubID
				report.AgentsReparented++
			}
		case errors.Is(err, domain.ErrNotFound):
			agent = &domain.Agent{ID: uuid.NewString(), SubclubID: row.SubclubID, Name: name}
			if err := p.org.CreateAgent(ctx, agent); err != nil {
				// Lost a create race: someone inserted the name first.
				agent, err = p.org.GetAgentByName(ctx, settlement.ClubID, name)
				if err != nil {
					p.logger.Error("create agent failed", "agent", name, "error", err)
					failed++
					continue
				}
			} else {
				report.AgentsCreated++
			}
		default:
			p.logger.Error("resolve agent failed", "agent", name, "error", err)
			failed++
			continue
		}

		resolved[name] = agent
		report.Succeeded++
	}

	report.Failed += failed
	if attempted > 0 && failed == attempted {
		return nil, fmt.Errorf("resolve agents: %w", ErrPhaseExhausted)
	}
	return resolved, nil
}

// linkRows is phase 2: metric rows that carry only a raw label get their
// entity identifiers filled in. Unknown players are created under their
// resolved agent.
func (p *Propagator) linkRows(ctx context.Context, settlement *domain.Settlement, resolved map[string]*domain.Agent, report *Report) error {
	agentRows, err := p.metrics.ListAgentMetrics(ctx, settlement.ID)
	if err != nil {
		return fmt.Errorf("list agent metrics: %w", err)
	}

	var tasks []task
	for _, row := range agentRows {
		if row.AgentID != "" {
			continue
		}
		agent, ok := resolved[strings.TrimSpace(row.AgentRef)]
		if !ok {
			continue
		}
		metricID := row.ID
		agentID := agent.ID
		tasks = append(tasks, func(ctx context.Context) error {
			return p.metrics.LinkAgentEntity(ctx, metricID, agentID)
		})
	}

	playerRows, err := p.metrics.ListPlayerMetrics(ctx, settlement.ID)
	if err != nil {
		return fmt.Errorf("list player metrics: %w", err)
	}

	for _, row := range playerRows {
		var agentID string
		if agent, ok := resolved[strings.TrimSpace(row.AgentRef)]; ok {
			agentID = agent.ID
		}
		// Relink only when it adds information; rows in the no-agent bucket
		// stay linked to the player alone.
		if row.PlayerID != "" && row.AgentID == agentID {
			continue
		}
		metricID := row.ID
		externalID := row.ExternalPlayerID
		knownPlayerID := row.PlayerID
		tasks = append(tasks, func(ctx context.Context) error {
			playerID := knownPlayerID
			if playerID == "" {
				player, err := p.org.GetPlayerByExternalID(ctx, externalID)
				switch {
				case err == nil:
					playerID = player.ID
				case errors.Is(err, domain.ErrNotFound):
					player = &domain.Player{ID: uuid.NewString(), AgentID: agentID, ExternalID: externalID}
					if err := p.org.CreatePlayer(ctx, player); err != nil {
						return fmt.Errorf("create player %s: %w", externalID, err)
					}
					playerID = player.ID
				default:
					return fmt.Errorf("lookup player %s: %w", externalID, err)
				}
			}
			return p.metrics.LinkPlayerEntity(ctx, metricID, playerID, agentID)
		})
	}

	result := runBatch(ctx, p.workers, "link", p.logger, tasks)
	report.RowsLinked += result.Succeeded
	report.merge(result)
	if len(tasks) > 0 && result.Failed == len(tasks) {
		return fmt.Errorf("link rows: %w", ErrPhaseExhausted)
	}
	return nil
}

// applyAgentRates is phase 3: agent metric rows whose stored rate differs
// from the current rate table are updated and their commission recomputed.
// Direct-mode agents are skipped; their rakeback is governed by per-player
// rates in phase 4.
func (p *Propagator) applyAgentRates(ctx context.Context, settlement *domain.Settlement, report *Report) error {
	rows, err := p.metrics.ListAgentMetrics(ctx, settlement.ID)
	if err != nil {
		return fmt.Errorf("list agent metrics: %w", err)
	}
	current, err := p.rates.CurrentBulk(ctx, domain.RateScopeAgent)
	if err != nil {
		return fmt.Errorf("load agent rates: %w", err)
	}

	var updated, skipped int64
	var tasks []task
	for _, row := range rows {
		if row.AgentID == "" || row.IsDirect {
			continue
		}
		rate, ok := current[row.AgentID]
		if !ok {
			continue
		}
		if rate == row.RBRate {
			skipped++
			continue
		}

		row := row
		tasks = append(tasks, func(ctx context.Context) error {
			commission := settle.Round2(row.RakeTotal * rate / 100)
			resultado := settle.Round2(row.WinningsTotal + commission)
			applied, err := p.metrics.UpdateAgentRate(ctx, row.ID, row.RBRate, rate, commission, resultado)
			if err != nil {
				return fmt.Errorf("agent metric %s: %w", row.ID, err)
			}
			if !applied {
				// Someone else already moved the row to the target rate.
				atomic.AddInt64(&skipped, 1)
				return nil
			}
			atomic.AddInt64(&updated, 1)
			return nil
		})
	}

	result := runBatch(ctx, p.workers, "agent-rates", p.logger, tasks)
	report.AgentRatesUpdated += int(updated)
	report.Skipped += int(skipped)
	report.merge(result)
	if len(tasks) > 0 && result.Failed == len(tasks) {
		return fmt.Errorf("apply agent rates: %w", ErrPhaseExhausted)
	}
	return nil
}

// applyPlayerRates is phase 4: a player's own current rate wins; players
// without one inherit their agent's current rate when it is positive.
func (p *Propagator) applyPlayerRates(ctx context.Context, settlement *domain.Settlement, report *Report) error {
	rows, err := p.metrics.ListPlayerMetrics(ctx, settlement.ID)
	if err != nil {
		return fmt.Errorf("list player metrics: %w", err)
	}
	playerRates, err := p.rates.CurrentBulk(ctx, domain.RateScopePlayer)
	if err != nil {
		return fmt.Errorf("load player rates: %w", err)
	}
	agentRates, err := p.rates.CurrentBulk(ctx, domain.RateScopeAgent)
	if err != nil {
		return fmt.Errorf("load agent rates: %w", err)
	}

	var updated, skipped int64
	var tasks []task
	for _, row := range rows {
		target, has := 0.0, false
		if row.PlayerID != "" {
			target, has = playerRates[row.PlayerID]
		}
		if !has && row.AgentID != "" {
			if rate, ok := agentRates[row.AgentID]; ok && rate > 0 {
				target, has = rate, true
			}
		}
		if !has {
			continue
		}
		if target == row.RBRate {
			skipped++
			continue
		}

		row, target := row, target
		tasks = append(tasks, func(ctx context.Context) error {
			rbValue, resultado := settle.PlayerResult(row.Winnings, row.RakeTotal, target)
			applied, err := p.metrics.UpdatePlayerRate(ctx, row.ID, row.RBRate, target, rbValue, resultado)
			if err != nil {
				return fmt.Errorf("player metric %s: %w", row.ID, err)
			}
			if !applied {
				atomic.AddInt64(&skipped, 1)
				return nil
			}
			atomic.AddInt64(&updated, 1)
			return nil
		})
	}

	result := runBatch(ctx, p.workers, "player-rates", p.logger, tasks)
	report.PlayerRatesUpdated += int(updated)
	report.Skipped += int(skipped)
	report.merge(result)
	if len(tasks) > 0 && result.Failed == len(tasks) {
		return fmt.Errorf("apply player rates: %w", ErrPhaseExhausted)
	}
	return nil
}

// recomputeDirectAgents is phase 5: a direct-mode agent's commission is the
// sum of its players' own rakeback, so any player rewrite in phase 4
// invalidates the stored aggregate. Rows whose aggregate still matches are
// left untouched.
func (p *Propagator) recomputeDirectAgents(ctx context.Context, settlement *domain.Settlement, report *Report) error {
	agentRows, err := p.metrics.ListAgentMetrics(ctx, settlement.ID)
	if err != nil {
		return fmt.Errorf("list agent metrics: %w", err)
	}

	var direct []*domain.AgentMetric
	for _, row := range agentRows {
		if row.IsDirect {
			direct = append(direct, row)
		}
	}
	if len(direct) == 0 {
		return nil
	}

	playerRows, err := p.metrics.ListPlayerMetrics(ctx, settlement.ID)
	if err != nil {
		return fmt.Errorf("list player metrics: %w", err)
	}
	grouped := make(map[string][]settle.AgentPlayer)
	for _, row := range playerRows {
		key := metricAgentKey(row.AgentID, row.AgentRef)
		grouped[key] = append(grouped[key], settle.AgentPlayer{
			Rake:     row.RakeTotal,
			Winnings: row.Winnings,
			RBRate:   row.RBRate,
		})
	}

	var tasks []task
	for _, row := range direct {
		totals := settle.AgentResult(grouped[metricAgentKey(row.AgentID, row.AgentRef)], row.RBRate, true)
		if totals.RBTotal == row.Commission && totals.Resultado == row.Resultado {
			continue
		}
		metricID := row.ID
		tasks = append(tasks, func(ctx context.Context) error {
			if err := p.metrics.SaveAgentResult(ctx, metricID, totals.RBTotal, totals.Resultado); err != nil {
				return fmt.Errorf("agent metric %s: %w", metricID, err)
			}
			return nil
		})
	}

	result := runBatch(ctx, p.workers, "direct-recompute", p.logger, tasks)
	report.merge(result)
	if len(tasks) > 0 && result.Failed == len(tasks) {
		return fmt.Errorf("recompute direct agents: %w", ErrPhaseExhausted)
	}
	return nil
}

// metricAgentKey groups player rows under their agent: resolved entity ID
// when linked, raw label otherwise.
func metricAgentKey(agentID, agentRef string) string {
	if agentID != "" {
		return agentID
	}
	return strings.ToLower(strings.TrimSpace(agentRef))
}
