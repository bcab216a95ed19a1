package usecase

import (
	"context"
	"time"

	"github.com/pokerliga/settlement-service/internal/domain"
)

// memStore backs every repository the orchestration usecases touch. Tests
// run sequentially, so no locking. Ledger and carry access goes through the
// wrapper types below because their method names overlap the settlement
// repository's.
type memStore struct {
	settlements   map[string]*domain.Settlement
	playerMetrics map[string]*domain.PlayerMetric
	agentMetrics  map[string]*domain.AgentMetric
	adjustments   map[string]*domain.SubclubAdjustments
	feeConfigs    map[string]*domain.FeeRateConfig
	ledger        map[string]*domain.LedgerEntry
	carries       map[string]*domain.CarryBalance
	subclubs      map[string]*domain.Subclub

	failCarryCreate error
}

func newMemStore() *memStore {
	return &memStore{
		settlements:   map[string]*domain.Settlement{},
		playerMetrics: map[string]*domain.PlayerMetric{},
		agentMetrics:  map[string]*domain.AgentMetric{},
		adjustments:   map[string]*domain.SubclubAdjustments{},
		feeConfigs:    map[string]*domain.FeeRateConfig{},
		ledger:        map[string]*domain.LedgerEntry{},
		carries:       map[string]*domain.CarryBalance{},
		subclubs:      map[string]*domain.Subclub{},
	}
}

func (s *memStore) ledgerRepo() memLedgerRepo { return memLedgerRepo{s} }
func (s *memStore) carryRepo() memCarryRepo   { return memCarryRepo{s} }

func adjKey(settlementID, subclubID string) string { return settlementID + "|" + subclubID }

func carryKey(entityRef string, weekStart time.Time) string {
	return entityRef + "|" + weekStart.Format("2006-01-02")
}

// SettlementRepository

func (s *memStore) GetByID(_ context.Context, id string) (*domain.Settlement, error) {
	stl, ok := s.settlements[id]
	if !ok {
		return nil, nil
	}
	copied := *stl
	return &copied, nil
}

func (s *memStore) GetByClubWeek(_ context.Context, clubID string, weekStart time.Time) (*domain.Settlement, error) {
	for _, stl := range s.settlements {
		if stl.ClubID == clubID && stl.WeekStart.Equal(weekStart) {
			copied := *stl
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) ListByWeek(_ context.Context, weekStart time.Time) ([]*domain.Settlement, error) {
	var out []*domain.Settlement
	for _, stl := range s.settlements {
		if stl.WeekStart.Equal(weekStart) {
			copied := *stl
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memStore) Create(_ context.Context, settlement *domain.Settlement) error {
	copied := *settlement
	s.settlements[settlement.ID] = &copied
	return nil
}

func (s *memStore) UpdateStatus(_ context.Context, id string, from, to domain.SettlementStatus) error {
	stl, ok := s.settlements[id]
	if !ok || stl.Status != from {
		return domain.ErrStatusConflict
	}
	stl.Status = to
	return nil
}

func (s *memStore) BumpVersion(_ context.Context, id string) error {
	if stl, ok := s.settlements[id]; ok {
		stl.Version++
	}
	return nil
}

// MetricRepository

func (s *memStore) ListPlayerMetrics(_ context.Context, settlementID string) ([]*domain.PlayerMetric, error) {
	var out []*domain.PlayerMetric
	for _, m := range s.playerMetrics {
		if m.SettlementID == settlementID {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memStore) ListAgentMetrics(_ context.Context, settlementID string) ([]*domain.AgentMetric, error) {
	var out []*domain.AgentMetric
	for _, m := range s.agentMetrics {
		if m.SettlementID == settlementID {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memStore) SavePlayerResult(_ context.Context, metricID string, rbValue, resultado float64) error {
	m := s.playerMetrics[metricID]
	m.RBValue, m.Resultado = rbValue, resultado
	return nil
}

func (s *memStore) SaveAgentResult(_ context.Context, metricID string, commission, resultado float64) error {
	m := s.agentMetrics[metricID]
	m.Commission, m.Resultado = commission, resultado
	return nil
}

func (s *memStore) UpdatePlayerRate(_ context.Context, metricID string, expectedRate, rate, rbValue, resultado float64) (bool, error) {
	m, ok := s.playerMetrics[metricID]
	if !ok || m.RBRate != expectedRate {
		return false, nil
	}
	m.RBRate, m.RBValue, m.Resultado = rate, rbValue, resultado
	return true, nil
}

func (s *memStore) UpdateAgentRate(_ context.Context, metricID string, expectedRate, rate, commission, resultado float64) (bool, error) {
	m, ok := s.agentMetrics[metricID]
	if !ok || m.RBRate != expectedRate {
		return false, nil
	}
	m.RBRate, m.Commission, m.Resultado = rate, commission, resultado
	return true, nil
}

func (s *memStore) LinkPlayerEntity(_ context.Context, metricID, playerID, agentID string) error {
	m := s.playerMetrics[metricID]
	m.PlayerID, m.AgentID = playerID, agentID
	return nil
}

func (s *memStore) LinkAgentEntity(_ context.Context, metricID, agentID string) error {
	s.agentMetrics[metricID].AgentID = agentID
	return nil
}

// AdjustmentRepository

func (s *memStore) ListBySettlement(_ context.Context, settlementID string) ([]*domain.SubclubAdjustments, error) {
	var out []*domain.SubclubAdjustments
	for _, a := range s.adjustments {
		if a.SettlementID == settlementID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memStore) GetBySubclub(_ context.Context, settlementID, subclubID string) (*domain.SubclubAdjustments, error) {
	a, ok := s.adjustments[adjKey(settlementID, subclubID)]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (s *memStore) Upsert(_ context.Context, adjustments *domain.SubclubAdjustments) error {
	copied := *adjustments
	s.adjustments[adjKey(adjustments.SettlementID, adjustments.SubclubID)] = &copied
	return nil
}

// FeeConfigRepository

func (s *memStore) GetByClub(_ context.Context, clubID string) (*domain.FeeRateConfig, error) {
	cfg, ok := s.feeConfigs[clubID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *cfg
	return &copied, nil
}

// OrgRepository

func (s *memStore) GetSubclub(_ context.Context, id string) (*domain.Subclub, error) {
	sc, ok := s.subclubs[id]
	if !ok {
		return nil, nil
	}
	copied := *sc
	return &copied, nil
}

func (s *memStore) ListSubclubs(_ context.Context, clubID string) ([]*domain.Subclub, error) {
	var out []*domain.Subclub
	for _, sc := range s.subclubs {
		if sc.ClubID == clubID {
			copied := *sc
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memStore) GetAgentByName(context.Context, string, string) (*domain.Agent, error) {
	return nil, domain.ErrNotFound
}

func (s *memStore) CreateAgent(context.Context, *domain.Agent) error { return nil }

func (s *memStore) UpdateAgentSubclub(context.Context, string, string) error { return nil }

func (s *memStore) GetPlayerByExternalID(context.Context, string) (*domain.Player, error) {
	return nil, domain.ErrNotFound
}

func (s *memStore) CreatePlayer(context.Context, *domain.Player) error { return nil }

// memLedgerRepo implements domain.LedgerRepository over the shared store.
type memLedgerRepo struct{ store *memStore }

func (r memLedgerRepo) GetByID(_ context.Context, id string) (*domain.LedgerEntry, error) {
	e, ok := r.store.ledger[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r memLedgerRepo) ListByEntityWeek(_ context.Context, entityRef string, weekStart time.Time) ([]*domain.LedgerEntry, error) {
	var out []*domain.LedgerEntry
	for _, e := range r.store.ledger {
		if e.EntityRef == entityRef && e.WeekStart.Equal(weekStart) {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r memLedgerRepo) ListByWeek(_ context.Context, weekStart time.Time) ([]*domain.LedgerEntry, error) {
	var out []*domain.LedgerEntry
	for _, e := range r.store.ledger {
		if e.WeekStart.Equal(weekStart) {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r memLedgerRepo) Create(_ context.Context, entry *domain.LedgerEntry) error {
	copied := *entry
	r.store.ledger[entry.ID] = &copied
	return nil
}

func (r memLedgerRepo) Delete(_ context.Context, id string) error {
	delete(r.store.ledger, id)
	return nil
}

func (r memLedgerRepo) MarkReconciled(_ context.Context, id string, reconciled bool) error {
	if e, ok := r.store.ledger[id]; ok {
		e.Reconciled = reconciled
	}
	return nil
}

// memCarryRepo implements domain.CarryRepository over the shared store.
type memCarryRepo struct{ store *memStore }

func (r memCarryRepo) Get(_ context.Context, entityRef string, weekStart time.Time) (*domain.CarryBalance, error) {
	c, ok := r.store.carries[carryKey(entityRef, weekStart)]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r memCarryRepo) ListByWeek(_ context.Context, weekStart time.Time) ([]*domain.CarryBalance, error) {
	var out []*domain.CarryBalance
	for _, c := range r.store.carries {
		if c.WeekStart.Equal(weekStart) {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r memCarryRepo) Create(_ context.Context, balance *domain.CarryBalance) error {
	if r.store.failCarryCreate != nil {
		return r.store.failCarryCreate
	}
	copied := *balance
	r.store.carries[carryKey(balance.EntityRef, balance.WeekStart)] = &copied
	return nil
}
