package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/usecase"
	ledgerdto "github.com/pokerliga/settlement-service/internal/usecase/dto/ledger"
	ratedto "github.com/pokerliga/settlement-service/internal/usecase/dto/rate"
	settlementdto "github.com/pokerliga/settlement-service/internal/usecase/dto/settlement"
	"github.com/pokerliga/settlement-service/internal/usecase/ratesync"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	settlementUc usecase.SettlementUsecase
	ledgerUc     usecase.LedgerUsecase
	rateUc       usecase.RateUsecase
	rateSyncUc   usecase.RateSyncUsecase
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSettlementNotFound),
		errors.Is(err, domain.ErrLedgerEntryNotFound),
		errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrSettlementNotDraft),
		errors.Is(err, domain.ErrStatusConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrRateOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ratesync.ErrPhaseExhausted):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func parseWeek(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}

// --- Settlements ---

func (h *Handlers) ComputeSettlement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	results, err := h.settlementUc.Compute(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"subclubs": results})
}

func (h *Handlers) GetSettlementResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	results, err := h.settlementUc.Results(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"subclubs": results})
}

func (h *Handlers) GetSettlementAgents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	agents, err := h.settlementUc.Agents(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"agents": agents})
}

func (h *Handlers) FinalizeSettlement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.settlementUc.Finalize(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "FINAL"})
}

func (h *Handlers) VoidSettlement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.settlementUc.Void(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "VOID"})
}

func (h *Handlers) MarkSettlementReimported(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.settlementUc.MarkReimported(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) SetAdjustments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input settlementdto.AdjustmentsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if input.SubclubID == "" {
		writeError(w, http.StatusBadRequest, "subclub_id is required")
		return
	}
	if err := h.settlementUc.SetAdjustments(r.Context(), id, &input); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) SyncRates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, err := h.rateSyncUc.Sync(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// --- Dashboard ---

func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	week, ok := parseWeek(r.URL.Query().Get("week"))
	if !ok {
		writeError(w, http.StatusBadRequest, "week is required (YYYY-MM-DD)")
		return
	}
	dashboard, err := h.settlementUc.Dashboard(r.Context(), week)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

// --- Ledger ---

func (h *Handlers) RecordLedgerEntry(w http.ResponseWriter, r *http.Request) {
	var input ledgerdto.RecordEntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	entry, err := h.ledgerUc.RecordEntry(r.Context(), &input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ledgerdto.ToEntryView(entry))
}

func (h *Handlers) DeleteLedgerEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ledgerUc.DeleteEntry(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handlers) MarkLedgerEntryReconciled(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input struct {
		Reconciled bool `json:"reconciled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if err := h.ledgerUc.MarkReconciled(r.Context(), id, input.Reconciled); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetReconciliation serves one entity's week when entity is given, or every
// entity with ledger or carry activity in the week when it is omitted.
func (h *Handlers) GetReconciliation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	week, ok := parseWeek(q.Get("week"))
	if !ok {
		writeError(w, http.StatusBadRequest, "week is required (YYYY-MM-DD)")
		return
	}

	if entityRef := q.Get("entity"); entityRef != "" {
		reconciliation, err := h.ledgerUc.Reconcile(r.Context(), entityRef, week)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reconciliation)
		return
	}

	reconciliations, err := h.ledgerUc.ReconcileWeek(r.Context(), week)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entities": reconciliations})
}

// --- Rates ---

func (h *Handlers) SetRate(w http.ResponseWriter, r *http.Request) {
	var input ratedto.SetRateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if err := h.rateUc.SetRate(r.Context(), &input); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func rateQuery(r *http.Request) (domain.RateScope, string, bool) {
	q := r.URL.Query()
	scope := domain.RateScope(q.Get("scope"))
	entityID := q.Get("entity_id")
	if scope != domain.RateScopeAgent && scope != domain.RateScopePlayer {
		return "", "", false
	}
	return scope, entityID, entityID != ""
}

func (h *Handlers) GetCurrentRate(w http.ResponseWriter, r *http.Request) {
	scope, entityID, ok := rateQuery(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "scope (AGENT|PLAYER) and entity_id are required")
		return
	}
	record, err := h.rateUc.CurrentRate(r.Context(), scope, entityID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "no active rate")
		return
	}
	writeJSON(w, http.StatusOK, ratedto.ToRateView(record))
}

func (h *Handlers) GetRateHistory(w http.ResponseWriter, r *http.Request) {
	scope, entityID, ok := rateQuery(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "scope (AGENT|PLAYER) and entity_id are required")
		return
	}
	records, err := h.rateUc.History(r.Context(), scope, entityID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	views := make([]*ratedto.RateView, len(records))
	for i, record := range records {
		views[i] = ratedto.ToRateView(record)
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": views})
}
