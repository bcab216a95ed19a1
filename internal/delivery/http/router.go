package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pokerliga/settlement-service/internal/usecase"
)

// NewRouter creates the Chi router with all API routes mounted.
func NewRouter(
	settlementUc usecase.SettlementUsecase,
	ledgerUc usecase.LedgerUsecase,
	rateUc usecase.RateUsecase,
	rateSyncUc usecase.RateSyncUsecase,
) http.Handler {
	h := &Handlers{
		settlementUc: settlementUc,
		ledgerUc:     ledgerUc,
		rateUc:       rateUc,
		rateSyncUc:   rateSyncUc,
	}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Settlements.
		r.Post("/settlements/{id}/compute", h.ComputeSettlement)
		r.Get("/settlements/{id}/results", h.GetSettlementResults)
		r.Get("/settlements/{id}/agents", h.GetSettlementAgents)
		r.Post("/settlements/{id}/finalize", h.FinalizeSettlement)
		r.Post("/settlements/{id}/void", h.VoidSettlement)
		r.Post("/settlements/{id}/reimported", h.MarkSettlementReimported)
		r.Put("/settlements/{id}/adjustments", h.SetAdjustments)
		r.Post("/settlements/{id}/sync-rates", h.SyncRates)

		// Dashboard.
		r.Get("/dashboard", h.GetDashboard)

		// Ledger.
		r.Post("/ledger/entries", h.RecordLedgerEntry)
		r.Delete("/ledger/entries/{id}", h.DeleteLedgerEntry)
		r.Post("/ledger/entries/{id}/reconciled", h.MarkLedgerEntryReconciled)
		r.Get("/ledger/reconciliation", h.GetReconciliation)

		// Rates.
		r.Put("/rates", h.SetRate)
		r.Get("/rates/current", h.GetCurrentRate)
		r.Get("/rates/history", h.GetRateHistory)
	})

	return r
}
