package setup

import (
	"github.com/pokerliga/settlement-service/internal/usecase"
	"github.com/pokerliga/settlement-service/internal/usecase/ratesync"
)

type UseCases struct {
	SettlementUsecase usecase.SettlementUsecase
	LedgerUsecase     usecase.LedgerUsecase
	RateUsecase       usecase.RateUsecase
	RateSyncUsecase   usecase.RateSyncUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	settlementUsecase := usecase.NewDefaultSettlementUsecase(
		deps.Repositories.SettlementRepo,
		deps.Repositories.MetricRepo,
		deps.Repositories.AdjustmentRepo,
		deps.Repositories.FeeConfigRepo,
		deps.Repositories.LedgerRepo,
		deps.Repositories.CarryRepo,
		deps.Repositories.OrgRepo,
		deps.Publisher,
		deps.Metrics,
		deps.Logger,
	)

	ledgerUsecase := usecase.NewDefaultLedgerUsecase(
		deps.Repositories.LedgerRepo,
		deps.Repositories.SettlementRepo,
		deps.Repositories.CarryRepo,
		deps.Repositories.OrgRepo,
		settlementUsecase,
		deps.Metrics,
		deps.Logger,
	)

	rateUsecase := usecase.NewDefaultRateUsecase(deps.Repositories.RateRepo)

	propagator := ratesync.NewPropagator(
		deps.Repositories.SettlementRepo,
		deps.Repositories.MetricRepo,
		deps.Repositories.RateRepo,
		deps.Repositories.OrgRepo,
		deps.Config.RateSync.Workers,
		deps.Logger,
	)
	rateSyncUsecase := usecase.NewDefaultRateSyncUsecase(
		propagator,
		deps.RunLogger,
		deps.Publisher,
		deps.Metrics,
		deps.Logger,
	)

	return &UseCases{
		SettlementUsecase: settlementUsecase,
		LedgerUsecase:     ledgerUsecase,
		RateUsecase:       rateUsecase,
		RateSyncUsecase:   rateSyncUsecase,
	}
}
