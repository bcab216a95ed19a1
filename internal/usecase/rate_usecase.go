package usecase

import (
	"context"
	"fmt"

	"github.com/pokerliga/settlement-service/internal/domain"
	ratedto "github.com/pokerliga/settlement-service/internal/usecase/dto/rate"
)

type RateUsecase interface {
	SetRate(ctx context.Context, input *ratedto.SetRateInput) error
	CurrentRate(ctx context.Context, scope domain.RateScope, entityID string) (*domain.RateRecord, error)
	History(ctx context.Context, scope domain.RateScope, entityID string) ([]*domain.RateRecord, error)
}

type DefaultRateUsecase struct {
	rateRepo domain.RateRepository
}

func NewDefaultRateUsecase(rateRepo domain.RateRepository) *DefaultRateUsecase {
	return &DefaultRateUsecase{rateRepo: rateRepo}
}

// SetRate opens a new current interval for the entity. The engines accept
// out-of-range rates without clamping, so the range check lives here at the
// mutation boundary.
func (uc *DefaultRateUsecase) SetRate(ctx context.Context, input *ratedto.SetRateInput) error {
	if input.Rate < 0 || input.Rate > 100 {
		return domain.ErrRateOutOfRange
	}
	scope := domain.RateScope(input.Scope)
	if scope != domain.RateScopeAgent && scope != domain.RateScopePlayer {
		return fmt.Errorf("unknown rate scope %q", input.Scope)
	}
	return uc.rateRepo.SetCurrent(ctx, scope, input.EntityID, input.Rate)
}

func (uc *DefaultRateUsecase) CurrentRate(ctx context.Context, scope domain.RateScope, entityID string) (*domain.RateRecord, error) {
	return uc.rateRepo.Current(ctx, scope, entityID)
}

func (uc *DefaultRateUsecase) History(ctx context.Context, scope domain.RateScope, entityID string) ([]*domain.RateRecord, error) {
	return uc.rateRepo.History(ctx, scope, entityID)
}
