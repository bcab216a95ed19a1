package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerliga/settlement-service/internal/domain"
	ratedto "github.com/pokerliga/settlement-service/internal/usecase/dto/rate"
)

type fakeRateRepo struct {
	records []*domain.RateRecord
}

func (f *fakeRateRepo) Current(_ context.Context, scope domain.RateScope, entityID string) (*domain.RateRecord, error) {
	for _, r := range f.records {
		if r.Scope == scope && r.EntityID == entityID && r.Current() {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRateRepo) CurrentBulk(_ context.Context, scope domain.RateScope) (map[string]float64, error) {
	out := map[string]float64{}
	for _, r := range f.records {
		if r.Scope == scope && r.Current() {
			out[r.EntityID] = r.Rate
		}
	}
	return out, nil
}

func (f *fakeRateRepo) History(_ context.Context, scope domain.RateScope, entityID string) ([]*domain.RateRecord, error) {
	var out []*domain.RateRecord
	for _, r := range f.records {
		if r.Scope == scope && r.EntityID == entityID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRateRepo) SetCurrent(_ context.Context, scope domain.RateScope, entityID string, rate float64) error {
	now := time.Now()
	for _, r := range f.records {
		if r.Scope == scope && r.EntityID == entityID && r.Current() {
			closed := now
			r.EffectiveTo = &closed
		}
	}
	f.records = append(f.records, &domain.RateRecord{
		Scope: scope, EntityID: entityID, Rate: rate, EffectiveFrom: now,
	})
	return nil
}

func TestSetRateRange(t *testing.T) {
	uc := NewDefaultRateUsecase(&fakeRateRepo{})

	for _, rate := range []float64{-0.01, 100.01} {
		err := uc.SetRate(context.Background(), &ratedto.SetRateInput{
			Scope: "PLAYER", EntityID: "p-1", Rate: rate,
		})
		assert.ErrorIs(t, err, domain.ErrRateOutOfRange, "rate %v", rate)
	}
}

func TestSetRateRejectsUnknownScope(t *testing.T) {
	uc := NewDefaultRateUsecase(&fakeRateRepo{})

	err := uc.SetRate(context.Background(), &ratedto.SetRateInput{
		Scope: "CLUB", EntityID: "c-1", Rate: 10,
	})
	assert.Error(t, err)
}

func TestSetRateClosesPreviousInterval(t *testing.T) {
	repo := &fakeRateRepo{}
	uc := NewDefaultRateUsecase(repo)

	require.NoError(t, uc.SetRate(context.Background(), &ratedto.SetRateInput{
		Scope: "AGENT", EntityID: "a-1", Rate: 20,
	}))
	require.NoError(t, uc.SetRate(context.Background(), &ratedto.SetRateInput{
		Scope: "AGENT", EntityID: "a-1", Rate: 35,
	}))

	current, err := uc.CurrentRate(context.Background(), domain.RateScopeAgent, "a-1")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, 35.0, current.Rate)

	history, err := uc.History(context.Background(), domain.RateScopeAgent, "a-1")
	require.NoError(t, err)
	require.Len(t, history, 2)

	open := 0
	for _, r := range history {
		if r.Current() {
			open++
		}
	}
	assert.Equal(t, 1, open)
}
