package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fantaschedina/backend/internal/domain"
)

// MockPrizeService
type MockPrizeService struct {
	mock.Mock
}

func (m *MockPrizeService) LateEntryFee(ctx context.Context, currentMatchday int) (domain.LateEntryFee, error) {
	args := m.Called(ctx, currentMatchday)
	return args.Get(0).(domain.LateEntryFee), args.Error(1)
}

func (m *MockPrizeService) PreviewDistribution(ctx context.Context) (domain.WeeklyDistribution, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.WeeklyDistribution), args.Error(1)
}

func (m *MockPrizeService) GetPrizePool(ctx context.Context) (*domain.PrizePool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrizePool), args.Error(1)
}

func (m *MockPrizeService) PayoutHistory(ctx context.Context, matchday int) ([]domain.Payout, error) {
	args := m.Called(ctx, matchday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payout), args.Error(1)
}

func (m *MockPrizeService) SettleRound(ctx context.Context, matchday int) (*domain.PrizePool, []domain.Payout, error) {
	args := m.Called(ctx, matchday)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.PrizePool), args.Get(1).([]domain.Payout), args.Error(2)
}

func roundBody(t *testing.T, matchday int) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(RoundRequest{Matchday: matchday})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandleEvaluateRound(t *testing.T) {
	t.Run("scored round returns results", func(t *testing.T) {
		scoringSvc := new(MockScoringService)
		prizeSvc := new(MockPrizeService)
		h := NewRoundHandler(scoringSvc, prizeSvc)

		results := []domain.SchedinaResult{{ParticipantID: "alice", Matchday: 4, FinalPoints: 11.0}}
		scoringSvc.On("EvaluateRound", mock.Anything, 4).Return(results, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/round/evaluate", roundBody(t, 4))
		rec := httptest.NewRecorder()

		h.HandleEvaluateRound(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp EvaluateRoundResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.Matchday)
		assert.Equal(t, 1, resp.Scored)
	})

	t.Run("zero matchday fails validation", func(t *testing.T) {
		h := NewRoundHandler(new(MockScoringService), new(MockPrizeService))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/round/evaluate", roundBody(t, 0))
		rec := httptest.NewRecorder()

		h.HandleEvaluateRound(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleSettleRound(t *testing.T) {
	t.Run("successful settlement", func(t *testing.T) {
		scoringSvc := new(MockScoringService)
		prizeSvc := new(MockPrizeService)
		h := NewRoundHandler(scoringSvc, prizeSvc)

		pool := &domain.PrizePool{FinalPool: 30}
		payouts := []domain.Payout{{Type: domain.PrizeWeeklyWinner, ParticipantID: "alice", Amount: 60}}
		prizeSvc.On("SettleRound", mock.Anything, 4).Return(pool, payouts, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/round/settle", roundBody(t, 4))
		rec := httptest.NewRecorder()

		h.HandleSettleRound(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp SettleRoundResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 30.0, resp.Pool.FinalPool)
		require.Len(t, resp.Payouts, 1)
		assert.Equal(t, domain.PrizeWeeklyWinner, resp.Payouts[0].Type)
	})

	t.Run("double settlement maps to 409", func(t *testing.T) {
		prizeSvc := new(MockPrizeService)
		h := NewRoundHandler(new(MockScoringService), prizeSvc)

		prizeSvc.On("SettleRound", mock.Anything, 4).Return(nil, nil, domain.ErrRoundAlreadySettled)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/round/settle", roundBody(t, 4))
		rec := httptest.NewRecorder()

		h.HandleSettleRound(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unscored round maps to 409", func(t *testing.T) {
		prizeSvc := new(MockPrizeService)
		h := NewRoundHandler(new(MockScoringService), prizeSvc)

		prizeSvc.On("SettleRound", mock.Anything, 7).Return(nil, nil, domain.ErrRoundNotScored)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/round/settle", roundBody(t, 7))
		rec := httptest.NewRecorder()

		h.HandleSettleRound(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandleGetDistribution(t *testing.T) {
	prizeSvc := new(MockPrizeService)
	h := NewRoundHandler(new(MockScoringService), prizeSvc)

	prizeSvc.On("PreviewDistribution", mock.Anything).Return(domain.WeeklyDistribution{ToWinner: 60, ToEach: 7.5, ToFinal: 30}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/round/distribution", nil)
	rec := httptest.NewRecorder()

	h.HandleGetDistribution(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var dist domain.WeeklyDistribution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dist))
	assert.Equal(t, 60.0, dist.ToWinner)
}

func TestHandleGetLateEntryFee(t *testing.T) {
	t.Run("quotes the fee", func(t *testing.T) {
		prizeSvc := new(MockPrizeService)
		h := NewPrizeHandler(prizeSvc)

		prizeSvc.On("LateEntryFee", mock.Anything, 5).Return(domain.LateEntryFee{TotalFee: 40, BaseFee: 20, AdditionalFee: 20, ToPool: 40}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/late-entry?matchday=5", nil)
		rec := httptest.NewRecorder()

		h.HandleGetLateEntryFee(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var fee domain.LateEntryFee
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fee))
		assert.Equal(t, 40.0, fee.TotalFee)
	})

	t.Run("closed window maps to 403", func(t *testing.T) {
		prizeSvc := new(MockPrizeService)
		h := NewPrizeHandler(prizeSvc)

		prizeSvc.On("LateEntryFee", mock.Anything, 20).Return(domain.LateEntryFee{}, domain.ErrJoinWindowClosed)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/late-entry?matchday=20", nil)
		rec := httptest.NewRecorder()

		h.HandleGetLateEntryFee(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("non-numeric matchday returns 400", func(t *testing.T) {
		h := NewPrizeHandler(new(MockPrizeService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/late-entry?matchday=abc", nil)
		rec := httptest.NewRecorder()

		h.HandleGetLateEntryFee(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleGetPayouts(t *testing.T) {
	t.Run("settled round returns its payouts", func(t *testing.T) {
		scoringSvc := new(MockScoringService)
		prizeSvc := new(MockPrizeService)
		h := NewRoundHandler(scoringSvc, prizeSvc)

		payouts := []domain.Payout{
			{Type: domain.PrizeWeeklyWinner, Matchday: 4, ParticipantID: "bob", Amount: 60},
			{Type: domain.PrizePoker, Matchday: 4, ParticipantID: "amy", Amount: 20},
		}
		prizeSvc.On("PayoutHistory", mock.Anything, 4).Return(payouts, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/round/payouts?matchday=4", nil)
		rec := httptest.NewRecorder()

		h.HandleGetPayouts(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got PayoutHistoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 4, got.Matchday)
		assert.Len(t, got.Payouts, 2)
	})

	t.Run("missing matchday returns 400", func(t *testing.T) {
		h := NewRoundHandler(new(MockScoringService), new(MockPrizeService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/round/payouts", nil)
		rec := httptest.NewRecorder()

		h.HandleGetPayouts(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
