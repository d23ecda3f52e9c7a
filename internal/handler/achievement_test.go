package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fantaschedina/backend/internal/domain"
)

// MockAchievementService
type MockAchievementService struct {
	mock.Mock
}

func (m *MockAchievementService) Report(ctx context.Context, participantID string) (*domain.AchievementReport, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AchievementReport), args.Error(1)
}

func TestHandleGetAchievements(t *testing.T) {
	t.Run("report returns 200", func(t *testing.T) {
		svc := new(MockAchievementService)
		h := NewAchievementHandler(svc)

		report := &domain.AchievementReport{
			ParticipantID: "amy",
			Unlocked: []domain.AchievementStatus{
				{ID: "first_schedina", Unlocked: true, Points: 10},
			},
			Locked:  []domain.AchievementStatus{},
			Summary: domain.AchievementSummary{UnlockedCount: 1, TotalCount: 23, EarnedPoints: 10},
		}
		svc.On("Report", mock.Anything, "amy").Return(report, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/achievements?participant=amy", nil)
		rec := httptest.NewRecorder()

		h.HandleGetAchievements(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.AchievementReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "amy", got.ParticipantID)
		assert.Equal(t, 1, got.Summary.UnlockedCount)
	})

	t.Run("missing participant returns 400", func(t *testing.T) {
		svc := new(MockAchievementService)
		h := NewAchievementHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/achievements", nil)
		rec := httptest.NewRecorder()

		h.HandleGetAchievements(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Report")
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		svc := new(MockAchievementService)
		h := NewAchievementHandler(svc)

		svc.On("Report", mock.Anything, "amy").Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/achievements?participant=amy", nil)
		rec := httptest.NewRecorder()

		h.HandleGetAchievements(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
