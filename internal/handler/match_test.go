package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fantaschedina/backend/internal/domain"
)

func TestHandleGetMatch(t *testing.T) {
	t.Run("existing fixture returns 200", func(t *testing.T) {
		svc := new(MockScoringService)
		h := NewMatchHandler(svc)

		match := &domain.Match{
			ID:       "m1",
			Matchday: 4,
			Status:   domain.MatchStatusFinished,
			Result:   &domain.MatchResult{HomeGoals: 2, AwayGoals: 0, Outcome: domain.OutcomeHome},
		}
		svc.On("GetMatch", mock.Anything, "m1").Return(match, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/matches?id=m1", nil)
		rec := httptest.NewRecorder()

		h.HandleGetMatch(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.Match
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "m1", got.ID)
		require.NotNil(t, got.Result)
		assert.Equal(t, 2, got.Result.HomeGoals)
	})

	t.Run("missing id returns 400", func(t *testing.T) {
		h := NewMatchHandler(new(MockScoringService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil)
		rec := httptest.NewRecorder()

		h.HandleGetMatch(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown fixture returns 404", func(t *testing.T) {
		svc := new(MockScoringService)
		h := NewMatchHandler(svc)

		svc.On("GetMatch", mock.Anything, "m404").Return(nil, domain.ErrMatchNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/matches?id=m404", nil)
		rec := httptest.NewRecorder()

		h.HandleGetMatch(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgMatchNotFoundError, resp.Error)
	})
}
