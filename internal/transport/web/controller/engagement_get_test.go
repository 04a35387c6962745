package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachably/ranking-engine/internal/command"
	"github.com/coachably/ranking-engine/internal/datasources/mocks"
	"github.com/coachably/ranking-engine/internal/domain"
)

func coachGetter(t *testing.T, coachID string) *mocks.MockCoachGetter {
	t.Helper()
	coaches := mocks.NewMockCoachGetter(t)
	coaches.EXPECT().GetCoach(mock.Anything, coachID).
		Return(domain.CoachProfile{ID: coachID, Status: domain.CoachStatusApproved}, nil)
	return coaches
}

func TestEngagementGet_ServeHTTP(t *testing.T) {
	record := domain.EngagementRecord{
		CoachID:           "coach-1",
		Month:             "2026-07",
		SessionsCompleted: 12,
		ResponseRate:      0.95,
		RecentReviewCount: 4,
		Closed:            true,
		UpdatedAt:         time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	getter := mocks.NewMockEngagementRecordGetter(t)
	getter.EXPECT().GetEngagementRecord(mock.Anything, "coach-1", domain.YearMonth("2026-07")).
		Return(record, nil)

	controller := EngagementGet{
		Summary: command.NewGetEngagementSummary(coachGetter(t, "coach-1"), getter, command.GetEngagementSummaryConfig{
			Weights: domain.DefaultEngagementWeights(),
		}),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/coaches/coach-1/engagement?month=2026-07", nil)
	req = testContextWithUserID("coach-1")(req)
	req = mux.SetURLVars(req, map[string]string{"coach_id": "coach-1"})
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp EngagementGetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "coach-1", resp.Score.CoachID)
	assert.Equal(t, domain.YearMonth("2026-07"), resp.Score.Month)
	assert.True(t, resp.Score.Closed)
	assert.Greater(t, resp.Score.Score, 0.0)
	assert.Equal(t, record, resp.Record)
}

func TestEngagementGet_ServeHTTP_NoActivityScoresZero(t *testing.T) {
	getter := mocks.NewMockEngagementRecordGetter(t)
	getter.EXPECT().GetEngagementRecord(mock.Anything, "coach-2", domain.YearMonth("2026-07")).
		Return(domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound)

	controller := EngagementGet{
		Summary: command.NewGetEngagementSummary(coachGetter(t, "coach-2"), getter, command.GetEngagementSummaryConfig{
			Weights: domain.DefaultEngagementWeights(),
		}),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/coaches/coach-2/engagement?month=2026-07", nil)
	req = testContextWithUserID("coach-2")(req)
	req = mux.SetURLVars(req, map[string]string{"coach_id": "coach-2"})
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp EngagementGetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Zero(t, resp.Score.Score)
}

func TestEngagementGet_ServeHTTP_InvalidMonth(t *testing.T) {
	controller := EngagementGet{
		Summary: command.NewGetEngagementSummary(mocks.NewMockCoachGetter(t), mocks.NewMockEngagementRecordGetter(t), command.GetEngagementSummaryConfig{
			Weights: domain.DefaultEngagementWeights(),
		}),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/coaches/coach-1/engagement?month=July", nil)
	req = testContextWithUserID("coach-1")(req)
	req = mux.SetURLVars(req, map[string]string{"coach_id": "coach-1"})
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEngagementGet_ServeHTTP_UnknownCoach(t *testing.T) {
	coaches := mocks.NewMockCoachGetter(t)
	coaches.EXPECT().GetCoach(mock.Anything, "coach-x").
		Return(domain.CoachProfile{}, domain.ErrCoachNotFound)

	controller := EngagementGet{
		Summary: command.NewGetEngagementSummary(coaches, mocks.NewMockEngagementRecordGetter(t), command.GetEngagementSummaryConfig{
			Weights: domain.DefaultEngagementWeights(),
		}),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/coaches/coach-x/engagement?month=2026-07", nil)
	req = testContextWithUserID("coach-x")(req)
	req = mux.SetURLVars(req, map[string]string{"coach_id": "coach-x"})
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
