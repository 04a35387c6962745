package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachably/ranking-engine/internal/command"
	"github.com/coachably/ranking-engine/internal/datasources/mocks"
)

func TestDashboardTokenCreate_ServeHTTP(t *testing.T) {
	counter := mocks.NewMockUserDashboardTokenCounter(t)
	counter.EXPECT().CountUserActiveDashboardTokens(mock.Anything, "user-1").Return(0, nil)

	creator := mocks.NewMockDashboardTokenCreator(t)
	creator.EXPECT().CreateDashboardToken(
		mock.Anything, mock.Anything, "user-1", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(nil)

	controller := DashboardTokenCreate{
		CreateCmd: command.NewCreateDashboardToken(counter, creator),
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard-tokens", strings.NewReader(`{"name":"ci"}`))
	req = testContextWithUserID("user-1")(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp DashboardTokenCreateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)
	assert.True(t, strings.HasPrefix(resp.Token, command.DashboardTokenPrefix))
	assert.Len(t, resp.Prefix, 8)
}

func TestDashboardTokenCreate_ServeHTTP_Unauthenticated(t *testing.T) {
	controller := DashboardTokenCreate{
		CreateCmd: command.NewCreateDashboardToken(
			mocks.NewMockUserDashboardTokenCounter(t),
			mocks.NewMockDashboardTokenCreator(t),
		),
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard-tokens", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardTokenCreate_ServeHTTP_LimitExceeded(t *testing.T) {
	counter := mocks.NewMockUserDashboardTokenCounter(t)
	counter.EXPECT().CountUserActiveDashboardTokens(mock.Anything, "user-1").
		Return(command.MaxDashboardTokensPerUser, nil)

	controller := DashboardTokenCreate{
		CreateCmd: command.NewCreateDashboardToken(counter, mocks.NewMockDashboardTokenCreator(t)),
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard-tokens", nil)
	req = testContextWithUserID("user-1")(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
