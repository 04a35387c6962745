package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachably/ranking-engine/internal/datasources/mocks"
	"github.com/coachably/ranking-engine/internal/domain"
)

func testCoachGetter(t *testing.T, coachID string) *mocks.MockCoachGetter {
	t.Helper()
	coaches := mocks.NewMockCoachGetter(t)
	coaches.EXPECT().GetCoach(mock.Anything, coachID).
		Return(domain.CoachProfile{ID: coachID, Status: domain.CoachStatusApproved}, nil)
	return coaches
}

func TestGetEngagementSummary_Execute(t *testing.T) {
	rec := domain.EngagementRecord{
		CoachID:                "coach-1",
		Month:                  "2026-07",
		SessionsCompleted:      11,
		ResponseRate:           0.92,
		RecentReviewCount:      6,
		CommunityActivityCount: 14,
		ConversionRate:         0.55,
		Closed:                 true,
	}

	engagement := mocks.NewMockEngagementRecordGetter(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-1", domain.YearMonth("2026-07")).Return(rec, nil)

	cmd := NewGetEngagementSummary(testCoachGetter(t, "coach-1"), engagement, GetEngagementSummaryConfig{Weights: domain.DefaultEngagementWeights()})

	resp, err := cmd.Execute(context.Background(), GetEngagementSummaryRequest{CoachID: "coach-1", Month: "2026-07"})
	require.NoError(t, err)

	// Every metric clears its excellent threshold.
	assert.InDelta(t, 100.0, resp.Score.Score, 1e-9)
	assert.True(t, resp.Score.Closed)
	assert.Equal(t, rec, resp.Record)
}

func TestGetEngagementSummary_Execute_NoRecordScoresZero(t *testing.T) {
	engagement := mocks.NewMockEngagementRecordGetter(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-1", mock.Anything).
		Return(domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound)

	cmd := NewGetEngagementSummary(testCoachGetter(t, "coach-1"), engagement, GetEngagementSummaryConfig{Weights: domain.DefaultEngagementWeights()})

	resp, err := cmd.Execute(context.Background(), GetEngagementSummaryRequest{CoachID: "coach-1"})
	require.NoError(t, err)

	assert.Zero(t, resp.Score.Score)
	assert.False(t, resp.Score.Closed)
}

func TestGetEngagementSummary_Execute_InvalidMonth(t *testing.T) {
	cmd := NewGetEngagementSummary(
		mocks.NewMockCoachGetter(t),
		mocks.NewMockEngagementRecordGetter(t),
		GetEngagementSummaryConfig{Weights: domain.DefaultEngagementWeights()},
	)

	_, err := cmd.Execute(context.Background(), GetEngagementSummaryRequest{CoachID: "coach-1", Month: "last month"})
	assert.ErrorContains(t, err, "invalid month")
}

func TestGetEngagementSummary_Execute_UnknownCoach(t *testing.T) {
	coaches := mocks.NewMockCoachGetter(t)
	coaches.EXPECT().GetCoach(mock.Anything, "coach-x").
		Return(domain.CoachProfile{}, domain.ErrCoachNotFound)

	cmd := NewGetEngagementSummary(
		coaches,
		mocks.NewMockEngagementRecordGetter(t),
		GetEngagementSummaryConfig{Weights: domain.DefaultEngagementWeights()},
	)

	_, err := cmd.Execute(context.Background(), GetEngagementSummaryRequest{CoachID: "coach-x", Month: "2026-07"})
	assert.ErrorIs(t, err, domain.ErrCoachNotFound)
}
