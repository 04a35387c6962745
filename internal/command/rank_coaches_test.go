package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachably/ranking-engine/internal/datasources/mocks"
	"github.com/coachably/ranking-engine/internal/domain"
)

func testRankCoachesConfig() RankCoachesConfig {
	return RankCoachesConfig{
		Formula:            domain.DefaultFormulaWeights(),
		MatchWeights:       domain.DefaultMatchWeights(),
		EngagementWeights:  domain.DefaultEngagementWeights(),
		RotationPolicy:     domain.DefaultRotationPolicy(),
		DefaultLimit:       3,
		ScoringConcurrency: 4,
	}
}

func testCoacheeRequest() domain.CoacheeRequest {
	return domain.CoacheeRequest{
		CoacheeID: "coachee-1",
		AreaScores: map[domain.LifeArea]float64{
			domain.LifeAreaCareer:  2,
			domain.LifeAreaFinance: 3,
			domain.LifeAreaHealth:  4,
		},
		SelectedObjectives: map[domain.LifeArea][]string{
			domain.LifeAreaCareer: {"find direction"},
		},
		Archetype: domain.ArchetypeAchiever,
	}
}

func testCoach(id string, reviews int, areas ...domain.LifeArea) domain.CoachProfile {
	return domain.CoachProfile{
		ID:              id,
		DisplayName:     "Coach " + id,
		Specializations: areas,
		Style:           domain.CoachingStyleFacilitative,
		Archetype:       domain.ArchetypeAchiever,
		Rating:          4.5,
		ReviewCount:     reviews,
		YearsExperience: 5,
		Status:          domain.CoachStatusApproved,
	}
}

func TestRankCoaches_Execute_CacheHit(t *testing.T) {
	cached := []domain.RankingResult{
		{CoachID: "c1", FinalScore: 80},
		{CoachID: "c2", FinalScore: 70},
		{CoachID: "c3", FinalScore: 60},
		{CoachID: "c4", FinalScore: 50},
	}

	cache := mocks.NewMockRankingCache(t)
	cache.EXPECT().GetCachedRanking(mock.Anything, "coachee-1").Return(cached, true, nil)

	cmd := NewRankCoaches(
		mocks.NewMockRankableCoachLister(t),
		mocks.NewMockCoacheeRequestGetter(t),
		mocks.NewMockEngagementRecordGetter(t),
		mocks.NewMockLatestClosedEngagementRecordGetter(t),
		mocks.NewMockRotationStateGetter(t),
		mocks.NewMockLastRequestGetter(t),
		cache,
		testRankCoachesConfig(),
	)

	resp, err := cmd.Execute(context.Background(), RankCoachesRequest{CoacheeID: "coachee-1"})
	require.NoError(t, err)

	assert.True(t, resp.FromCache)
	assert.Len(t, resp.Results, 3)
	assert.Equal(t, "c1", resp.Results[0].CoachID)
}

func TestRankCoaches_Execute_ComputesAndCaches(t *testing.T) {
	coachA := testCoach("coach-a", 10, domain.LifeAreaCareer, domain.LifeAreaFinance)
	coachB := testCoach("coach-b", 2, domain.LifeAreaSpirituality)

	cache := mocks.NewMockRankingCache(t)
	cache.EXPECT().GetCachedRanking(mock.Anything, "coachee-1").Return(nil, false, nil)
	cache.EXPECT().SetCachedRanking(mock.Anything, "coachee-1", mock.Anything).Return(nil)

	requests := mocks.NewMockCoacheeRequestGetter(t)
	requests.EXPECT().GetCoacheeRequest(mock.Anything, "coachee-1").Return(testCoacheeRequest(), nil)

	coaches := mocks.NewMockRankableCoachLister(t)
	coaches.EXPECT().ListRankableCoaches(mock.Anything).Return([]domain.CoachProfile{coachA, coachB}, nil)

	engagement := mocks.NewMockEngagementRecordGetter(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-a", mock.Anything).
		Return(domain.EngagementRecord{CoachID: "coach-a", SessionsCompleted: 12, ResponseRate: 0.95}, nil)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-b", mock.Anything).
		Return(domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound)

	closedEngagement := mocks.NewMockLatestClosedEngagementRecordGetter(t)
	closedEngagement.EXPECT().GetLatestClosedEngagementRecord(mock.Anything, "coach-b").
		Return(domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound)

	rotation := mocks.NewMockRotationStateGetter(t)
	rotation.EXPECT().GetRotationState(mock.Anything, "coach-a", mock.Anything).
		Return(domain.RotationState{CoachID: "coach-a", RotationScore: 8}, nil)
	rotation.EXPECT().GetRotationState(mock.Anything, "coach-b", mock.Anything).
		Return(domain.RotationState{}, domain.ErrRotationStateNotFound)

	lastRequests := mocks.NewMockLastRequestGetter(t)
	lastRequests.EXPECT().GetLastRequestReceived(mock.Anything, "coach-b").Return(nil, nil)

	cmd := NewRankCoaches(
		coaches, requests, engagement, closedEngagement,
		rotation, lastRequests, cache, testRankCoachesConfig(),
	)

	resp, err := cmd.Execute(context.Background(), RankCoachesRequest{CoacheeID: "coachee-1"})
	require.NoError(t, err)

	assert.False(t, resp.FromCache)
	require.Len(t, resp.Results, 2)

	// coach-a matches the priority areas and has live engagement, so it
	// must outrank coach-b regardless of rotation values.
	assert.Equal(t, "coach-a", resp.Results[0].CoachID)
	assert.Equal(t, "coach-b", resp.Results[1].CoachID)
	assert.Greater(t, resp.Results[0].FinalScore, resp.Results[1].FinalScore)
	for _, result := range resp.Results {
		assert.GreaterOrEqual(t, result.FinalScore, 0.0)
		assert.LessOrEqual(t, result.FinalScore, 100.0)
	}
}

func TestRankCoaches_Execute_SkipsBrokenCoach(t *testing.T) {
	coachA := testCoach("coach-a", 10, domain.LifeAreaCareer)
	coachB := testCoach("coach-b", 5, domain.LifeAreaHealth)

	cache := mocks.NewMockRankingCache(t)
	cache.EXPECT().GetCachedRanking(mock.Anything, "coachee-1").Return(nil, false, nil)
	cache.EXPECT().SetCachedRanking(mock.Anything, "coachee-1", mock.Anything).Return(nil)

	requests := mocks.NewMockCoacheeRequestGetter(t)
	requests.EXPECT().GetCoacheeRequest(mock.Anything, "coachee-1").Return(testCoacheeRequest(), nil)

	coaches := mocks.NewMockRankableCoachLister(t)
	coaches.EXPECT().ListRankableCoaches(mock.Anything).Return([]domain.CoachProfile{coachA, coachB}, nil)

	engagement := mocks.NewMockEngagementRecordGetter(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-a", mock.Anything).
		Return(domain.EngagementRecord{}, errors.New("row corrupted"))
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-b", mock.Anything).
		Return(domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound)

	closedEngagement := mocks.NewMockLatestClosedEngagementRecordGetter(t)
	closedEngagement.EXPECT().GetLatestClosedEngagementRecord(mock.Anything, "coach-b").
		Return(domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound)

	rotation := mocks.NewMockRotationStateGetter(t)
	rotation.EXPECT().GetRotationState(mock.Anything, "coach-b", mock.Anything).
		Return(domain.RotationState{CoachID: "coach-b", RotationScore: 5}, nil)

	cmd := NewRankCoaches(
		coaches, requests, engagement, closedEngagement, rotation,
		mocks.NewMockLastRequestGetter(t), cache, testRankCoachesConfig(),
	)

	resp, err := cmd.Execute(context.Background(), RankCoachesRequest{CoacheeID: "coachee-1"})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "coach-b", resp.Results[0].CoachID)
}

func TestRankCoaches_Execute_UnknownCoachee(t *testing.T) {
	cache := mocks.NewMockRankingCache(t)
	cache.EXPECT().GetCachedRanking(mock.Anything, "nobody").Return(nil, false, nil)

	requests := mocks.NewMockCoacheeRequestGetter(t)
	requests.EXPECT().GetCoacheeRequest(mock.Anything, "nobody").
		Return(domain.CoacheeRequest{}, domain.ErrCoacheeRequestNotFound)

	cmd := NewRankCoaches(
		mocks.NewMockRankableCoachLister(t),
		requests,
		mocks.NewMockEngagementRecordGetter(t),
		mocks.NewMockLatestClosedEngagementRecordGetter(t),
		mocks.NewMockRotationStateGetter(t),
		mocks.NewMockLastRequestGetter(t),
		cache,
		testRankCoachesConfig(),
	)

	_, err := cmd.Execute(context.Background(), RankCoachesRequest{CoacheeID: "nobody"})
	assert.ErrorIs(t, err, domain.ErrCoacheeRequestNotFound)
}

func TestRankCoaches_Execute_FallsBackToLatestClosedMonth(t *testing.T) {
	// The live month has no record yet, so the last closed month's
	// activity must carry the engagement component of the score.
	coach := testCoach("coach-a", 10, domain.LifeAreaCareer)
	closedRec := domain.EngagementRecord{
		CoachID:                "coach-a",
		Month:                  "2026-07",
		SessionsCompleted:      14,
		ResponseRate:           0.97,
		RecentReviewCount:      6,
		CommunityActivityCount: 22,
		ConversionRate:         0.5,
		Closed:                 true,
	}

	cache := mocks.NewMockRankingCache(t)
	cache.EXPECT().GetCachedRanking(mock.Anything, "coachee-1").Return(nil, false, nil)
	cache.EXPECT().SetCachedRanking(mock.Anything, "coachee-1", mock.Anything).Return(nil)

	requests := mocks.NewMockCoacheeRequestGetter(t)
	requests.EXPECT().GetCoacheeRequest(mock.Anything, "coachee-1").Return(testCoacheeRequest(), nil)

	coaches := mocks.NewMockRankableCoachLister(t)
	coaches.EXPECT().ListRankableCoaches(mock.Anything).Return([]domain.CoachProfile{coach}, nil)

	engagement := mocks.NewMockEngagementRecordGetter(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-a", mock.Anything).
		Return(domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound)

	closedEngagement := mocks.NewMockLatestClosedEngagementRecordGetter(t)
	closedEngagement.EXPECT().GetLatestClosedEngagementRecord(mock.Anything, "coach-a").
		Return(closedRec, nil)

	rotation := mocks.NewMockRotationStateGetter(t)
	rotation.EXPECT().GetRotationState(mock.Anything, "coach-a", mock.Anything).
		Return(domain.RotationState{CoachID: "coach-a", RotationScore: 3}, nil)

	cmd := NewRankCoaches(
		coaches, requests, engagement, closedEngagement, rotation,
		mocks.NewMockLastRequestGetter(t), cache, testRankCoachesConfig(),
	)

	resp, err := cmd.Execute(context.Background(), RankCoachesRequest{CoacheeID: "coachee-1"})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	want := domain.ScoreEngagement(closedRec, domain.DefaultEngagementWeights())
	assert.Greater(t, want, 0.0)
	assert.InDelta(t, want, resp.Results[0].EngagementScore, 1e-9)
}

func TestRankCoaches_Execute_RefreshBypassesCache(t *testing.T) {
	coach := testCoach("coach-a", 10, domain.LifeAreaCareer)

	cache := mocks.NewMockRankingCache(t)
	cache.EXPECT().InvalidateCachedRanking(mock.Anything, "coachee-1").Return(nil)
	cache.EXPECT().SetCachedRanking(mock.Anything, "coachee-1", mock.Anything).Return(nil)

	requests := mocks.NewMockCoacheeRequestGetter(t)
	requests.EXPECT().GetCoacheeRequest(mock.Anything, "coachee-1").Return(testCoacheeRequest(), nil)

	coaches := mocks.NewMockRankableCoachLister(t)
	coaches.EXPECT().ListRankableCoaches(mock.Anything).Return([]domain.CoachProfile{coach}, nil)

	engagement := mocks.NewMockEngagementRecordGetter(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-a", mock.Anything).
		Return(domain.EngagementRecord{CoachID: "coach-a", SessionsCompleted: 5, ResponseRate: 0.9}, nil)

	rotation := mocks.NewMockRotationStateGetter(t)
	rotation.EXPECT().GetRotationState(mock.Anything, "coach-a", mock.Anything).
		Return(domain.RotationState{CoachID: "coach-a", RotationScore: 3}, nil)

	cmd := NewRankCoaches(
		coaches, requests,
		engagement, mocks.NewMockLatestClosedEngagementRecordGetter(t),
		rotation, mocks.NewMockLastRequestGetter(t), cache, testRankCoachesConfig(),
	)

	resp, err := cmd.Execute(context.Background(), RankCoachesRequest{CoacheeID: "coachee-1", Refresh: true})
	require.NoError(t, err)

	// A stale cached ranking must never be served on refresh; the mock
	// has no GetCachedRanking expectation, so a read would fail the test.
	assert.False(t, resp.FromCache)
	require.Len(t, resp.Results, 1)
}

func TestRankCoaches_Execute_TieBreaksByReviewsThenID(t *testing.T) {
	// Identical profiles except review count and ID, with fixed
	// engagement and rotation, so ties resolve on the documented order.
	coachLow := testCoach("coach-x", 2, domain.LifeAreaCareer)
	coachHigh := testCoach("coach-a", 9, domain.LifeAreaCareer)

	cache := mocks.NewMockRankingCache(t)
	cache.EXPECT().GetCachedRanking(mock.Anything, "coachee-1").Return(nil, false, nil)
	cache.EXPECT().SetCachedRanking(mock.Anything, "coachee-1", mock.Anything).Return(nil)

	requests := mocks.NewMockCoacheeRequestGetter(t)
	requests.EXPECT().GetCoacheeRequest(mock.Anything, "coachee-1").Return(testCoacheeRequest(), nil)

	coaches := mocks.NewMockRankableCoachLister(t)
	coaches.EXPECT().ListRankableCoaches(mock.Anything).Return([]domain.CoachProfile{coachLow, coachHigh}, nil)

	engagement := mocks.NewMockEngagementRecordGetter(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound)

	closedEngagement := mocks.NewMockLatestClosedEngagementRecordGetter(t)
	closedEngagement.EXPECT().GetLatestClosedEngagementRecord(mock.Anything, mock.Anything).
		Return(domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound)

	rotation := mocks.NewMockRotationStateGetter(t)
	rotation.EXPECT().GetRotationState(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, coachID, _ string) (domain.RotationState, error) {
			return domain.RotationState{CoachID: coachID, RotationScore: 4}, nil
		})

	cmd := NewRankCoaches(
		coaches, requests, engagement, closedEngagement, rotation,
		mocks.NewMockLastRequestGetter(t), cache, testRankCoachesConfig(),
	)

	resp, err := cmd.Execute(context.Background(), RankCoachesRequest{CoacheeID: "coachee-1", Limit: 2})
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	if resp.Results[0].FinalScore == resp.Results[1].FinalScore {
		assert.Equal(t, "coach-a", resp.Results[0].CoachID)
	}
}
