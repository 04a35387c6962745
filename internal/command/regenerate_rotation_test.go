package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachably/ranking-engine/internal/datasources/mocks"
	"github.com/coachably/ranking-engine/internal/domain"
)

func testRegenerateRotationConfig() RegenerateRotationConfig {
	return RegenerateRotationConfig{
		Policy:          domain.DefaultRotationPolicy(),
		TrendWindowDays: 7,
	}
}

func TestRegenerateRotation_Execute(t *testing.T) {
	recentRequest := time.Now().UTC().Add(-48 * time.Hour)

	coachIDs := mocks.NewMockApprovedCoachIDLister(t)
	coachIDs.EXPECT().ListApprovedCoachIDs(mock.Anything).Return([]string{"coach-1", "coach-2"}, nil)

	rotation := mocks.NewMockRotationStore(t)
	rotation.EXPECT().GetLastRequestReceived(mock.Anything, "coach-1").Return(&recentRequest, nil)
	rotation.EXPECT().GetLastRequestReceived(mock.Anything, "coach-2").Return(nil, nil)
	rotation.EXPECT().UpsertRotationState(mock.Anything, mock.MatchedBy(func(s domain.RotationState) bool {
		// Requested two days ago: within the threshold, daily boost only.
		return s.CoachID == "coach-1" && !s.InactivityBoostActive && s.RotationScore <= 10
	})).Return(nil)
	rotation.EXPECT().UpsertRotationState(mock.Anything, mock.MatchedBy(func(s domain.RotationState) bool {
		// Never requested: full compensation on top of the daily boost.
		return s.CoachID == "coach-2" && s.InactivityBoostActive && s.RotationScore >= 15
	})).Return(nil)
	rotation.EXPECT().ListRecentRotationScores(mock.Anything, "coach-1", 7).
		Return([]float64{5, 6, 5, 7}, nil)
	rotation.EXPECT().ListRecentRotationScores(mock.Anything, "coach-2", 7).
		Return([]float64{9, 8, 4, 2}, nil)

	notifier := mocks.NewMockVisibilityNotifier(t)
	notifier.EXPECT().NotifyVisibilityDeclining(mock.Anything, "coach-2", []float64{9, 8, 4, 2}).Return(nil)

	cmd := NewRegenerateRotation(coachIDs, rotation, notifier, testRegenerateRotationConfig())

	resp, err := cmd.Execute(context.Background(), RegenerateRotationRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CoachesRotated)
	assert.Equal(t, 1, resp.DecliningNotified)
}

func TestRegenerateRotation_Execute_StaleWriteSkipped(t *testing.T) {
	coachIDs := mocks.NewMockApprovedCoachIDLister(t)
	coachIDs.EXPECT().ListApprovedCoachIDs(mock.Anything).Return([]string{"coach-1"}, nil)

	rotation := mocks.NewMockRotationStore(t)
	rotation.EXPECT().GetLastRequestReceived(mock.Anything, "coach-1").Return(nil, nil)
	rotation.EXPECT().UpsertRotationState(mock.Anything, mock.Anything).Return(domain.ErrStaleWrite)
	rotation.EXPECT().ListRecentRotationScores(mock.Anything, "coach-1", 7).
		Return([]float64{5, 5}, nil)

	cmd := NewRegenerateRotation(
		coachIDs, rotation, mocks.NewMockVisibilityNotifier(t), testRegenerateRotationConfig(),
	)

	resp, err := cmd.Execute(context.Background(), RegenerateRotationRequest{})
	require.NoError(t, err)

	// A concurrent run's write counts as rotated, not failed.
	assert.Equal(t, 1, resp.CoachesRotated)
	assert.Zero(t, resp.DecliningNotified)
}

func TestRegenerateRotation_Execute_CoachFailureContinues(t *testing.T) {
	coachIDs := mocks.NewMockApprovedCoachIDLister(t)
	coachIDs.EXPECT().ListApprovedCoachIDs(mock.Anything).Return([]string{"bad", "good"}, nil)

	rotation := mocks.NewMockRotationStore(t)
	rotation.EXPECT().GetLastRequestReceived(mock.Anything, "bad").Return(nil, assert.AnError)
	rotation.EXPECT().GetLastRequestReceived(mock.Anything, "good").Return(nil, nil)
	rotation.EXPECT().UpsertRotationState(mock.Anything, mock.MatchedBy(func(s domain.RotationState) bool {
		return s.CoachID == "good"
	})).Return(nil)
	rotation.EXPECT().ListRecentRotationScores(mock.Anything, "good", 7).Return(nil, nil)

	cmd := NewRegenerateRotation(
		coachIDs, rotation, mocks.NewMockVisibilityNotifier(t), testRegenerateRotationConfig(),
	)

	resp, err := cmd.Execute(context.Background(), RegenerateRotationRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CoachesRotated)
}
