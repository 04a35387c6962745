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

func testRecordActivityConfig() RecordActivityConfig {
	return RecordActivityConfig{Points: domain.DefaultPointsPolicy()}
}

func TestRecordActivity_Execute_SessionCompleted(t *testing.T) {
	eventAt := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	month := domain.YearMonth("2026-08")

	engagement := mocks.NewMockEngagementStore(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-1", month).
		Return(domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound)
	engagement.EXPECT().UpsertEngagementRecord(mock.Anything, mock.MatchedBy(func(rec domain.EngagementRecord) bool {
		return rec.CoachID == "coach-1" &&
			rec.Month == month &&
			rec.SessionsCompleted == 1 &&
			rec.UpdatedAt.Equal(eventAt)
	})).Return(nil)

	reputation := mocks.NewMockReputationStore(t)
	reputation.EXPECT().GetReputationLedger(mock.Anything, "coach-1").
		Return(domain.ReputationLedger{}, domain.ErrLedgerNotFound)
	reputation.EXPECT().UpsertReputationLedger(mock.Anything, mock.MatchedBy(func(l domain.ReputationLedger) bool {
		return l.CoachID == "coach-1" &&
			l.TotalPoints == 20 &&
			l.StreakDays == 1 &&
			l.LastActivityAt.Equal(eventAt)
	})).Return(nil)

	cmd := NewRecordActivity(engagement, reputation, mocks.NewMockLastRequestRecorder(t), testRecordActivityConfig())

	resp, err := cmd.Execute(context.Background(), RecordActivityRequest{
		Event: domain.ActivityEvent{CoachID: "coach-1", Type: domain.EventSessionCompleted, Timestamp: eventAt},
	})
	require.NoError(t, err)
	assert.True(t, resp.Applied)
}

func TestRecordActivity_Execute_PostExtendsStreakAndPostCount(t *testing.T) {
	yesterday := time.Date(2026, 8, 19, 9, 0, 0, 0, time.UTC)
	eventAt := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	engagement := mocks.NewMockEngagementStore(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-1", mock.Anything).
		Return(domain.EngagementRecord{CoachID: "coach-1", Month: "2026-08", CommunityActivityCount: 3, UpdatedAt: yesterday}, nil)
	engagement.EXPECT().UpsertEngagementRecord(mock.Anything, mock.MatchedBy(func(rec domain.EngagementRecord) bool {
		return rec.CommunityActivityCount == 4
	})).Return(nil)

	reputation := mocks.NewMockReputationStore(t)
	reputation.EXPECT().GetReputationLedger(mock.Anything, "coach-1").
		Return(domain.ReputationLedger{
			CoachID:          "coach-1",
			TotalPoints:      100,
			Standing:         domain.StandingActive,
			MonthlyPostCount: 2,
			StreakDays:       5,
			LastActivityAt:   yesterday,
			UpdatedAt:        yesterday,
		}, nil)
	reputation.EXPECT().UpsertReputationLedger(mock.Anything, mock.MatchedBy(func(l domain.ReputationLedger) bool {
		return l.TotalPoints == 110 &&
			l.MonthlyPostCount == 3 &&
			l.StreakDays == 6
	})).Return(nil)

	cmd := NewRecordActivity(engagement, reputation, mocks.NewMockLastRequestRecorder(t), testRecordActivityConfig())

	resp, err := cmd.Execute(context.Background(), RecordActivityRequest{
		Event: domain.ActivityEvent{CoachID: "coach-1", Type: domain.EventPostPublished, Timestamp: eventAt},
	})
	require.NoError(t, err)
	assert.True(t, resp.Applied)
}

func TestRecordActivity_Execute_StaleEventDiscarded(t *testing.T) {
	storedAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	staleAt := storedAt.Add(-time.Hour)

	engagement := mocks.NewMockEngagementStore(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-1", mock.Anything).
		Return(domain.EngagementRecord{CoachID: "coach-1", Month: "2026-08", UpdatedAt: storedAt}, nil)

	reputation := mocks.NewMockReputationStore(t)
	reputation.EXPECT().GetReputationLedger(mock.Anything, "coach-1").
		Return(domain.ReputationLedger{CoachID: "coach-1", UpdatedAt: storedAt}, nil)

	cmd := NewRecordActivity(engagement, reputation, mocks.NewMockLastRequestRecorder(t), testRecordActivityConfig())

	resp, err := cmd.Execute(context.Background(), RecordActivityRequest{
		Event: domain.ActivityEvent{CoachID: "coach-1", Type: domain.EventReviewSubmitted, Timestamp: staleAt},
	})
	require.NoError(t, err)
	assert.False(t, resp.Applied)
}

func TestRecordActivity_Execute_ClosedMonthRejected(t *testing.T) {
	closedAt := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	lateEvent := time.Date(2026, 7, 31, 23, 0, 0, 0, time.UTC)

	engagement := mocks.NewMockEngagementStore(t)
	engagement.EXPECT().GetEngagementRecord(mock.Anything, "coach-1", domain.YearMonth("2026-07")).
		Return(domain.EngagementRecord{CoachID: "coach-1", Month: "2026-07", Closed: true, UpdatedAt: closedAt}, nil)

	reputation := mocks.NewMockReputationStore(t)
	reputation.EXPECT().GetReputationLedger(mock.Anything, "coach-1").
		Return(domain.ReputationLedger{CoachID: "coach-1", UpdatedAt: closedAt}, nil)
	reputation.EXPECT().UpsertReputationLedger(mock.Anything, mock.Anything).Return(nil)

	cmd := NewRecordActivity(engagement, reputation, mocks.NewMockLastRequestRecorder(t), testRecordActivityConfig())

	resp, err := cmd.Execute(context.Background(), RecordActivityRequest{
		Event: domain.ActivityEvent{CoachID: "coach-1", Type: domain.EventSessionCompleted, Timestamp: lateEvent},
	})
	require.NoError(t, err)

	// The closed engagement month blocks the counter update even though
	// the ledger write succeeded.
	assert.False(t, resp.Applied)
}

func TestRecordActivity_Execute_RequestReceived(t *testing.T) {
	eventAt := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	rotation := mocks.NewMockLastRequestRecorder(t)
	rotation.EXPECT().RecordRequestReceived(mock.Anything, "coach-1", eventAt).Return(nil)

	cmd := NewRecordActivity(
		mocks.NewMockEngagementStore(t),
		mocks.NewMockReputationStore(t),
		rotation,
		testRecordActivityConfig(),
	)

	resp, err := cmd.Execute(context.Background(), RecordActivityRequest{
		Event: domain.ActivityEvent{CoachID: "coach-1", Type: domain.EventRequestReceived, Timestamp: eventAt},
	})
	require.NoError(t, err)
	assert.True(t, resp.Applied)
}

func TestRecordActivity_Execute_InvalidEvent(t *testing.T) {
	cmd := NewRecordActivity(
		mocks.NewMockEngagementStore(t),
		mocks.NewMockReputationStore(t),
		mocks.NewMockLastRequestRecorder(t),
		testRecordActivityConfig(),
	)

	tests := []struct {
		name    string
		event   domain.ActivityEvent
		wantErr error
	}{
		{
			name:    "missing coach ID",
			event:   domain.ActivityEvent{Type: domain.EventSessionCompleted, Timestamp: time.Now()},
			wantErr: domain.ErrEventMissingCoachID,
		},
		{
			name:    "unknown type",
			event:   domain.ActivityEvent{CoachID: "coach-1", Type: "coffee_break", Timestamp: time.Now()},
			wantErr: domain.ErrEventUnknownType,
		},
		{
			name:    "missing timestamp",
			event:   domain.ActivityEvent{CoachID: "coach-1", Type: domain.EventSessionCompleted},
			wantErr: domain.ErrEventMissingTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmd.Execute(context.Background(), RecordActivityRequest{Event: tt.event})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNextStreak(t *testing.T) {
	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		cur  int
		want int
	}{
		{name: "first activity", last: time.Time{}, now: base, cur: 0, want: 1},
		{name: "same day", last: base, now: base.Add(6 * time.Hour), cur: 3, want: 3},
		{name: "next day", last: base, now: base.Add(24 * time.Hour), cur: 3, want: 4},
		{name: "gap resets", last: base, now: base.Add(72 * time.Hour), cur: 9, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextStreak(tt.cur, tt.last, tt.now))
		})
	}
}
