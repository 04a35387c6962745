package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachably/ranking-engine/internal/domain"
)

func TestRepository_GetLatestClosedEngagementRecord(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	now := time.Now().UTC().Truncate(time.Second)

	months := []domain.EngagementRecord{
		{CoachID: "coach-a", Month: "2026-06", SessionsCompleted: 4, Closed: true, UpdatedAt: now.Add(-2 * time.Hour)},
		{CoachID: "coach-a", Month: "2026-07", SessionsCompleted: 9, Closed: true, UpdatedAt: now.Add(-time.Hour)},
		{CoachID: "coach-a", Month: "2026-08", SessionsCompleted: 1, UpdatedAt: now},
		{CoachID: "coach-b", Month: "2026-08", SessionsCompleted: 2, UpdatedAt: now},
	}
	for _, rec := range months {
		require.NoError(t, sut.UpsertEngagementRecord(context.Background(), rec))
	}

	t.Run("returns most recent frozen month", func(t *testing.T) {
		rec, err := sut.GetLatestClosedEngagementRecord(context.Background(), "coach-a")
		require.NoError(t, err)

		assert.Equal(t, domain.YearMonth("2026-07"), rec.Month)
		assert.Equal(t, 9, rec.SessionsCompleted)
		assert.True(t, rec.Closed)
	})

	t.Run("no closed history", func(t *testing.T) {
		_, err := sut.GetLatestClosedEngagementRecord(context.Background(), "coach-b")
		assert.ErrorIs(t, err, domain.ErrEngagementRecordNotFound)
	})

	t.Run("unknown coach", func(t *testing.T) {
		_, err := sut.GetLatestClosedEngagementRecord(context.Background(), "coach-nobody")
		assert.ErrorIs(t, err, domain.ErrEngagementRecordNotFound)
	})
}
