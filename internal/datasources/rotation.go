package datasources

import (
	"context"
	"time"

	"github.com/coachably/ranking-engine/internal/domain"
)

// RotationStateGetter retrieves a coach's rotation state for a day.
// Days use the domain's YYYY-MM-DD UTC date string.
type RotationStateGetter interface {
	GetRotationState(ctx context.Context, coachID, date string) (domain.RotationState, error)
}

// RotationStateUpserter stores a day's rotation state. Implementations
// must reject writes whose UpdatedAt is older than the stored row with
// domain.ErrStaleWrite.
type RotationStateUpserter interface {
	UpsertRotationState(ctx context.Context, state domain.RotationState) error
}

// RecentRotationScoreLister returns a coach's rotation scores for the
// most recent days, ordered oldest first, for visibility trend
// evaluation.
type RecentRotationScoreLister interface {
	ListRecentRotationScores(ctx context.Context, coachID string, days int) ([]float64, error)
}

// LastRequestRecorder records that a coach received a coaching request,
// resetting the inactivity clock.
type LastRequestRecorder interface {
	RecordRequestReceived(ctx context.Context, coachID string, at time.Time) error
}

// LastRequestGetter returns when a coach last received a coaching
// request, or nil if they never have.
type LastRequestGetter interface {
	GetLastRequestReceived(ctx context.Context, coachID string) (*time.Time, error)
}

// RotationStore combines the rotation state operations.
type RotationStore interface {
	RotationStateGetter
	RotationStateUpserter
	RecentRotationScoreLister
	LastRequestRecorder
	LastRequestGetter
}
