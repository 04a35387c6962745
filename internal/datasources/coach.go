package datasources

import (
	"context"

	"github.com/coachably/ranking-engine/internal/domain"
)

// CoachGetter retrieves a single coach profile snapshot.
type CoachGetter interface {
	GetCoach(ctx context.Context, coachID string) (domain.CoachProfile, error)
}

// RankableCoachLister lists coaches eligible to appear in rankings:
// approved and not hidden by reputation decay.
type RankableCoachLister interface {
	ListRankableCoaches(ctx context.Context) ([]domain.CoachProfile, error)
}

// ApprovedCoachIDLister lists the IDs of all approved coaches,
// including hidden ones. Batch jobs use this so hidden coaches keep
// accruing rotation state and can surface again on re-admission.
type ApprovedCoachIDLister interface {
	ListApprovedCoachIDs(ctx context.Context) ([]string, error)
}

// CoachDirectory combines the coach profile read operations.
type CoachDirectory interface {
	CoachGetter
	RankableCoachLister
	ApprovedCoachIDLister
}
