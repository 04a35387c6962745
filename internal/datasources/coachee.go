package datasources

import (
	"context"

	"github.com/coachably/ranking-engine/internal/domain"
)

// CoacheeRequestGetter retrieves the stored assessment and preferences
// for a coachee.
type CoacheeRequestGetter interface {
	GetCoacheeRequest(ctx context.Context, coacheeID string) (domain.CoacheeRequest, error)
}
