package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coachably/ranking-engine/internal/datasources"
	"github.com/coachably/ranking-engine/internal/domain"
	"github.com/coachably/ranking-engine/internal/metrics"
)

// RegenerateRotationRequest is the request for the RegenerateRotation
// command.
type RegenerateRotationRequest struct{}

// RegenerateRotationResponse is the response from the
// RegenerateRotation command.
type RegenerateRotationResponse struct {
	CoachesRotated    int
	DecliningNotified int
}

// RegenerateRotationConfig holds the rotation job configuration.
type RegenerateRotationConfig struct {
	Policy domain.RotationPolicy

	// TrendWindowDays is how many daily scores feed the visibility
	// trend check.
	TrendWindowDays int
}

// RegenerateRotation recomputes every approved coach's daily rotation
// state: the keyed daily boost plus inactivity compensation. It also
// flags coaches whose visibility has been declining.
type RegenerateRotation struct {
	CoachIDs datasources.ApprovedCoachIDLister
	Rotation datasources.RotationStore
	Notifier datasources.VisibilityNotifier
	Config   RegenerateRotationConfig
}

// NewRegenerateRotation creates a properly initialized
// RegenerateRotation command.
func NewRegenerateRotation(
	coachIDs datasources.ApprovedCoachIDLister,
	rotation datasources.RotationStore,
	notifier datasources.VisibilityNotifier,
	config RegenerateRotationConfig,
) *RegenerateRotation {
	return &RegenerateRotation{
		CoachIDs: coachIDs,
		Rotation: rotation,
		Notifier: notifier,
		Config:   config,
	}
}

// Execute rotates every approved coach, hidden ones included so their
// state is current when they are re-admitted. One coach failing does
// not abort the pass.
func (c *RegenerateRotation) Execute(
	ctx context.Context, _ RegenerateRotationRequest,
) (RegenerateRotationResponse, error) {
	logger := domain.LoggerFromContext(ctx)
	now := time.Now().UTC()

	coachIDs, err := c.CoachIDs.ListApprovedCoachIDs(ctx)
	if err != nil {
		return RegenerateRotationResponse{}, fmt.Errorf("listing approved coaches: %w", err)
	}

	var resp RegenerateRotationResponse
	for _, coachID := range coachIDs {
		if err := c.rotateCoach(ctx, coachID, now); err != nil {
			logger.ErrorContext(ctx, "failed to rotate coach", "coach_id", coachID, "error", err)
			continue
		}
		resp.CoachesRotated++

		if c.checkTrend(ctx, coachID) {
			resp.DecliningNotified++
		}
	}

	logger.InfoContext(ctx, "rotation regeneration complete",
		"rotated", resp.CoachesRotated, "declining_notified", resp.DecliningNotified)

	return resp, nil
}

func (c *RegenerateRotation) rotateCoach(ctx context.Context, coachID string, now time.Time) error {
	lastRequest, err := c.Rotation.GetLastRequestReceived(ctx, coachID)
	if err != nil {
		return fmt.Errorf("getting last request: %w", err)
	}

	state := c.Config.Policy.RotationScore(coachID, lastRequest, now)
	state.UpdatedAt = now

	err = c.Rotation.UpsertRotationState(ctx, state)
	if errors.Is(err, domain.ErrStaleWrite) {
		// A concurrent run already wrote today's state; the values are
		// identical by determinism.
		return nil
	}
	if err != nil {
		return fmt.Errorf("upserting rotation state: %w", err)
	}
	return nil
}

// checkTrend reports whether a declining-visibility notification went
// out for the coach.
func (c *RegenerateRotation) checkTrend(ctx context.Context, coachID string) bool {
	logger := domain.LoggerFromContext(ctx)

	scores, err := c.Rotation.ListRecentRotationScores(ctx, coachID, c.Config.TrendWindowDays)
	if err != nil {
		logger.WarnContext(ctx, "failed to list rotation scores", "coach_id", coachID, "error", err)
		return false
	}

	if domain.TrendOf(scores) != domain.VisibilityTrendDeclining {
		return false
	}

	if err := c.Notifier.NotifyVisibilityDeclining(ctx, coachID, scores); err != nil {
		metrics.NotificationsSent.WithLabelValues("visibility_declining", "error").Inc()
		logger.WarnContext(ctx, "failed to notify declining visibility", "coach_id", coachID, "error", err)
		return false
	}
	metrics.NotificationsSent.WithLabelValues("visibility_declining", "ok").Inc()
	return true
}
