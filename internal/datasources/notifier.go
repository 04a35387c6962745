package datasources

import (
	"context"

	"github.com/coachably/ranking-engine/internal/domain"
)

// VisibilityNotifier delivers visibility alerts to coaches. Delivery
// is best effort; callers log failures and continue.
type VisibilityNotifier interface {
	// NotifyVisibilityDeclining tells a coach their rotation score has
	// been trending down over the recent window.
	NotifyVisibilityDeclining(ctx context.Context, coachID string, scores []float64) error

	// NotifyStandingChanged tells a coach their reputation standing
	// moved, including being hidden or re-admitted.
	NotifyStandingChanged(ctx context.Context, coachID string, from, to domain.Standing) error
}

// NullVisibilityNotifier is a null implementation of
// VisibilityNotifier.
type NullVisibilityNotifier struct{}

var _ VisibilityNotifier = NullVisibilityNotifier{}

func (NullVisibilityNotifier) NotifyVisibilityDeclining(_ context.Context, _ string, _ []float64) error {
	return nil
}

func (NullVisibilityNotifier) NotifyStandingChanged(_ context.Context, _ string, _, _ domain.Standing) error {
	return nil
}
