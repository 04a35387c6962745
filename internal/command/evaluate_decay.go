package command

import (
	"context"
	"fmt"
	"time"

	"github.com/coachably/ranking-engine/internal/datasources"
	"github.com/coachably/ranking-engine/internal/domain"
	"github.com/coachably/ranking-engine/internal/metrics"
)

// EvaluateDecayRequest is the request for the EvaluateDecay command.
// The command evaluates every ledger against the just-ended month.
type EvaluateDecayRequest struct{}

// EvaluateDecayResponse is the response from the EvaluateDecay command.
type EvaluateDecayResponse struct {
	Evaluated  int
	Deducted   int
	Hidden     int
	Readmitted int
}

// EvaluateDecayConfig holds the decay ladder configuration.
type EvaluateDecayConfig struct {
	Policy domain.DecayPolicy
}

// EvaluateDecay runs the monthly reputation decay pass: coaches below
// the community-post threshold move down the warning ladder and lose
// points; coaches who resumed activity return to Active standing.
type EvaluateDecay struct {
	Reputation datasources.ReputationStore
	Notifier   datasources.VisibilityNotifier
	Config     EvaluateDecayConfig
}

// NewEvaluateDecay creates a properly initialized EvaluateDecay command.
func NewEvaluateDecay(
	reputation datasources.ReputationStore,
	notifier datasources.VisibilityNotifier,
	config EvaluateDecayConfig,
) *EvaluateDecay {
	return &EvaluateDecay{
		Reputation: reputation,
		Notifier:   notifier,
		Config:     config,
	}
}

// Execute evaluates every ledger. A single broken ledger does not
// abort the pass.
func (c *EvaluateDecay) Execute(ctx context.Context, _ EvaluateDecayRequest) (EvaluateDecayResponse, error) {
	logger := domain.LoggerFromContext(ctx)
	now := time.Now().UTC()

	ledgers, err := c.Reputation.ListReputationLedgers(ctx)
	if err != nil {
		return EvaluateDecayResponse{}, fmt.Errorf("listing reputation ledgers: %w", err)
	}

	var resp EvaluateDecayResponse
	for _, ledger := range ledgers {
		before := ledger

		updated, deducted := domain.ApplyMonthlyDecay(ledger, ledger.MonthlyPostCount, c.Config.Policy, now)
		if err := c.Reputation.UpsertReputationLedger(ctx, updated); err != nil {
			logger.ErrorContext(ctx, "failed to store decayed ledger",
				"coach_id", ledger.CoachID, "error", err)
			continue
		}

		resp.Evaluated++
		resp.Deducted += deducted

		switch {
		case !before.IsHidden && updated.IsHidden:
			resp.Hidden++
			metrics.CoachesHidden.Inc()
		case before.IsHidden && !updated.IsHidden:
			resp.Readmitted++
			metrics.CoachesReadmitted.Inc()
		}

		if before.Standing != updated.Standing {
			c.notifyStandingChange(ctx, updated.CoachID, before.Standing, updated.Standing)
		}
	}

	logger.InfoContext(ctx, "decay evaluation complete",
		"evaluated", resp.Evaluated, "points_deducted", resp.Deducted,
		"hidden", resp.Hidden, "readmitted", resp.Readmitted)

	return resp, nil
}

// notifyStandingChange is best effort; a failed notification never
// blocks the decay pass.
func (c *EvaluateDecay) notifyStandingChange(ctx context.Context, coachID string, from, to domain.Standing) {
	logger := domain.LoggerFromContext(ctx)

	if err := c.Notifier.NotifyStandingChanged(ctx, coachID, from, to); err != nil {
		metrics.NotificationsSent.WithLabelValues("standing_changed", "error").Inc()
		logger.WarnContext(ctx, "failed to notify standing change",
			"coach_id", coachID, "from", from, "to", to, "error", err)
		return
	}
	metrics.NotificationsSent.WithLabelValues("standing_changed", "ok").Inc()
}
