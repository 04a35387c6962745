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

// RecordActivityRequest is the request for the RecordActivity command.
type RecordActivityRequest struct {
	Event domain.ActivityEvent
}

// RecordActivityResponse is the response from the RecordActivity
// command.
type RecordActivityResponse struct {
	// Applied is false when the event lost last-write-wins comparison
	// against already-stored state and was discarded.
	Applied bool
}

// RecordActivityConfig holds event ingestion configuration.
type RecordActivityConfig struct {
	Points domain.PointsPolicy
}

// RecordActivity folds one activity event into the coach's engagement
// counters, reputation ledger, and rotation inactivity clock.
type RecordActivity struct {
	Engagement datasources.EngagementStore
	Reputation datasources.ReputationStore
	Rotation   datasources.LastRequestRecorder
	Config     RecordActivityConfig
}

// NewRecordActivity creates a properly initialized RecordActivity command.
func NewRecordActivity(
	engagement datasources.EngagementStore,
	reputation datasources.ReputationStore,
	rotation datasources.LastRequestRecorder,
	config RecordActivityConfig,
) *RecordActivity {
	return &RecordActivity{
		Engagement: engagement,
		Reputation: reputation,
		Rotation:   rotation,
		Config:     config,
	}
}

// Execute applies the event. Stale events, ones older than state
// already written for the same coach, are discarded rather than
// applied out of order.
func (c *RecordActivity) Execute(ctx context.Context, req RecordActivityRequest) (RecordActivityResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	event := req.Event
	if err := event.Validate(); err != nil {
		return RecordActivityResponse{}, err
	}

	if event.Type == domain.EventRequestReceived {
		if err := c.Rotation.RecordRequestReceived(ctx, event.CoachID, event.Timestamp); err != nil {
			return RecordActivityResponse{}, fmt.Errorf("recording request received: %w", err)
		}
		metrics.EventsIngested.WithLabelValues(string(event.Type)).Inc()
		return RecordActivityResponse{Applied: true}, nil
	}

	engagementApplied, err := c.applyToEngagement(ctx, event)
	if err != nil {
		return RecordActivityResponse{}, err
	}

	ledgerApplied, err := c.applyToLedger(ctx, event)
	if err != nil {
		return RecordActivityResponse{}, err
	}

	applied := engagementApplied && ledgerApplied
	if !applied {
		metrics.StaleWritesDiscarded.Inc()
		logger.WarnContext(ctx, "discarded stale activity event",
			"coach_id", event.CoachID, "type", event.Type, "timestamp", event.Timestamp)
	} else {
		metrics.EventsIngested.WithLabelValues(string(event.Type)).Inc()
	}

	return RecordActivityResponse{Applied: applied}, nil
}

// applyToEngagement increments the month's counters. Events for an
// already-closed month, or older than the record's last write, are
// reported as not applied.
func (c *RecordActivity) applyToEngagement(ctx context.Context, event domain.ActivityEvent) (bool, error) {
	month := domain.YearMonthOf(event.Timestamp)

	rec, err := c.Engagement.GetEngagementRecord(ctx, event.CoachID, month)
	if errors.Is(err, domain.ErrEngagementRecordNotFound) {
		rec = domain.EngagementRecord{CoachID: event.CoachID, Month: month}
	} else if err != nil {
		return false, fmt.Errorf("getting engagement record: %w", err)
	}

	if rec.Closed || event.Timestamp.Before(rec.UpdatedAt) {
		return false, nil
	}

	switch event.Type {
	case domain.EventSessionCompleted:
		rec.SessionsCompleted++
	case domain.EventReviewSubmitted:
		rec.RecentReviewCount++
	case domain.EventPostPublished, domain.EventReactionAdded:
		rec.CommunityActivityCount++
	case domain.EventFreeCallConverted:
		// Conversions feed the rate supplied by the booking system;
		// no counter to bump here.
		return true, nil
	}

	rec.UpdatedAt = event.Timestamp
	err = c.Engagement.UpsertEngagementRecord(ctx, rec)
	if errors.Is(err, domain.ErrStaleWrite) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("upserting engagement record: %w", err)
	}
	return true, nil
}

// applyToLedger awards reputation points and advances post counts and
// streaks.
func (c *RecordActivity) applyToLedger(ctx context.Context, event domain.ActivityEvent) (bool, error) {
	ledger, err := c.Reputation.GetReputationLedger(ctx, event.CoachID)
	if errors.Is(err, domain.ErrLedgerNotFound) {
		ledger = domain.ReputationLedger{CoachID: event.CoachID, Standing: domain.StandingActive}
	} else if err != nil {
		return false, fmt.Errorf("getting reputation ledger: %w", err)
	}

	if event.Timestamp.Before(ledger.UpdatedAt) {
		return false, nil
	}

	ledger.TotalPoints += c.Config.Points.PointsFor(event.Type)
	if event.Type == domain.EventPostPublished {
		ledger.MonthlyPostCount++
	}
	ledger.StreakDays = nextStreak(ledger.StreakDays, ledger.LastActivityAt, event.Timestamp)
	ledger.LastActivityAt = event.Timestamp
	ledger.UpdatedAt = event.Timestamp

	err = c.Reputation.UpsertReputationLedger(ctx, ledger)
	if errors.Is(err, domain.ErrStaleWrite) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("upserting reputation ledger: %w", err)
	}
	return true, nil
}

// nextStreak advances the daily activity streak: same UTC day keeps
// it, the following day extends it, any gap restarts at one.
func nextStreak(current int, lastActivity, now time.Time) int {
	if lastActivity.IsZero() {
		return 1
	}

	lastDay := lastActivity.UTC().Truncate(24 * time.Hour)
	today := now.UTC().Truncate(24 * time.Hour)

	switch today.Sub(lastDay) {
	case 0:
		return current
	case 24 * time.Hour:
		return current + 1
	default:
		return 1
	}
}
