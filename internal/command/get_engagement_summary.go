package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coachably/ranking-engine/internal/datasources"
	"github.com/coachably/ranking-engine/internal/domain"
)

// GetEngagementSummaryRequest is the request for the
// GetEngagementSummary command. A zero Month means the current month.
type GetEngagementSummaryRequest struct {
	CoachID string
	Month   domain.YearMonth
}

// GetEngagementSummaryResponse is the response from the
// GetEngagementSummary command.
type GetEngagementSummaryResponse struct {
	Score  domain.EngagementScore
	Record domain.EngagementRecord
}

// GetEngagementSummaryConfig holds the engagement formula
// configuration.
type GetEngagementSummaryConfig struct {
	Weights domain.EngagementWeights
}

// GetEngagementSummary serves a coach's engagement score and underlying
// counters for their dashboard.
type GetEngagementSummary struct {
	Coaches    datasources.CoachGetter
	Engagement datasources.EngagementRecordGetter
	Config     GetEngagementSummaryConfig
}

// NewGetEngagementSummary creates a properly initialized
// GetEngagementSummary command.
func NewGetEngagementSummary(
	coaches datasources.CoachGetter,
	engagement datasources.EngagementRecordGetter,
	config GetEngagementSummaryConfig,
) *GetEngagementSummary {
	return &GetEngagementSummary{Coaches: coaches, Engagement: engagement, Config: config}
}

// Execute returns the month's score. A known coach with no recorded
// activity scores zero; that is a valid state, not an error. An unknown
// coach surfaces domain.ErrCoachNotFound.
func (c *GetEngagementSummary) Execute(
	ctx context.Context, req GetEngagementSummaryRequest,
) (GetEngagementSummaryResponse, error) {
	month := req.Month
	if month == "" {
		month = domain.YearMonthOf(time.Now().UTC())
	}
	if !month.IsValid() {
		return GetEngagementSummaryResponse{}, fmt.Errorf("invalid month %q", month)
	}

	if _, err := c.Coaches.GetCoach(ctx, req.CoachID); err != nil {
		return GetEngagementSummaryResponse{}, fmt.Errorf("getting coach: %w", err)
	}

	rec, err := c.Engagement.GetEngagementRecord(ctx, req.CoachID, month)
	if errors.Is(err, domain.ErrEngagementRecordNotFound) {
		rec = domain.EngagementRecord{CoachID: req.CoachID, Month: month}
	} else if err != nil {
		return GetEngagementSummaryResponse{}, fmt.Errorf("getting engagement record: %w", err)
	}

	return GetEngagementSummaryResponse{
		Score: domain.EngagementScore{
			CoachID: req.CoachID,
			Month:   month,
			Score:   domain.ScoreEngagement(rec, c.Config.Weights),
			Closed:  rec.Closed,
		},
		Record: rec,
	}, nil
}
