package command

import (
	"context"
	"fmt"
	"time"

	"github.com/coachably/ranking-engine/internal/datasources"
	"github.com/coachably/ranking-engine/internal/domain"
)

// CloseEngagementMonthRequest is the request for the
// CloseEngagementMonth command. A zero Month means the previous
// calendar month.
type CloseEngagementMonthRequest struct {
	Month domain.YearMonth
}

// CloseEngagementMonthResponse is the response from the
// CloseEngagementMonth command.
type CloseEngagementMonthResponse struct {
	Month         domain.YearMonth
	RecordsClosed int64
}

// CloseEngagementMonth freezes a month's engagement records so late
// events can no longer mutate them. Runs from a scheduled job at the
// start of each month.
type CloseEngagementMonth struct {
	Closer datasources.EngagementMonthCloser
}

// NewCloseEngagementMonth creates a properly initialized
// CloseEngagementMonth command.
func NewCloseEngagementMonth(closer datasources.EngagementMonthCloser) *CloseEngagementMonth {
	return &CloseEngagementMonth{Closer: closer}
}

// Execute closes the requested month. Closing is idempotent: already
// closed records are left untouched.
func (c *CloseEngagementMonth) Execute(
	ctx context.Context, req CloseEngagementMonthRequest,
) (CloseEngagementMonthResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	month := req.Month
	if month == "" {
		now := time.Now().UTC()
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		month = domain.YearMonthOf(firstOfMonth.AddDate(0, -1, 0))
	}
	if !month.IsValid() {
		return CloseEngagementMonthResponse{}, fmt.Errorf("invalid month %q", month)
	}

	closed, err := c.Closer.CloseEngagementMonth(ctx, month)
	if err != nil {
		return CloseEngagementMonthResponse{}, fmt.Errorf("closing engagement month: %w", err)
	}

	logger.InfoContext(ctx, "engagement month closed", "month", month, "records_closed", closed)

	return CloseEngagementMonthResponse{Month: month, RecordsClosed: closed}, nil
}
