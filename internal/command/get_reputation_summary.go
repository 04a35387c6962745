package command

import (
	"context"
	"fmt"

	"github.com/coachably/ranking-engine/internal/datasources"
	"github.com/coachably/ranking-engine/internal/domain"
)

// GetReputationSummaryRequest is the request for the
// GetReputationSummary command.
type GetReputationSummaryRequest struct {
	CoachID string
}

// GetReputationSummaryResponse is the response from the
// GetReputationSummary command.
type GetReputationSummaryResponse struct {
	Ledger domain.ReputationLedger
	Tier   domain.Tier
}

// GetReputationSummaryConfig holds the tier boundary configuration.
type GetReputationSummaryConfig struct {
	Tiers domain.TierThresholds
}

// GetReputationSummary serves a coach's reputation ledger and derived
// tier for their dashboard.
type GetReputationSummary struct {
	Reputation datasources.ReputationLedgerGetter
	Config     GetReputationSummaryConfig
}

// NewGetReputationSummary creates a properly initialized
// GetReputationSummary command.
func NewGetReputationSummary(
	reputation datasources.ReputationLedgerGetter,
	config GetReputationSummaryConfig,
) *GetReputationSummary {
	return &GetReputationSummary{Reputation: reputation, Config: config}
}

// Execute returns the coach's ledger. Unknown coaches surface
// domain.ErrLedgerNotFound.
func (c *GetReputationSummary) Execute(
	ctx context.Context, req GetReputationSummaryRequest,
) (GetReputationSummaryResponse, error) {
	ledger, err := c.Reputation.GetReputationLedger(ctx, req.CoachID)
	if err != nil {
		return GetReputationSummaryResponse{}, fmt.Errorf("getting reputation ledger: %w", err)
	}

	return GetReputationSummaryResponse{
		Ledger: ledger,
		Tier:   ledger.Tier(c.Config.Tiers),
	}, nil
}
