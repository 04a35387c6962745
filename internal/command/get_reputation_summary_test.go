package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachably/ranking-engine/internal/datasources/mocks"
	"github.com/coachably/ranking-engine/internal/domain"
)

func TestGetReputationSummary_Execute(t *testing.T) {
	ledger := domain.ReputationLedger{
		CoachID:     "coach-1",
		TotalPoints: 1700,
		Standing:    domain.StandingActive,
		StreakDays:  12,
	}

	reputation := mocks.NewMockReputationLedgerGetter(t)
	reputation.EXPECT().GetReputationLedger(mock.Anything, "coach-1").Return(ledger, nil)

	cmd := NewGetReputationSummary(reputation, GetReputationSummaryConfig{Tiers: domain.DefaultTierThresholds()})

	resp, err := cmd.Execute(context.Background(), GetReputationSummaryRequest{CoachID: "coach-1"})
	require.NoError(t, err)

	assert.Equal(t, ledger, resp.Ledger)
	assert.Equal(t, domain.TierGold, resp.Tier)
}

func TestGetReputationSummary_Execute_NotFound(t *testing.T) {
	reputation := mocks.NewMockReputationLedgerGetter(t)
	reputation.EXPECT().GetReputationLedger(mock.Anything, "nobody").
		Return(domain.ReputationLedger{}, domain.ErrLedgerNotFound)

	cmd := NewGetReputationSummary(reputation, GetReputationSummaryConfig{Tiers: domain.DefaultTierThresholds()})

	_, err := cmd.Execute(context.Background(), GetReputationSummaryRequest{CoachID: "nobody"})
	assert.ErrorIs(t, err, domain.ErrLedgerNotFound)
}
