package command

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachably/ranking-engine/internal/datasources/mocks"
)

func TestCreateDashboardToken_Execute(t *testing.T) {
	creator := mocks.NewMockDashboardTokenCreator(t)
	creator.EXPECT().CreateDashboardToken(
		mock.Anything, mock.Anything, "user-1", mock.Anything, mock.Anything, (*string)(nil), mock.Anything,
	).Return(nil)

	counter := mocks.NewMockUserDashboardTokenCounter(t)
	counter.EXPECT().CountUserActiveDashboardTokens(mock.Anything, "user-1").Return(0, nil)

	cmd := NewCreateDashboardToken(counter, creator)

	resp, err := cmd.Execute(context.Background(), CreateDashboardTokenRequest{UserID: "user-1"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.FullToken, DashboardTokenPrefix))
	assert.Len(t, resp.Prefix, 8)
	assert.NotEmpty(t, resp.TokenID)

	// The stored hash must match the returned token.
	hash := sha256.Sum256([]byte(resp.FullToken))
	wantHash := hex.EncodeToString(hash[:])
	creator.AssertCalled(t, "CreateDashboardToken",
		mock.Anything, resp.TokenID, "user-1", wantHash, resp.Prefix, (*string)(nil), mock.Anything)
}

func TestCreateDashboardToken_Execute_TokensAreUnique(t *testing.T) {
	creator := mocks.NewMockDashboardTokenCreator(t)
	creator.EXPECT().CreateDashboardToken(
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(nil)

	counter := mocks.NewMockUserDashboardTokenCounter(t)
	counter.EXPECT().CountUserActiveDashboardTokens(mock.Anything, "user-1").Return(0, nil)

	cmd := NewCreateDashboardToken(counter, creator)

	first, err := cmd.Execute(context.Background(), CreateDashboardTokenRequest{UserID: "user-1"})
	require.NoError(t, err)
	second, err := cmd.Execute(context.Background(), CreateDashboardTokenRequest{UserID: "user-1"})
	require.NoError(t, err)

	assert.NotEqual(t, first.FullToken, second.FullToken)
	assert.NotEqual(t, first.TokenID, second.TokenID)
}

func TestCreateDashboardToken_Execute_LimitExceeded(t *testing.T) {
	counter := mocks.NewMockUserDashboardTokenCounter(t)
	counter.EXPECT().CountUserActiveDashboardTokens(mock.Anything, "user-1").
		Return(MaxDashboardTokensPerUser, nil)

	cmd := NewCreateDashboardToken(counter, mocks.NewMockDashboardTokenCreator(t))

	_, err := cmd.Execute(context.Background(), CreateDashboardTokenRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrTokenLimitExceeded)
}
