package command

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coachably/ranking-engine/internal/datasources"
)

// DashboardTokenPrefix is the prefix for dashboard tokens in the
// Authorization header.
const DashboardTokenPrefix = "coach_dash|"

// MaxDashboardTokensPerUser is the maximum number of active tokens a
// user can have.
const MaxDashboardTokensPerUser = 10

// ErrTokenLimitExceeded is returned when a user has reached the maximum
// number of active tokens.
var ErrTokenLimitExceeded = errors.New("user has reached maximum number of active tokens")

// CreateDashboardTokenRequest is the request for the
// CreateDashboardToken command.
type CreateDashboardTokenRequest struct {
	UserID    string
	Name      *string
	ExpiresAt *time.Time
}

// CreateDashboardTokenResponse is the response from the
// CreateDashboardToken command. FullToken is only ever returned here;
// the store keeps a hash.
type CreateDashboardTokenResponse struct {
	TokenID   string
	FullToken string
	Prefix    string
}

// CreateDashboardToken handles creating new dashboard access tokens.
type CreateDashboardToken struct {
	TokenCounter datasources.UserDashboardTokenCounter
	TokenCreator datasources.DashboardTokenCreator
}

// NewCreateDashboardToken creates a properly initialized
// CreateDashboardToken command.
func NewCreateDashboardToken(
	tokenCounter datasources.UserDashboardTokenCounter,
	tokenCreator datasources.DashboardTokenCreator,
) *CreateDashboardToken {
	return &CreateDashboardToken{
		TokenCounter: tokenCounter,
		TokenCreator: tokenCreator,
	}
}

// Execute creates a new dashboard token for the user.
func (c *CreateDashboardToken) Execute(
	ctx context.Context, req CreateDashboardTokenRequest,
) (CreateDashboardTokenResponse, error) {
	count, err := c.TokenCounter.CountUserActiveDashboardTokens(ctx, req.UserID)
	if err != nil {
		return CreateDashboardTokenResponse{}, fmt.Errorf("counting user tokens: %w", err)
	}

	if count >= MaxDashboardTokensPerUser {
		return CreateDashboardTokenResponse{}, ErrTokenLimitExceeded
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return CreateDashboardTokenResponse{}, fmt.Errorf("generating random token: %w", err)
	}

	tokenHex := hex.EncodeToString(tokenBytes)
	fullToken := DashboardTokenPrefix + tokenHex

	hash := sha256.Sum256([]byte(fullToken))
	tokenHash := hex.EncodeToString(hash[:])

	tokenPrefix := tokenHex[:8]
	tokenID := uuid.New().String()

	if err := c.TokenCreator.CreateDashboardToken(
		ctx, tokenID, req.UserID, tokenHash, tokenPrefix, req.Name, req.ExpiresAt,
	); err != nil {
		return CreateDashboardTokenResponse{}, fmt.Errorf("creating token: %w", err)
	}

	return CreateDashboardTokenResponse{
		TokenID:   tokenID,
		FullToken: fullToken,
		Prefix:    tokenPrefix,
	}, nil
}
