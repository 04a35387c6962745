package datasources

import (
	"context"
	"time"

	"github.com/coachably/ranking-engine/internal/domain"
)

// DashboardTokenCreator creates a new dashboard access token.
type DashboardTokenCreator interface {
	CreateDashboardToken(
		ctx context.Context,
		id, userID, tokenHash, tokenPrefix string,
		name *string,
		expiresAt *time.Time,
	) error
}

// DashboardTokenByHashGetter retrieves a token by its hash.
type DashboardTokenByHashGetter interface {
	GetDashboardTokenByHash(ctx context.Context, tokenHash string) (domain.DashboardToken, error)
}

// DashboardTokenLastUsedUpdater updates the last_used_at timestamp.
type DashboardTokenLastUsedUpdater interface {
	UpdateDashboardTokenLastUsed(ctx context.Context, tokenID string) error
}

// UserDashboardTokenCounter counts a user's active dashboard tokens.
type UserDashboardTokenCounter interface {
	CountUserActiveDashboardTokens(ctx context.Context, userID string) (int, error)
}

// DashboardTokenRepository combines the dashboard token operations.
type DashboardTokenRepository interface {
	DashboardTokenCreator
	DashboardTokenByHashGetter
	DashboardTokenLastUsedUpdater
	UserDashboardTokenCounter
}
