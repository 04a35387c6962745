package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/coachably/ranking-engine/internal/domain"
)

func (r *Repository) CreateDashboardToken(
	ctx context.Context,
	id, userID, tokenHash, tokenPrefix string,
	name *string,
	expiresAt *time.Time,
) error {
	var dbName sql.NullString
	if name != nil {
		dbName = sql.NullString{String: *name, Valid: true}
	}
	var dbExpires sql.NullTime
	if expiresAt != nil {
		dbExpires = sql.NullTime{Time: *expiresAt, Valid: true}
	}

	ib := sqlbuilder.InsertInto("dashboard_tokens")
	ib.Cols("id", "user_id", "token_hash", "token_prefix", "name", "created_at", "expires_at")
	ib.Values(id, userID, tokenHash, tokenPrefix, dbName, time.Now().UTC(), dbExpires)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("creating dashboard token: %w", err)
	}
	return nil
}

func (r *Repository) GetDashboardTokenByHash(ctx context.Context, tokenHash string) (domain.DashboardToken, error) {
	sb := sqlbuilder.Select(
		"id", "user_id", "token_hash", "token_prefix", "name",
		"created_at", "last_used_at", "expires_at", "revoked_at",
	)
	sb.From("dashboard_tokens")
	sb.Where(sb.Equal("token_hash", tokenHash))

	var (
		token                            domain.DashboardToken
		name                             sql.NullString
		lastUsedAt, expiresAt, revokedAt sql.NullTime
	)
	query, args := sb.Build()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&token.ID, &token.UserID, &token.TokenHash, &token.Prefix, &name,
		&token.CreatedAt, &lastUsedAt, &expiresAt, &revokedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DashboardToken{}, domain.ErrDashboardTokenNotFound
	}
	if err != nil {
		return domain.DashboardToken{}, fmt.Errorf("fetching dashboard token by hash: %w", err)
	}

	if name.Valid {
		token.Name = &name.String
	}
	if lastUsedAt.Valid {
		token.LastUsedAt = &lastUsedAt.Time
	}
	if expiresAt.Valid {
		token.ExpiresAt = &expiresAt.Time
	}
	if revokedAt.Valid {
		token.RevokedAt = &revokedAt.Time
	}

	return token, nil
}

func (r *Repository) CountUserActiveDashboardTokens(ctx context.Context, userID string) (int, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("dashboard_tokens")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.IsNull("revoked_at"),
		sb.Or(sb.IsNull("expires_at"), sb.GreaterThan("expires_at", time.Now().UTC())),
	)

	var count int
	query, args := sb.Build()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active dashboard tokens: %w", err)
	}
	return count, nil
}

func (r *Repository) UpdateDashboardTokenLastUsed(ctx context.Context, tokenID string) error {
	ub := sqlbuilder.Update("dashboard_tokens")
	ub.Set(ub.Assign("last_used_at", time.Now().UTC()))
	ub.Where(ub.Equal("id", tokenID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating dashboard token last used: %w", err)
	}
	return nil
}
