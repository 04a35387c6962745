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

func (r *Repository) GetReputationLedger(ctx context.Context, coachID string) (domain.ReputationLedger, error) {
	sb := ledgerSelect()
	sb.Where(sb.Equal("coach_id", coachID))

	query, args := sb.Build()
	ledger, err := scanLedger(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ReputationLedger{}, domain.ErrLedgerNotFound
	}
	if err != nil {
		return domain.ReputationLedger{}, fmt.Errorf("fetching reputation ledger %s: %w", coachID, err)
	}
	return ledger, nil
}

// UpsertReputationLedger stores a ledger, rejecting writes older than
// the stored row.
func (r *Repository) UpsertReputationLedger(ctx context.Context, ledger domain.ReputationLedger) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sb := sqlbuilder.Select("updated_at")
	sb.From("reputation_ledgers")
	sb.Where(sb.Equal("coach_id", ledger.CoachID))
	query, args := sb.Build()

	var storedAt time.Time
	err = tx.QueryRowContext(ctx, query+" FOR UPDATE", args...).Scan(&storedAt)
	exists := true
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
	} else if err != nil {
		return fmt.Errorf("fetching current reputation ledger: %w", err)
	}

	if exists {
		if storedAt.After(ledger.UpdatedAt) {
			return domain.ErrStaleWrite
		}

		ub := sqlbuilder.Update("reputation_ledgers")
		ub.Set(
			ub.Assign("total_points", ledger.TotalPoints),
			ub.Assign("standing", string(ledger.Standing)),
			ub.Assign("consecutive_inactive_months", ledger.ConsecutiveInactiveMonths),
			ub.Assign("is_hidden", ledger.IsHidden),
			ub.Assign("monthly_post_count", ledger.MonthlyPostCount),
			ub.Assign("streak_days", ledger.StreakDays),
			ub.Assign("last_activity_at", ledger.LastActivityAt),
			ub.Assign("updated_at", ledger.UpdatedAt),
		)
		ub.Where(ub.Equal("coach_id", ledger.CoachID))
		query, args = ub.Build()
	} else {
		ib := sqlbuilder.InsertInto("reputation_ledgers")
		ib.Cols(
			"coach_id", "total_points", "standing",
			"consecutive_inactive_months", "is_hidden",
			"monthly_post_count", "streak_days", "last_activity_at",
			"updated_at",
		)
		ib.Values(
			ledger.CoachID, ledger.TotalPoints, string(ledger.Standing),
			ledger.ConsecutiveInactiveMonths, ledger.IsHidden,
			ledger.MonthlyPostCount, ledger.StreakDays, ledger.LastActivityAt,
			ledger.UpdatedAt,
		)
		query, args = ib.Build()
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing reputation ledger: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) ListReputationLedgers(ctx context.Context) ([]domain.ReputationLedger, error) {
	sb := ledgerSelect()
	sb.OrderBy("coach_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running reputation ledgers query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ledgers []domain.ReputationLedger
	for rows.Next() {
		ledger, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reputation ledger: %w", err)
		}
		ledgers = append(ledgers, ledger)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reputation ledgers: %w", err)
	}

	return ledgers, nil
}

func ledgerSelect() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.Select(
		"coach_id", "total_points", "standing",
		"consecutive_inactive_months", "is_hidden", "monthly_post_count",
		"streak_days", "last_activity_at", "updated_at",
	)
	sb.From("reputation_ledgers")
	return sb
}

func scanLedger(row rowScanner) (domain.ReputationLedger, error) {
	var ledger domain.ReputationLedger
	err := row.Scan(
		&ledger.CoachID, &ledger.TotalPoints, &ledger.Standing,
		&ledger.ConsecutiveInactiveMonths, &ledger.IsHidden, &ledger.MonthlyPostCount,
		&ledger.StreakDays, &ledger.LastActivityAt, &ledger.UpdatedAt,
	)
	return ledger, err
}
