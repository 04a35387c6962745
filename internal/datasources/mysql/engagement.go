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

func (r *Repository) GetEngagementRecord(
	ctx context.Context, coachID string, month domain.YearMonth,
) (domain.EngagementRecord, error) {
	sb := engagementSelect()
	sb.Where(sb.Equal("coach_id", coachID), sb.Equal("month", month.String()))

	query, args := sb.Build()
	rec, err := scanEngagementRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound
	}
	if err != nil {
		return domain.EngagementRecord{}, fmt.Errorf("fetching engagement record %s/%s: %w", coachID, month, err)
	}
	return rec, nil
}

// GetLatestClosedEngagementRecord returns the coach's most recent
// frozen month, so early-month rankings do not collapse to zero
// before any live activity accrues.
func (r *Repository) GetLatestClosedEngagementRecord(
	ctx context.Context, coachID string,
) (domain.EngagementRecord, error) {
	sb := engagementSelect()
	sb.Where(sb.Equal("coach_id", coachID), sb.Equal("closed", true))
	sb.OrderBy("month DESC")
	sb.Limit(1)

	query, args := sb.Build()
	rec, err := scanEngagementRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.EngagementRecord{}, domain.ErrEngagementRecordNotFound
	}
	if err != nil {
		return domain.EngagementRecord{}, fmt.Errorf("fetching latest closed engagement record %s: %w", coachID, err)
	}
	return rec, nil
}

// UpsertEngagementRecord stores a month's counters, rejecting writes
// older than the stored row and writes against a closed month.
func (r *Repository) UpsertEngagementRecord(ctx context.Context, rec domain.EngagementRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sb := sqlbuilder.Select("updated_at", "closed")
	sb.From("engagement_records")
	sb.Where(sb.Equal("coach_id", rec.CoachID), sb.Equal("month", rec.Month.String()))
	query, args := sb.Build()

	var (
		storedAt time.Time
		closed   bool
	)
	err = tx.QueryRowContext(ctx, query+" FOR UPDATE", args...).Scan(&storedAt, &closed)
	exists := true
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
	} else if err != nil {
		return fmt.Errorf("fetching current engagement record: %w", err)
	}

	if exists {
		if closed {
			return fmt.Errorf("engagement month %s already closed: %w", rec.Month, domain.ErrStaleWrite)
		}
		if storedAt.After(rec.UpdatedAt) {
			return domain.ErrStaleWrite
		}

		ub := sqlbuilder.Update("engagement_records")
		ub.Set(
			ub.Assign("sessions_completed", rec.SessionsCompleted),
			ub.Assign("response_rate", rec.ResponseRate),
			ub.Assign("recent_review_count", rec.RecentReviewCount),
			ub.Assign("community_activity_count", rec.CommunityActivityCount),
			ub.Assign("conversion_rate", rec.ConversionRate),
			ub.Assign("closed", rec.Closed),
			ub.Assign("updated_at", rec.UpdatedAt),
		)
		ub.Where(ub.Equal("coach_id", rec.CoachID), ub.Equal("month", rec.Month.String()))
		query, args = ub.Build()
	} else {
		ib := sqlbuilder.InsertInto("engagement_records")
		ib.Cols(
			"coach_id", "month", "sessions_completed", "response_rate",
			"recent_review_count", "community_activity_count",
			"conversion_rate", "closed", "updated_at",
		)
		ib.Values(
			rec.CoachID, rec.Month.String(), rec.SessionsCompleted, rec.ResponseRate,
			rec.RecentReviewCount, rec.CommunityActivityCount,
			rec.ConversionRate, rec.Closed, rec.UpdatedAt,
		)
		query, args = ib.Build()
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing engagement record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) ListOpenEngagementRecords(
	ctx context.Context, month domain.YearMonth,
) ([]domain.EngagementRecord, error) {
	sb := engagementSelect()
	sb.Where(sb.Equal("month", month.String()), sb.Equal("closed", false))
	sb.OrderBy("coach_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running open engagement records query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.EngagementRecord
	for rows.Next() {
		rec, err := scanEngagementRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning engagement record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating engagement records: %w", err)
	}

	return records, nil
}

// CloseEngagementMonth freezes every open record for the month and
// returns how many were closed.
func (r *Repository) CloseEngagementMonth(ctx context.Context, month domain.YearMonth) (int64, error) {
	ub := sqlbuilder.Update("engagement_records")
	ub.Set(
		ub.Assign("closed", true),
		ub.Assign("updated_at", time.Now().UTC()),
	)
	ub.Where(ub.Equal("month", month.String()), ub.Equal("closed", false))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("closing engagement month %s: %w", month, err)
	}

	closed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting closed records: %w", err)
	}
	return closed, nil
}

func engagementSelect() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.Select(
		"coach_id", "month", "sessions_completed", "response_rate",
		"recent_review_count", "community_activity_count",
		"conversion_rate", "closed", "updated_at",
	)
	sb.From("engagement_records")
	return sb
}

func scanEngagementRecord(row rowScanner) (domain.EngagementRecord, error) {
	var rec domain.EngagementRecord
	err := row.Scan(
		&rec.CoachID, &rec.Month, &rec.SessionsCompleted, &rec.ResponseRate,
		&rec.RecentReviewCount, &rec.CommunityActivityCount,
		&rec.ConversionRate, &rec.Closed, &rec.UpdatedAt,
	)
	return rec, err
}
