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

func (r *Repository) GetRotationState(ctx context.Context, coachID, date string) (domain.RotationState, error) {
	sb := rotationSelect()
	sb.Where(sb.Equal("coach_id", coachID), sb.Equal("date", date))

	query, args := sb.Build()
	state, err := scanRotationState(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RotationState{}, domain.ErrRotationStateNotFound
	}
	if err != nil {
		return domain.RotationState{}, fmt.Errorf("fetching rotation state %s/%s: %w", coachID, date, err)
	}
	return state, nil
}

// UpsertRotationState stores a day's rotation state, rejecting writes
// older than the stored row.
func (r *Repository) UpsertRotationState(ctx context.Context, state domain.RotationState) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sb := sqlbuilder.Select("updated_at")
	sb.From("rotation_states")
	sb.Where(sb.Equal("coach_id", state.CoachID), sb.Equal("date", state.Date))
	query, args := sb.Build()

	var storedAt time.Time
	err = tx.QueryRowContext(ctx, query+" FOR UPDATE", args...).Scan(&storedAt)
	exists := true
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
	} else if err != nil {
		return fmt.Errorf("fetching current rotation state: %w", err)
	}

	var lastRequest sql.NullTime
	if state.LastRequestReceivedAt != nil {
		lastRequest = sql.NullTime{Time: *state.LastRequestReceivedAt, Valid: true}
	}

	if exists {
		if storedAt.After(state.UpdatedAt) {
			return domain.ErrStaleWrite
		}

		ub := sqlbuilder.Update("rotation_states")
		ub.Set(
			ub.Assign("daily_boost", state.DailyBoost),
			ub.Assign("inactivity_boost_active", state.InactivityBoostActive),
			ub.Assign("rotation_score", state.RotationScore),
			ub.Assign("last_request_received_at", lastRequest),
			ub.Assign("updated_at", state.UpdatedAt),
		)
		ub.Where(ub.Equal("coach_id", state.CoachID), ub.Equal("date", state.Date))
		query, args = ub.Build()
	} else {
		ib := sqlbuilder.InsertInto("rotation_states")
		ib.Cols(
			"coach_id", "date", "daily_boost", "inactivity_boost_active",
			"rotation_score", "last_request_received_at", "updated_at",
		)
		ib.Values(
			state.CoachID, state.Date, state.DailyBoost, state.InactivityBoostActive,
			state.RotationScore, lastRequest, state.UpdatedAt,
		)
		query, args = ib.Build()
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing rotation state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListRecentRotationScores returns the most recent daily scores for a
// coach, ordered oldest first.
func (r *Repository) ListRecentRotationScores(ctx context.Context, coachID string, days int) ([]float64, error) {
	sb := sqlbuilder.Select("rotation_score")
	sb.From("rotation_states")
	sb.Where(sb.Equal("coach_id", coachID))
	sb.OrderBy("date DESC")
	sb.Limit(days)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running rotation scores query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var scores []float64
	for rows.Next() {
		var score float64
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("scanning rotation score: %w", err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rotation scores: %w", err)
	}

	reverse(scores)
	return scores, nil
}

// RecordRequestReceived records an incoming coaching request. The
// stored timestamp only moves forward; out-of-order events cannot
// rewind the inactivity clock.
func (r *Repository) RecordRequestReceived(ctx context.Context, coachID string, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sb := sqlbuilder.Select("received_at")
	sb.From("coach_last_requests")
	sb.Where(sb.Equal("coach_id", coachID))
	query, args := sb.Build()

	var storedAt time.Time
	err = tx.QueryRowContext(ctx, query+" FOR UPDATE", args...).Scan(&storedAt)
	exists := true
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
	} else if err != nil {
		return fmt.Errorf("fetching last request mark: %w", err)
	}

	switch {
	case exists && !at.After(storedAt):
		// Keep the later timestamp.
	case exists:
		ub := sqlbuilder.Update("coach_last_requests")
		ub.Set(ub.Assign("received_at", at))
		ub.Where(ub.Equal("coach_id", coachID))
		query, args = ub.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("updating last request mark: %w", err)
		}
	default:
		ib := sqlbuilder.InsertInto("coach_last_requests")
		ib.Cols("coach_id", "received_at")
		ib.Values(coachID, at)
		query, args = ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting last request mark: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) GetLastRequestReceived(ctx context.Context, coachID string) (*time.Time, error) {
	sb := sqlbuilder.Select("received_at")
	sb.From("coach_last_requests")
	sb.Where(sb.Equal("coach_id", coachID))

	query, args := sb.Build()
	var receivedAt time.Time
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&receivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching last request for %s: %w", coachID, err)
	}
	return &receivedAt, nil
}

func rotationSelect() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.Select(
		"coach_id", "date", "daily_boost", "inactivity_boost_active",
		"rotation_score", "last_request_received_at", "updated_at",
	)
	sb.From("rotation_states")
	return sb
}

func scanRotationState(row rowScanner) (domain.RotationState, error) {
	var (
		state       domain.RotationState
		lastRequest sql.NullTime
	)
	err := row.Scan(
		&state.CoachID, &state.Date, &state.DailyBoost, &state.InactivityBoostActive,
		&state.RotationScore, &lastRequest, &state.UpdatedAt,
	)
	if err != nil {
		return domain.RotationState{}, err
	}
	if lastRequest.Valid {
		state.LastRequestReceivedAt = &lastRequest.Time
	}
	return state, nil
}

func reverse(values []float64) {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
}
