package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/coachably/ranking-engine/internal/datasources"
	"github.com/coachably/ranking-engine/internal/domain"
)

var (
	_ datasources.CoachDirectory           = (*Repository)(nil)
	_ datasources.CoacheeRequestGetter     = (*Repository)(nil)
	_ datasources.EngagementStore          = (*Repository)(nil)
	_ datasources.ReputationStore          = (*Repository)(nil)
	_ datasources.RotationStore            = (*Repository)(nil)
	_ datasources.DashboardTokenRepository = (*Repository)(nil)
)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var coachColumns = []string{
	"id", "display_name", "specializations", "focus_topics",
	"addressed_problems", "target_audience", "style", "archetype",
	"mission", "session_modes", "chat_channels", "location",
	"hourly_rate", "rating", "review_count", "years_experience",
	"certifications", "status", "updated_at",
}

func (r *Repository) GetCoach(ctx context.Context, coachID string) (domain.CoachProfile, error) {
	sb := sqlbuilder.Select(coachColumns...)
	sb.From("coaches")
	sb.Where(sb.Equal("id", coachID))

	query, args := sb.Build()
	coach, err := scanCoach(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CoachProfile{}, domain.ErrCoachNotFound
	}
	if err != nil {
		return domain.CoachProfile{}, fmt.Errorf("fetching coach %s: %w", coachID, err)
	}
	return coach, nil
}

// ListRankableCoaches returns approved coaches that reputation decay
// has not hidden. Coaches with no ledger row yet are rankable.
func (r *Repository) ListRankableCoaches(ctx context.Context) ([]domain.CoachProfile, error) {
	cols := make([]string, 0, len(coachColumns))
	for _, col := range coachColumns {
		cols = append(cols, "c."+col)
	}

	sb := sqlbuilder.Select(cols...)
	sb.From("coaches c")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "reputation_ledgers l", "l.coach_id = c.id")
	sb.Where(
		sb.Equal("c.status", string(domain.CoachStatusApproved)),
		sb.Or(sb.IsNull("l.is_hidden"), sb.Equal("l.is_hidden", false)),
	)
	sb.OrderBy("c.id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running rankable coaches query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var coaches []domain.CoachProfile
	for rows.Next() {
		coach, err := scanCoach(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning coach: %w", err)
		}
		coaches = append(coaches, coach)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating coaches: %w", err)
	}

	return coaches, nil
}

func (r *Repository) ListApprovedCoachIDs(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.Select("id")
	sb.From("coaches")
	sb.Where(sb.Equal("status", string(domain.CoachStatusApproved)))
	sb.OrderBy("id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running approved coach IDs query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning coach ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating coach IDs: %w", err)
	}

	return ids, nil
}

func (r *Repository) GetCoacheeRequest(ctx context.Context, coacheeID string) (domain.CoacheeRequest, error) {
	sb := sqlbuilder.Select(
		"coachee_id", "area_scores", "selected_objectives", "archetype",
		"stated_values", "budget", "preferred_location", "preferred_mode",
		"preferred_channel",
	)
	sb.From("coachee_requests")
	sb.Where(sb.Equal("coachee_id", coacheeID))

	var (
		req                            domain.CoacheeRequest
		areaScores, objectives, values []byte
		budget                         sql.NullFloat64
		location, mode, channel        sql.NullString
	)
	query, args := sb.Build()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&req.CoacheeID, &areaScores, &objectives, &req.Archetype,
		&values, &budget, &location, &mode, &channel,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CoacheeRequest{}, domain.ErrCoacheeRequestNotFound
	}
	if err != nil {
		return domain.CoacheeRequest{}, fmt.Errorf("fetching coachee request %s: %w", coacheeID, err)
	}

	if err := decodeJSONColumn(areaScores, &req.AreaScores); err != nil {
		return domain.CoacheeRequest{}, fmt.Errorf("decoding area scores: %w", err)
	}
	if err := decodeJSONColumn(objectives, &req.SelectedObjectives); err != nil {
		return domain.CoacheeRequest{}, fmt.Errorf("decoding selected objectives: %w", err)
	}
	if err := decodeJSONColumn(values, &req.Values); err != nil {
		return domain.CoacheeRequest{}, fmt.Errorf("decoding values: %w", err)
	}
	if budget.Valid {
		req.Budget = &budget.Float64
	}
	if location.Valid {
		req.PreferredLocation = &location.String
	}
	if mode.Valid {
		m := domain.SessionMode(mode.String)
		req.PreferredMode = &m
	}
	if channel.Valid {
		req.PreferredChannel = &channel.String
	}

	return req, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoach(row rowScanner) (domain.CoachProfile, error) {
	var (
		coach                                   domain.CoachProfile
		specializations, focusTopics, problems  []byte
		audience, sessionModes, channels, certs []byte
		location                                sql.NullString
		hourlyRate                              sql.NullFloat64
	)

	err := row.Scan(
		&coach.ID, &coach.DisplayName, &specializations, &focusTopics,
		&problems, &audience, &coach.Style, &coach.Archetype,
		&coach.Mission, &sessionModes, &channels, &location,
		&hourlyRate, &coach.Rating, &coach.ReviewCount, &coach.YearsExperience,
		&certs, &coach.Status, &coach.UpdatedAt,
	)
	if err != nil {
		return domain.CoachProfile{}, err
	}

	jsonFields := []struct {
		data []byte
		dst  any
	}{
		{specializations, &coach.Specializations},
		{focusTopics, &coach.FocusTopics},
		{problems, &coach.AddressedProblems},
		{audience, &coach.TargetAudience},
		{sessionModes, &coach.SessionModes},
		{channels, &coach.ChatChannels},
		{certs, &coach.Certifications},
	}
	for _, f := range jsonFields {
		if err := decodeJSONColumn(f.data, f.dst); err != nil {
			return domain.CoachProfile{}, fmt.Errorf("decoding coach %s column: %w", coach.ID, err)
		}
	}

	if location.Valid {
		coach.Location = &location.String
	}
	if hourlyRate.Valid {
		coach.HourlyRate = &hourlyRate.Float64
	}

	return coach, nil
}

// decodeJSONColumn deserializes a JSON column, treating NULL and empty
// as the zero value.
func decodeJSONColumn(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
