package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/coachably/ranking-engine/internal/datasources"
	"github.com/coachably/ranking-engine/internal/domain"
	"github.com/coachably/ranking-engine/internal/metrics"
)

// RankCoachesRequest is the request for the RankCoaches command.
type RankCoachesRequest struct {
	CoacheeID string

	// Limit caps the number of returned coaches; zero means the
	// configured default.
	Limit int

	// Refresh drops any cached ranking for the coachee and recomputes.
	Refresh bool
}

// RankCoachesResponse is the response from the RankCoaches command.
type RankCoachesResponse struct {
	Results   []domain.RankingResult
	FromCache bool
}

// RankCoachesConfig holds the scoring formula configuration.
type RankCoachesConfig struct {
	Formula           domain.FormulaWeights
	MatchWeights      domain.MatchWeights
	EngagementWeights domain.EngagementWeights
	RotationPolicy    domain.RotationPolicy

	// DefaultLimit is how many coaches to return when the request does
	// not say.
	DefaultLimit int

	// ScoringConcurrency caps how many coaches are scored in parallel.
	ScoringConcurrency int
}

// RankCoaches computes the ranked coach list for one coachee: match
// quality against their assessment, current engagement, and the daily
// rotation boost, combined into a single 0-100 score.
type RankCoaches struct {
	Coaches          datasources.RankableCoachLister
	Requests         datasources.CoacheeRequestGetter
	Engagement       datasources.EngagementRecordGetter
	ClosedEngagement datasources.LatestClosedEngagementRecordGetter
	Rotation         datasources.RotationStateGetter
	LastRequests     datasources.LastRequestGetter
	Cache            datasources.RankingCache
	Config           RankCoachesConfig
}

// NewRankCoaches creates a properly initialized RankCoaches command.
func NewRankCoaches(
	coaches datasources.RankableCoachLister,
	requests datasources.CoacheeRequestGetter,
	engagement datasources.EngagementRecordGetter,
	closedEngagement datasources.LatestClosedEngagementRecordGetter,
	rotation datasources.RotationStateGetter,
	lastRequests datasources.LastRequestGetter,
	cache datasources.RankingCache,
	config RankCoachesConfig,
) *RankCoaches {
	return &RankCoaches{
		Coaches:          coaches,
		Requests:         requests,
		Engagement:       engagement,
		ClosedEngagement: closedEngagement,
		Rotation:         rotation,
		LastRequests:     lastRequests,
		Cache:            cache,
		Config:           config,
	}
}

// Execute ranks all rankable coaches for the coachee. Individual
// coaches with broken data are skipped; only infrastructure failures
// abort the computation.
func (c *RankCoaches) Execute(ctx context.Context, req RankCoachesRequest) (RankCoachesResponse, error) {
	logger := domain.LoggerFromContext(ctx)
	start := time.Now()

	limit := req.Limit
	if limit <= 0 {
		limit = c.Config.DefaultLimit
	}

	if req.Refresh {
		if err := c.Cache.InvalidateCachedRanking(ctx, req.CoacheeID); err != nil {
			logger.WarnContext(ctx, "ranking cache invalidation failed", "coachee_id", req.CoacheeID, "error", err)
		}
	} else {
		cached, hit, err := c.Cache.GetCachedRanking(ctx, req.CoacheeID)
		if err != nil {
			logger.WarnContext(ctx, "ranking cache read failed", "coachee_id", req.CoacheeID, "error", err)
		}
		if hit {
			metrics.RankingsServed.WithLabelValues("hit").Inc()
			return RankCoachesResponse{Results: trimRanking(cached, limit), FromCache: true}, nil
		}
	}

	coacheeReq, err := c.Requests.GetCoacheeRequest(ctx, req.CoacheeID)
	if err != nil {
		return RankCoachesResponse{}, fmt.Errorf("getting coachee request: %w", err)
	}

	coaches, err := c.Coaches.ListRankableCoaches(ctx)
	if err != nil {
		return RankCoachesResponse{}, fmt.Errorf("listing rankable coaches: %w", err)
	}

	results, err := c.scoreCoaches(ctx, coacheeReq, coaches)
	if err != nil {
		return RankCoachesResponse{}, err
	}

	domain.SortRanking(results)

	if err := c.Cache.SetCachedRanking(ctx, req.CoacheeID, results); err != nil {
		logger.WarnContext(ctx, "ranking cache write failed", "coachee_id", req.CoacheeID, "error", err)
	}

	metrics.RankingsServed.WithLabelValues("miss").Inc()
	metrics.RankingDuration.Observe(time.Since(start).Seconds())
	logger.InfoContext(ctx, "ranking computed",
		"coachee_id", req.CoacheeID, "candidates", len(coaches), "ranked", len(results))

	return RankCoachesResponse{Results: trimRanking(results, limit)}, nil
}

// scoreCoaches scores every candidate concurrently. Each worker writes
// only its own slot, so no locking is needed.
func (c *RankCoaches) scoreCoaches(
	ctx context.Context, coacheeReq domain.CoacheeRequest, coaches []domain.CoachProfile,
) ([]domain.RankingResult, error) {
	logger := domain.LoggerFromContext(ctx)
	now := time.Now().UTC()
	month := domain.YearMonthOf(now)

	scored := make([]domain.RankingResult, len(coaches))
	skipped := make([]bool, len(coaches))

	g, gctx := errgroup.WithContext(ctx)
	if c.Config.ScoringConcurrency > 0 {
		g.SetLimit(c.Config.ScoringConcurrency)
	}

	for i, coach := range coaches {
		g.Go(func() error {
			if !coach.HasIdentity() {
				skipped[i] = true
				return nil
			}

			result, err := c.scoreCoach(gctx, coacheeReq, coach, month, now)
			if err != nil {
				logger.WarnContext(gctx, "skipping coach in ranking", "coach_id", coach.ID, "error", err)
				skipped[i] = true
				return nil
			}

			scored[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring coaches: %w", err)
	}

	results := make([]domain.RankingResult, 0, len(scored))
	for i, result := range scored {
		if !skipped[i] {
			results = append(results, result)
		}
	}
	return results, nil
}

func (c *RankCoaches) scoreCoach(
	ctx context.Context,
	coacheeReq domain.CoacheeRequest,
	coach domain.CoachProfile,
	month domain.YearMonth,
	now time.Time,
) (domain.RankingResult, error) {
	match := domain.ScoreMatch(coach, coacheeReq, c.Config.MatchWeights)

	engagement, err := c.engagementScore(ctx, coach.ID, month)
	if err != nil {
		return domain.RankingResult{}, err
	}

	rotation, err := c.rotationScore(ctx, coach.ID, now)
	if err != nil {
		return domain.RankingResult{}, err
	}

	return domain.RankingResult{
		CoachID:         coach.ID,
		DisplayName:     coach.DisplayName,
		MatchScore:      match.Score,
		EngagementScore: engagement,
		RotationScore:   rotation,
		FinalScore:      domain.CombineScores(match.Score, engagement, rotation, c.Config.Formula),
		ReviewCount:     coach.ReviewCount,
		MatchReasons:    match.Reasons,
	}, nil
}

// engagementScore is the live score for the current month. When the
// month has no record yet, early in a month before any activity
// accrues, the latest closed month stands in. A coach with no history
// at all scores zero rather than erroring.
func (c *RankCoaches) engagementScore(ctx context.Context, coachID string, month domain.YearMonth) (float64, error) {
	rec, err := c.Engagement.GetEngagementRecord(ctx, coachID, month)
	if errors.Is(err, domain.ErrEngagementRecordNotFound) {
		rec, err = c.ClosedEngagement.GetLatestClosedEngagementRecord(ctx, coachID)
		if errors.Is(err, domain.ErrEngagementRecordNotFound) {
			return 0, nil
		}
	}
	if err != nil {
		return 0, fmt.Errorf("getting engagement record: %w", err)
	}
	return domain.ScoreEngagement(rec, c.Config.EngagementWeights), nil
}

// rotationScore prefers the precomputed daily state; when the rotation
// job has not run yet today it computes the same value directly.
func (c *RankCoaches) rotationScore(ctx context.Context, coachID string, now time.Time) (float64, error) {
	date := now.UTC().Format("2006-01-02")

	state, err := c.Rotation.GetRotationState(ctx, coachID, date)
	if err == nil {
		return state.RotationScore, nil
	}
	if !errors.Is(err, domain.ErrRotationStateNotFound) {
		return 0, fmt.Errorf("getting rotation state: %w", err)
	}

	lastRequest, err := c.LastRequests.GetLastRequestReceived(ctx, coachID)
	if err != nil {
		return 0, fmt.Errorf("getting last request: %w", err)
	}
	return c.Config.RotationPolicy.RotationScore(coachID, lastRequest, now).RotationScore, nil
}

func trimRanking(results []domain.RankingResult, limit int) []domain.RankingResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
