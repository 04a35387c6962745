package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/coachably/ranking-engine/internal/command"
	"github.com/coachably/ranking-engine/internal/domain"
)

// RankingGetResponse is the JSON response for a ranking request.
type RankingGetResponse struct {
	RequestID string                 `json:"request_id"`
	CoacheeID string                 `json:"coachee_id"`
	FromCache bool                   `json:"from_cache"`
	Results   []domain.RankingResult `json:"results"`
}

// RankingGet handles GET /v1/coachees/{coachee_id}/ranking.
type RankingGet struct {
	Ranker *command.RankCoaches
}

func (c RankingGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	vars := mux.Vars(r)
	coacheeID := vars["coachee_id"]

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	refresh := false
	if rawRefresh := r.URL.Query().Get("refresh"); rawRefresh != "" {
		parsed, err := strconv.ParseBool(rawRefresh)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		refresh = parsed
	}

	result, err := c.Ranker.Execute(ctx, command.RankCoachesRequest{
		CoacheeID: coacheeID,
		Limit:     limit,
		Refresh:   refresh,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCoacheeRequestNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to rank coaches", "coachee_id", coacheeID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RankingGetResponse{
		RequestID: uuid.New().String(),
		CoacheeID: coacheeID,
		FromCache: result.FromCache,
		Results:   result.Results,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write ranking response", "error", err)
	}
}
