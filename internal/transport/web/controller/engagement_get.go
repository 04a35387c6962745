package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/coachably/ranking-engine/internal/command"
	"github.com/coachably/ranking-engine/internal/domain"
)

// EngagementGetResponse is the JSON response for an engagement summary.
type EngagementGetResponse struct {
	Score  domain.EngagementScore  `json:"score"`
	Record domain.EngagementRecord `json:"record"`
}

// EngagementGet handles GET /v1/coaches/{coach_id}/engagement.
type EngagementGet struct {
	Summary *command.GetEngagementSummary
}

func (c EngagementGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	vars := mux.Vars(r)
	coachID := vars["coach_id"]

	month := domain.YearMonth(r.URL.Query().Get("month"))
	if month != "" && !month.IsValid() {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.Summary.Execute(ctx, command.GetEngagementSummaryRequest{
		CoachID: coachID,
		Month:   month,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCoachNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to get engagement summary", "coach_id", coachID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(EngagementGetResponse{
		Score:  result.Score,
		Record: result.Record,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write engagement response", "error", err)
	}
}
