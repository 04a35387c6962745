package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/coachably/ranking-engine/internal/command"
	"github.com/coachably/ranking-engine/internal/domain"
)

// ReputationGetResponse is the JSON response for a reputation summary.
type ReputationGetResponse struct {
	Ledger domain.ReputationLedger `json:"ledger"`
	Tier   domain.Tier             `json:"tier"`
}

// ReputationGet handles GET /v1/coaches/{coach_id}/reputation.
type ReputationGet struct {
	Summary *command.GetReputationSummary
}

func (c ReputationGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	vars := mux.Vars(r)
	coachID := vars["coach_id"]

	result, err := c.Summary.Execute(ctx, command.GetReputationSummaryRequest{CoachID: coachID})
	if err != nil {
		if errors.Is(err, domain.ErrLedgerNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to get reputation summary", "coach_id", coachID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ReputationGetResponse{
		Ledger: result.Ledger,
		Tier:   result.Tier,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write reputation response", "error", err)
	}
}
