package controller

import (
	"encoding/json"
	"net/http"

	"github.com/coachably/ranking-engine/internal/command"
	"github.com/coachably/ranking-engine/internal/domain"
)

// EventsCreateResponse is the JSON response for an ingested event.
// Applied is false when the event lost last-write-wins against already
// stored state and was discarded.
type EventsCreateResponse struct {
	Applied bool `json:"applied"`
}

// EventsCreate handles POST /v1/events, ingesting one activity feed
// event per request.
type EventsCreate struct {
	Recorder *command.RecordActivity
}

func (c EventsCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var event domain.ActivityEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		logger.ErrorContext(ctx, "unable to parse event body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := event.Validate(); err != nil {
		logger.ErrorContext(ctx, "invalid event", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if encErr := json.NewEncoder(w).Encode(map[string]string{
			"error": err.Error(),
		}); encErr != nil {
			logger.ErrorContext(ctx, "unable to write error response", "error", encErr)
		}
		return
	}

	result, err := c.Recorder.Execute(ctx, command.RecordActivityRequest{Event: event})
	if err != nil {
		logger.ErrorContext(ctx, "unable to record activity",
			"coach_id", event.CoachID, "type", event.Type, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)

	if err := json.NewEncoder(w).Encode(EventsCreateResponse{Applied: result.Applied}); err != nil {
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
