package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coachably/ranking-engine/internal/command"
	"github.com/coachably/ranking-engine/internal/transport/web/controller"
)

func MakeRouter(
	ranker *command.RankCoaches,
	engagementSummary *command.GetEngagementSummary,
	reputationSummary *command.GetReputationSummary,
	activityRecorder *command.RecordActivity,
	tokenCreator *command.CreateDashboardToken,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(metricsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/coachees/{coachee_id}/ranking", controller.RankingGet{
		Ranker: ranker,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/coaches/{coach_id}/engagement", requireAuthMiddleware(controller.EngagementGet{
		Summary: engagementSummary,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/coaches/{coach_id}/reputation", requireAuthMiddleware(controller.ReputationGet{
		Summary: reputationSummary,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/events", requireAuthMiddleware(controller.EventsCreate{
		Recorder: activityRecorder,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/dashboard-tokens", requireAuthMiddleware(controller.DashboardTokenCreate{
		CreateCmd: tokenCreator,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}
