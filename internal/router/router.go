package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/petpsych/behavior-analysis-api/internal/config"
	"github.com/petpsych/behavior-analysis-api/internal/handlers"
	"github.com/petpsych/behavior-analysis-api/internal/middleware"
	"github.com/petpsych/behavior-analysis-api/internal/services"
	"github.com/petpsych/behavior-analysis-api/internal/utils"
	"github.com/petpsych/behavior-analysis-api/web"
)

func NewRouter(svc services.AnalysisService, cfg *config.Config, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.SecurityHeaders)

	h := handlers.NewAnalysisHandler(svc, cfg, logger)

	r.HandleFunc("/", web.Page("index.html")).Methods(http.MethodGet)
	r.HandleFunc("/analysis", web.Page("analysis.html")).Methods(http.MethodGet)

	r.HandleFunc("/analyze_behavior", h.AnalyzeBehavior).Methods(http.MethodPost)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", h.Stats).Methods(http.MethodGet)

	r.NotFoundHandler = withDefaultMiddleware(http.HandlerFunc(h.NotFound), logger)

	return r
}

// withDefaultMiddleware applies the common chain to handlers that bypass the
// router's Use list (mux does not run middleware for NotFoundHandler).
func withDefaultMiddleware(h http.Handler, logger *utils.Logger) http.Handler {
	return middleware.RequestID(middleware.Logging(logger)(middleware.SecurityHeaders(h)))
}
