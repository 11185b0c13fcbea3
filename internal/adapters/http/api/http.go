// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heavenike02/sdg-showcase-3/internal/adapters/repository"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/profile"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/search"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/summary"
	"github.com/heavenike02/sdg-showcase-3/pkg/metrics"
)

// Profile and Card mirror the read shapes returned by profile queries.
type (
	Profile = profile.Profile
	Card    = profile.Card
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Search returns records matching the query in store order.
	Search(ctx context.Context, p search.Params) ([]model.ResearcherRecord, error)

	// Profile returns the formatted profile for one researcher.
	Profile(ctx context.Context, id string) (Profile, error)

	// Related returns researchers similar to the given one.
	Related(ctx context.Context, id string, limit int) ([]model.ResearcherRecord, error)

	// Summary returns the population-wide SDG aggregation.
	Summary(ctx context.Context) ([]summary.SDGSummary, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	searchHandler     *SearchHandler
	researcherHandler *ResearcherHandler
	sdgHandler        *SDGHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		searchHandler:     NewSearchHandler(deps),
		researcherHandler: NewResearcherHandler(deps),
		sdgHandler:        NewSDGHandler(deps),
	}
}

// Register attaches all HTTP routes to mux, most specific first.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/api/sdgs/summary", MetricsMiddleware(s.sdgHandler.HandleSummary, "sdg_summary"))
	mux.HandleFunc("/api/sdgs", MetricsMiddleware(s.sdgHandler.HandleList, "sdgs"))
	mux.HandleFunc("/api/researchers", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/api/researchers/", MetricsMiddleware(s.researcherHandler.HandleResearcher, "researcher"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404. A transport or
// query failure stays a 500 so the UI can offer a retry instead of an
// empty state.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
