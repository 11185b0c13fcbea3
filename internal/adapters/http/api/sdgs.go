package api

import (
	"net/http"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/taxonomy"
)

// SDGHandler serves the static goal taxonomy and the population summary.
type SDGHandler struct {
	deps Dependencies
}

// NewSDGHandler creates a new SDG handler.
func NewSDGHandler(deps Dependencies) *SDGHandler {
	return &SDGHandler{deps: deps}
}

// HandleList handles GET /api/sdgs requests.
func (h *SDGHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, taxonomy.Goals())
}

// HandleSummary handles GET /api/sdgs/summary requests. The summary is
// recomputed from the full population on every call; there is no cache to
// go stale.
func (h *SDGHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.sdg_summary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	summaries, err := h.deps.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", wrapOp(op, err))
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
