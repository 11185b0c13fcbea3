package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/profile"
)

// ResearcherHandler handles profile and related-researcher requests.
type ResearcherHandler struct {
	deps Dependencies
}

// NewResearcherHandler creates a new researcher handler.
func NewResearcherHandler(deps Dependencies) *ResearcherHandler {
	return &ResearcherHandler{deps: deps}
}

// HandleResearcher routes GET /api/researchers/{id} and
// GET /api/researchers/{id}/related requests.
func (h *ResearcherHandler) HandleResearcher(w http.ResponseWriter, r *http.Request) {
	const op = "api.researcher"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/researchers/")
	id, rest, _ := strings.Cut(path, "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", wrapOp(op, ErrBadRequest))
		return
	}

	switch rest {
	case "":
		h.handleProfile(w, r, id)
	case "related":
		h.handleRelated(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *ResearcherHandler) handleProfile(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.get_profile"
	p, err := h.deps.Profile(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", wrapOp(op, err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ResearcherHandler) handleRelated(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.get_related"
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", wrapOp(op, ErrBadRequest))
			return
		}
		limit = n
	}

	records, err := h.deps.Related(r.Context(), id, limit)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", wrapOp(op, err))
		return
	}
	cards := make([]Card, len(records))
	for i, rec := range records {
		cards[i] = profile.FormatCard(rec)
	}
	writeJSON(w, http.StatusOK, cards)
}
