package api

import (
	"net/http"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/profile"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/search"
)

// SearchHandler handles researcher search requests.
type SearchHandler struct {
	deps Dependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps Dependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// searchResponse carries the result cards plus the echoed parameters so the
// rendering layer can restore UI state.
type searchResponse struct {
	Query    string `json:"query"`
	Filter   string `json:"filter"`
	TargetID string `json:"targetId,omitempty"`
	Count    int    `json:"count"`
	Results  []Card `json:"results"`
}

// HandleSearch handles GET /api/researchers?query=&filter=&target= requests.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	filter, ok := search.ParseFilter(q.Get("filter"))
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", wrapOp(op, ErrBadRequest))
		return
	}
	params := search.Params{
		Query:    q.Get("query"),
		Filter:   filter,
		TargetID: q.Get("target"),
	}

	records, err := h.deps.Search(r.Context(), params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", wrapOp(op, err))
		return
	}

	// An empty result set is a successful response, not an error; the UI
	// renders it as an empty state.
	cards := make([]Card, len(records))
	for i, rec := range records {
		cards[i] = profile.FormatCard(rec)
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Query:    params.Query,
		Filter:   string(params.Filter),
		TargetID: params.TargetID,
		Count:    len(cards),
		Results:  cards,
	})
}
