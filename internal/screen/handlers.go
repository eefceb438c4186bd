package screen

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-laundry/internal/common"
)

// Handler exposes the navigation shell.
type Handler struct {
	graph *Graph
}

// NewHandler constructs a Handler. A nil graph falls back to DefaultGraph.
func NewHandler(graph *Graph) *Handler {
	if graph == nil {
		graph = DefaultGraph()
	}
	return &Handler{graph: graph}
}

// NavigateRequest is the body of POST /api/v1/screens/navigate.
type NavigateRequest struct {
	From Route `json:"from"`
	To   Route `json:"to"`
}

// List handles GET /api/v1/screens.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	common.JSON(w, http.StatusOK, map[string]any{
		"data":  h.graph.Screens(),
		"start": h.graph.Start,
	})
}

// Get handles GET /api/v1/screens/{route}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.graph.Lookup(Route(chi.URLParam(r, "route")))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.Data(w, http.StatusOK, s)
}

// Navigate handles POST /api/v1/screens/navigate.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.From == "" {
		req.From = h.graph.Start
	}
	s, err := h.graph.Navigate(req.From, req.To)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.Data(w, http.StatusOK, s)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNoRoute) {
		common.JSONError(w, http.StatusNotFound, common.CodeNotFound, err.Error(), nil)
		return
	}
	common.WriteError(w, err)
}
