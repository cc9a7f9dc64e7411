package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/models"
	"github.com/go-chi/chi/v5"
)

// The layout endpoints drive the render and measure loop of a page. Each
// answers with the next render request; Settled marks the end of the loop.

func (h *Handler) nextRender(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	render, err := h.services.PaginationService.NextRender(r.Context(), userID, chi.URLParam(r, "pageID"))
	if err != nil {
		writeError(w, r, err, "error preparing render request")
		return
	}

	utils.WriteJSON(w, render, http.StatusOK)
}

func (h *Handler) reportLayout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	var report models.LayoutReport
	if err = utils.ReadJSON(r, &report); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid layout report")
		return
	}

	render, err := h.services.PaginationService.ReportLayout(r.Context(), userID, chi.URLParam(r, "pageID"), report)
	if err != nil {
		writeError(w, r, err, "error applying layout report")
		return
	}

	utils.WriteJSON(w, render, http.StatusOK)
}

func (h *Handler) resetLayout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	scope, err := resetScopeQuery(r)
	if err != nil {
		writeError(w, r, err, "invalid layout reset")
		return
	}

	render, err := h.services.PaginationService.ResetLayout(r.Context(), userID, chi.URLParam(r, "pageID"), scope)
	if err != nil {
		writeError(w, r, err, "error resetting layout")
		return
	}

	utils.WriteJSON(w, render, http.StatusOK)
}
