package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/models"
	"github.com/go-chi/chi/v5"
)

// Screen endpoints always answer 200 once the request itself is valid.
// Failures of the underlying reads travel inside the view state.

func (h *Handler) homeScreen(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	position, err := intQuery(r, "position", 0)
	if err != nil {
		writeError(w, r, err, "invalid home screen request")
		return
	}

	utils.WriteJSON(w, h.services.ScreenService.Home(r.Context(), userID, position), http.StatusOK)
}

func (h *Handler) diaryScreen(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	pager, err := intQuery(r, "pager", 0)
	if err != nil {
		writeError(w, r, err, "invalid diary screen request")
		return
	}

	state := h.services.ScreenService.Diary(r.Context(), userID, chi.URLParam(r, "diaryID"), pager)
	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) capsuleScreen(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	tab := models.CapsuleTabScheduled
	if raw := r.URL.Query().Get("tab"); raw != "" {
		if tab, err = models.ParseCapsuleTab(raw); err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidQueryParam, err), "invalid capsule screen request")
			return
		}
	}

	utils.WriteJSON(w, h.services.ScreenService.Capsules(r.Context(), userID, tab), http.StatusOK)
}
