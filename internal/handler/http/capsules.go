package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createCapsule(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	var req models.CapsuleRequest
	if err = utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid capsule request")
		return
	}

	capsule, err := h.services.TimeCapsuleService.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "error creating capsule")
		return
	}

	utils.WriteJSON(w, capsule, http.StatusCreated)
}

func (h *Handler) getCapsule(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	capsule, err := h.services.TimeCapsuleService.Get(r.Context(), userID, chi.URLParam(r, "capsuleID"))
	if err != nil {
		writeError(w, r, err, "error reading capsule")
		return
	}

	utils.WriteJSON(w, capsule, http.StatusOK)
}

func (h *Handler) deleteCapsule(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	if err = h.services.TimeCapsuleService.Delete(r.Context(), userID, chi.URLParam(r, "capsuleID")); err != nil {
		writeError(w, r, err, "error deleting capsule")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
