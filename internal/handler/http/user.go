package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "error reading profile")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	var req models.ProfileUpdate
	if err = utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid profile update")
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "error updating profile")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, r, err, "error deleting user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) linkAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	var req models.LinkAccountRequest
	if err = utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid link request")
		return
	}

	user, err := h.services.AuthService.LinkAccount(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "error linking account")
		return
	}

	h.writeSignedIn(w, r, user, http.StatusOK)
}
