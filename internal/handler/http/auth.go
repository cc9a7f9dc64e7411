package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid register request")
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error registering user")
		return
	}

	h.writeSignedIn(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid login request")
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error during login")
		return
	}

	logger.FromRequest(r).Debug().Str("id", user.ID).Msg("user successfully logged in")
	h.writeSignedIn(w, r, user, http.StatusOK)
}

func (h *Handler) signInAnonymously(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.SignInAnonymously(r.Context())
	if err != nil {
		writeError(w, r, err, "error during anonymous sign-in")
		return
	}

	h.writeSignedIn(w, r, user, http.StatusCreated)
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid password reset request")
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(r.Context(), req); err != nil {
		writeError(w, r, err, "error requesting password reset")
		return
	}

	utils.WriteJSON(w, models.PasswordResetResponse{Sent: true}, http.StatusAccepted)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetConfirm
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid password reset confirmation")
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, err, "error resetting password")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeSignedIn issues an access token for user. The token travels in the
// Authorization header and the user in the body.
func (h *Handler) writeSignedIn(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{User: user}, status)
}
