package http

import (
	"net/http"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/utils"
)

// auth enforces bearer-token authentication.
//
// The token from the "Authorization" header is validated with
// AuthService.ParseToken. On success the user id is stored in the request
// context (see [utils.WithUserID]) and the request-scoped logger is enriched
// with it. Every failure is answered with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID)
		ctx = log.WithUserID(token.UserID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromRequest returns the id stored by the auth middleware.
func userIDFromRequest(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || userID == "" {
		return "", ErrNoUserInContext
	}
	return userID, nil
}
