package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/pagination"
	"github.com/MKhiriev/go-time-diary/internal/service"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrInvalidQueryParam: http.StatusBadRequest,
	ErrInvalidUpload:     http.StatusBadRequest,
	ErrNoUserInContext:   http.StatusUnauthorized,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrDeadlineInPast:          http.StatusBadRequest,
	service.ErrReceiverNotFound:        http.StatusBadRequest,
	service.ErrInvalidImage:            http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrResetTokenUsed:          http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrCapsuleSealed:           http.StatusForbidden,
	service.ErrAccountNotAnonymous:     http.StatusConflict,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	validators.ErrValidation: http.StatusBadRequest,

	pagination.ErrNegativeOffset:   http.StatusBadRequest,
	pagination.ErrStaleMeasurement: http.StatusConflict,
	pagination.ErrChainSettled:     http.StatusConflict,

	store.ErrDocumentNotFound:    http.StatusNotFound,
	store.ErrInvalidDocumentID:   http.StatusNotFound,
	store.ErrUsernameTaken:       http.StatusConflict,
	store.ErrEmailTaken:          http.StatusConflict,
	store.ErrStoreUnavailable:    http.StatusServiceUnavailable,
	store.ErrBlobStorageDisabled: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Messages of
// unexpected errors are not exposed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
