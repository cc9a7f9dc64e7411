package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps the statuses the diary server answers with to the
// adapter sentinels screens match on.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses. Otherwise the server message
// is kept after the matching sentinel.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= 200 && code < 300 {
		return nil
	}

	msg := strings.TrimSpace(string(resp.Body()))
	if msg == "" {
		msg = http.StatusText(code)
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return fmt.Errorf("unexpected status %d: %s", code, msg)
}
