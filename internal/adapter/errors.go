package adapter

import "errors"

// Errors returned for non-2xx responses. The server message is appended to
// the wrapped error.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

// Image download errors. [ImageLoader.LoadAll] logs them and leaves the
// bitmap nil.
var (
	ErrImageLoadFailed  = errors.New("error loading image")
	ErrImageUndecodable = errors.New("image data cannot be decoded")
)
