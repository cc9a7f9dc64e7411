// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced by the transport layer itself, before a request reaches
// the service layer.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserInContext means an authenticated route was reached without the
	// auth middleware.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
	ErrInvalidUpload     = errors.New("invalid multipart upload")
)
