// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-time-diary/internal/adapter"
)

var (
	ErrUserQuit  = errors.New("user quit")
	ErrNoAdapter = errors.New("server adapter is required")

	errLayoutDiverged  = errors.New("разметка страницы не сошлась")
	errUnexpectedModel = errors.New("unexpected final model")
)

// humanizeError turns transport failures into a message for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "connection refused"),
		strings.Contains(s, "dial tcp"),
		strings.Contains(s, "no such host"),
		strings.Contains(s, "network is unreachable"),
		strings.Contains(s, "i/o timeout"),
		strings.Contains(s, "context deadline exceeded"):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Сессия истекла, войдите снова"
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return "Сервис временно недоступен"
	}

	return err.Error()
}
