// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the diary server and client. Request and
// call scoped loggers travel in the context: handlers read them with
// [FromRequest], storage and services with [FromContext].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// clientLogFile is created next to the client binary.
const clientLogFile = "time-diary-client.log"

// Logger embeds zerolog.Logger so the whole zerolog API stays available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout stamped with role.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a logger for the terminal client. The terminal
// belongs to the UI, so entries are appended to a file next to the binary.
// Stdout is used only when that file cannot be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stdout

	if execPath, err := os.Executable(); err == nil {
		path := filepath.Join(filepath.Dir(execPath), clientLogFile)
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			out = f
		}
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	// caller is the function name rather than file:line
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one zerolog hands
// back its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithTraceID stamps every entry with the request trace id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// WithUserID stamps every entry with the authenticated user id.
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{l.With().Str("user_id", userID).Logger()}
}

// WithContext stores the logger in ctx for [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}
