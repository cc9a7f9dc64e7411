// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-time-diary/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until a user is signed in.
	LoginFlow(ctx context.Context) (models.User, error)
	// MainLoop blocks until the user quits or signs out.
	MainLoop(ctx context.Context, user models.User) (logout bool, err error)
}
