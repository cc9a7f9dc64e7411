// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the sign-in flow and the diary screens in turn until the user
// quits, signing the user out between sessions.
package client
