// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("diary server needs an http handler")
	errNoHTTPAddress = errors.New("diary server needs an http address")
)
