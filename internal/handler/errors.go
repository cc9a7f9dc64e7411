// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when the server
// configuration has no HTTP address. The application fails at startup.
var errNoHTTPAddress = errors.New("http handler needs a listen address")
