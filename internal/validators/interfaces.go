// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before services touch storage.
// [RequestValidator] reads the validate struct tags of registration,
// diary, page and capsule requests and reports the first broken rule with
// a readable message.
package validators

import "context"

// Validator checks v. When fields are given only those fields are checked,
// which lets partial updates skip the rest of the struct.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
