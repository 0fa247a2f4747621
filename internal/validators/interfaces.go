// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the user
// directory or a login strategy.
//
// Failures are reported as a [*ValidationError] listing one
// [models.FieldError] per broken rule, in the order the fields were checked.
// A caller may restrict the check to a subset of fields, e.g. only the fields
// a partial update actually changes.
package validators

import "context"

// Validator checks obj. When fields are given only those fields are checked;
// a field the type does not know yields ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
