// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-session-auth/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError carries every failed rule of one request.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Path+": "+f.Msg)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}
