// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"
	"unicode/utf8"

	"github.com/MKhiriev/go-session-auth/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldDisplayName = "displayName"
	FieldFilter      = "filter"
	FieldValue       = "value"
)

// Locations of validated fields within the request.
const (
	LocationBody  = "body"
	LocationQuery = "query"
)

const (
	usernameMinLen = 5
	usernameMaxLen = 32
	filterMinLen   = 3
	filterMaxLen   = 11
)

// passwordMaxBytes is the longest input bcrypt accepts.
const passwordMaxBytes = 72

// filterableFields lists the user fields a listing may be filtered by.
var filterableFields = []string{FieldUsername, FieldDisplayName}

// RequestValidator implements the Validator interface for the request
// bodies and query parameters of the auth and users endpoints:
// models.Credentials, models.NewUser and models.UserQuery.
//
// Unlike a fail-fast check, every failing rule is collected and returned as
// one *ValidationError.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms are accepted.
//
// Optional fields restrict validation to the named subset; when omitted,
// every field of the type is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var errs []models.FieldError
	var err error

	switch value := obj.(type) {
	case models.Credentials:
		errs, err = v.validateCredentials(value, fields...)
	case *models.Credentials:
		errs, err = v.validateCredentials(*value, fields...)

	case models.NewUser:
		errs, err = v.validateNewUser(value, fields...)
	case *models.NewUser:
		errs, err = v.validateNewUser(*value, fields...)

	case models.UserQuery:
		errs, err = v.validateUserQuery(value, fields...)
	case *models.UserQuery:
		errs, err = v.validateUserQuery(*value, fields...)

	default:
		return ErrUnsupportedType
	}

	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	return nil
}

// validateCredentials requires both login fields to be non-empty.
func (v *RequestValidator) validateCredentials(creds models.Credentials, fields ...string) ([]models.FieldError, error) {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	var errs []models.FieldError
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if creds.Username == "" {
				errs = append(errs, bodyError(f, creds.Username, "The username cannot be empty"))
			}
		case FieldPassword:
			if creds.Password == "" {
				errs = append(errs, bodyError(f, creds.Password, "The password cannot be empty"))
			}
		default:
			return nil, ErrUnknownField
		}
	}

	return errs, nil
}

// validateNewUser checks a user creation or replacement body.
//
// An empty username yields both the emptiness and the length failure.
func (v *RequestValidator) validateNewUser(user models.NewUser, fields ...string) ([]models.FieldError, error) {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldDisplayName, FieldPassword}
	}

	var errs []models.FieldError
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				errs = append(errs, bodyError(f, user.Username, "Field must not be empty"))
			}
			if n := utf8.RuneCountInString(user.Username); n < usernameMinLen || n > usernameMaxLen {
				errs = append(errs, bodyError(f, user.Username, "Username must be at least 5 characters with a max of 32 characters"))
			}
		case FieldDisplayName:
			if user.DisplayName == "" {
				errs = append(errs, bodyError(f, user.DisplayName, "Must have something"))
			}
		case FieldPassword:
			if user.Password == "" {
				errs = append(errs, bodyError(f, user.Password, "Password must not be empty"))
			}
			if len(user.Password) > passwordMaxBytes {
				errs = append(errs, bodyError(f, user.Password, "Password must be at most 72 bytes"))
			}
		default:
			return nil, ErrUnknownField
		}
	}

	return errs, nil
}

// validateUserQuery checks the optional listing parameters. Absent
// parameters are not validated.
func (v *RequestValidator) validateUserQuery(q models.UserQuery, fields ...string) ([]models.FieldError, error) {
	if len(fields) == 0 {
		fields = []string{FieldFilter, FieldValue}
	}

	var errs []models.FieldError
	for _, f := range fields {
		switch f {
		case FieldFilter:
			if q.Filter == nil {
				continue
			}
			filter := *q.Filter
			if n := utf8.RuneCountInString(filter); n < filterMinLen || n > filterMaxLen {
				errs = append(errs, queryError(f, filter, "Must be at least 3-11 characters"))
				continue
			}
			if !slices.Contains(filterableFields, filter) {
				errs = append(errs, queryError(f, filter, "Must be one of: username, displayName"))
			}
		case FieldValue:
			if q.Value != nil && *q.Value == "" {
				errs = append(errs, queryError(f, *q.Value, "Must not be empty"))
			}
		default:
			return nil, ErrUnknownField
		}
	}

	return errs, nil
}

func bodyError(path, value, msg string) models.FieldError {
	return models.FieldError{Type: "field", Value: value, Msg: msg, Path: path, Location: LocationBody}
}

func queryError(path, value, msg string) models.FieldError {
	return models.FieldError{Type: "field", Value: value, Msg: msg, Path: path, Location: LocationQuery}
}
