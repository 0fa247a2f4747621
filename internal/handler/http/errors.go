// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidUserID is returned when the {id} path parameter is not an integer.
var ErrInvalidUserID = errors.New("invalid user id")

// Response messages shared by several handlers.
const (
	msgHelloWorld         = "Hello World!"
	msgInvalidCredentials = "Invalid Credentials"
	msgUnauthorized       = "Unauthorized"
	msgNeedCookies        = "Sorry you need the correct cookies"
	msgInvalidID          = "Bad Request. Invalid ID"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgUsernameTaken      = "Username already exists"
)
