// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is the generic `{"msg": "..."}` response body.
type Message struct {
	Msg string `json:"msg"`
}

// FieldError describes one failed validation rule of a request field.
type FieldError struct {
	Type     string `json:"type"`
	Value    any    `json:"value"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}
