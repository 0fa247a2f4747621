// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator issues random (version 4) UUID strings.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new random UUID. Session ids must be unguessable,
// so time-ordered versions are not used.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
