// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PlainScheme stores passwords as given. It backs the in-memory directory
// seeded with plaintext demo users.
type PlainScheme struct{}

func (PlainScheme) Hash(password string) (string, error) {
	return password, nil
}

func (PlainScheme) Compare(stored, password string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// BcryptScheme stores bcrypt hashes. It backs the persisted directory.
type BcryptScheme struct {
	Cost int
}

func NewBcryptScheme(cost int) BcryptScheme {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptScheme{Cost: cost}
}

func (s BcryptScheme) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func (s BcryptScheme) Compare(stored, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("error comparing password hash: %w", err)
	}
	return nil
}
