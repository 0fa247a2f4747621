// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"hash"
	"strings"
	"sync"
)

// signedPrefix marks a signed cookie value.
const signedPrefix = "s:"

// Signer signs and verifies cookie values in the "s:<value>.<mac>" form,
// where mac is the unpadded base64 HMAC-SHA256 of value.
//
// A Signer keeps a pool of keyed HMAC instances and is safe for concurrent use.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer keyed with secret.
//
// Example usage:
//
//	signer := utils.NewSigner("my-secret-key")
//	cookie := signer.Sign(sessionID)
func NewSigner(secret string) *Signer {
	key := []byte(secret)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sign returns the signed form of value.
func (s *Signer) Sign(value string) string {
	return signedPrefix + value + "." + base64.RawStdEncoding.EncodeToString(s.mac(value))
}

// Unsign verifies signed and returns the original value.
// ok is false for unsigned, malformed or tampered input.
func (s *Signer) Unsign(signed string) (value string, ok bool) {
	body, found := strings.CutPrefix(signed, signedPrefix)
	if !found {
		return "", false
	}

	dot := strings.LastIndexByte(body, '.')
	if dot < 0 {
		return "", false
	}

	value = body[:dot]
	mac, err := base64.RawStdEncoding.DecodeString(body[dot+1:])
	if err != nil {
		return "", false
	}

	if !hmac.Equal(mac, s.mac(value)) {
		return "", false
	}

	return value, true
}

// mac computes the HMAC-SHA256 digest of value with a pooled hasher.
func (s *Signer) mac(value string) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(value))
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}
