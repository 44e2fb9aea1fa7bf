// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
)

// HeaderName is the request header the generation service reads the shared secret from
const HeaderName = "passwd"

const redacted = "[redacted]"

var (
	ErrMissingSecret = errors.New("shared secret is empty")
	ErrInvalidSecret = errors.New("invalid shared secret")
)

// Secret holds the credential shared with the generation service.
// Every printable form of it is redacted; only Reveal returns the value.
type Secret struct {
	value string
}

func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Reveal returns the raw value. Only the transport should call this.
func (s Secret) Reveal() string { return s.value }

func (s Secret) IsZero() bool { return s.value == "" }

func (s Secret) String() string { return redacted }

func (s Secret) GoString() string { return "auth.Secret{" + redacted + "}" }

// LogValue keeps the secret out of slog output
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// Fingerprint identifies a secret in logs without exposing it.
// Two deployments with the same secret and salt share a fingerprint.
func Fingerprint(s Secret, salt string) string {
	if s.IsZero() {
		return ""
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(s.value))
	sum := h.Sum(nil)
	// First 8 bytes are enough to tell secrets apart
	return hex.EncodeToString(sum[:8])
}

// ValidateSecret checks a presented value in constant time
func ValidateSecret(presented string, s Secret) error {
	if s.IsZero() {
		return ErrMissingSecret
	}
	if !hmac.Equal([]byte(presented), []byte(s.value)) {
		return ErrInvalidSecret
	}
	return nil
}
