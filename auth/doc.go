// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles the credential shared with the number generation service.

# Secrets

The generation service expects a shared secret in the passwd request header.
The value is wrapped in a Secret so it cannot leak through logs, JSON or
fmt verbs:

	secret := auth.NewSecret(cfg.GeneratorSecret)
	slog.Info("generator configured", "secret", secret) // secret=[redacted]

Only the HTTP transport calls Reveal.

# Fingerprints

To tell deployments apart in diagnostics without exposing the value:

	fp := auth.Fingerprint(secret, "lotto-gen")

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256.

# Validation

ValidateSecret compares a presented header value in constant time. The fake
generation service in testutil uses it to reject requests without the
expected credential.
*/
package auth
