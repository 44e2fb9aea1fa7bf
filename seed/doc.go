// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed turns validated input into the seed string sent to the
// generation service. Seeds must stay byte-for-byte stable: the same input
// always yields the same numbers.
package seed
