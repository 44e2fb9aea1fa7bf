// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package lottery owns the live sessions of the two lucky-number rituals.

# Sessions

A BirthSession collects a name and a birth date and turns them into a BIRTH
result. A QuizSession walks the question bank with a quiz.Navigator and turns
the answers into a PSY result. Both expose a status:

	idle -> loading -> success
	             \--> failed

Validation failures never leave idle and never reach the generator. Editing
a field or an answer clears a failure or result. Reset clears everything.

# Concurrency

Each session has its own mutex. The lock is released while the generator is
called, so reads keep working during a slow generation. A second submit or an
edit that arrives meanwhile fails with ErrSubmissionInFlight.

A reset while loading bumps the session epoch. When the old generation
returns its outcome is dropped and the caller gets ErrStaleResult; the reset
session is not touched.

# Store

Store keys sessions by UUID and holds them in memory only:

	store, err := lottery.NewStore(lottery.Options{
		Generator: client,
		Questions: questions,
		TTL:       30 * time.Minute,
	})
	go store.Run(ctx, time.Minute)

Run calls Sweep, which drops sessions untouched for longer than the TTL.
Sessions with a generation in flight are never swept.
*/
package lottery
