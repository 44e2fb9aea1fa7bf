// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lottery

import (
	"errors"

	"github.com/danielhkuo/lotto-gen/generator"
	"github.com/danielhkuo/lotto-gen/quiz"
)

var (
	ErrNotFound = errors.New("session not found")

	// ErrSubmissionInFlight is returned for any submit or edit that arrives
	// while a generation is running for the same session.
	ErrSubmissionInFlight = quiz.ErrSubmissionInFlight

	// ErrFinished is returned when generating again without a reset or edit
	ErrFinished = errors.New("numbers already generated")

	// ErrStaleResult is returned to the caller whose generation finished
	// after the session was reset. The numbers are dropped.
	ErrStaleResult = errors.New("session was reset while generating")
)

// failureMessage is what a failed session shows. Causes stay in the logs.
func failureMessage(err error) string {
	var gerr *generator.Error
	if errors.As(err, &gerr) {
		return gerr.Error()
	}
	return generator.Message
}
