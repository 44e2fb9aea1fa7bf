// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"errors"
	"fmt"
)

// Phase is the coarse state of a quiz. While Answering the fine state is the
// current question id.
type Phase int

const (
	PhaseAnswering Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	for c := PhaseAnswering; c <= PhaseFailed; c++ {
		if c.String() == string(b) {
			*p = c
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", b)
}

// Event is an input to the navigator's state machine
type Event int

const (
	EventAnswer Event = iota
	EventAdvance
	EventBack
	EventSubmit
	EventSucceed
	EventFail
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventAnswer:
		return "answer"
	case EventAdvance:
		return "advance"
	case EventBack:
		return "back"
	case EventSubmit:
		return "submit"
	case EventSucceed:
		return "succeed"
	case EventFail:
		return "fail"
	case EventReset:
		return "reset"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Event) UnmarshalText(b []byte) error {
	for c := EventAnswer; c <= EventReset; c++ {
		if c.String() == string(b) {
			*e = c
			return nil
		}
	}
	return fmt.Errorf("unknown event %q", b)
}

var (
	ErrIllegalTransition  = errors.New("illegal quiz transition")
	ErrSubmissionInFlight = fmt.Errorf("%w: submission in flight", ErrIllegalTransition)
	ErrQuizFinished       = fmt.Errorf("%w: quiz already finished", ErrIllegalTransition)
	ErrNotSubmitting      = fmt.Errorf("%w: no submission in flight", ErrIllegalTransition)
)

type edge struct {
	from  Phase
	event Event
}

// transitions lists every legal move. Anything not listed is rejected
// and leaves the navigator untouched.
var transitions = map[edge]Phase{
	{PhaseAnswering, EventAnswer}:  PhaseAnswering,
	{PhaseAnswering, EventAdvance}: PhaseAnswering,
	{PhaseAnswering, EventBack}:    PhaseAnswering,
	{PhaseAnswering, EventSubmit}:  PhaseSubmitting,
	{PhaseAnswering, EventReset}:   PhaseAnswering,

	{PhaseSubmitting, EventSucceed}: PhaseSucceeded,
	{PhaseSubmitting, EventFail}:    PhaseFailed,
	{PhaseSubmitting, EventReset}:   PhaseAnswering,

	{PhaseFailed, EventAnswer}: PhaseAnswering,
	{PhaseFailed, EventBack}:   PhaseAnswering,
	{PhaseFailed, EventSubmit}: PhaseSubmitting,
	{PhaseFailed, EventReset}:  PhaseAnswering,

	{PhaseSucceeded, EventReset}: PhaseAnswering,
}

// target looks up the phase reached by firing event in phase from
func target(from Phase, event Event) (Phase, error) {
	to, ok := transitions[edge{from, event}]
	if ok {
		return to, nil
	}
	switch from {
	case PhaseSubmitting:
		return from, ErrSubmissionInFlight
	case PhaseSucceeded:
		return from, ErrQuizFinished
	}
	if event == EventSucceed || event == EventFail {
		return from, ErrNotSubmitting
	}
	return from, fmt.Errorf("%w: %s while %s", ErrIllegalTransition, event, from)
}
