// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"github.com/danielhkuo/lotto-gen/validate"
)

// Transition describes a state change that actually happened
type Transition struct {
	Event  Event `json:"event"`
	From   Phase `json:"from"`
	To     Phase `json:"to"`
	FromID int   `json:"from_id"`
	ToID   int   `json:"to_id"`
}

// Animate reports whether the presenter should fade the question container
func (t Transition) Animate() bool {
	return t.Event == EventAdvance || t.Event == EventBack
}

// Ticket is handed out when the last question is submitted. The caller runs
// the generation with Seed and reports back with Succeed or Fail.
type Ticket struct {
	Seed  string
	epoch uint64
}

// Step is the outcome of Next or Prev. Ticket is set only when Next submitted.
type Step struct {
	Transition *Transition
	Ticket     *Ticket
}

// Navigator walks a quiz question by question. It is owned by a single
// session and is not safe for concurrent use.
type Navigator struct {
	state     State
	phase     Phase
	epoch     uint64
	listeners []func(Transition)
}

// NewNavigator positions a fresh quiz on its first question
func NewNavigator(questions []Question) (*Navigator, error) {
	state, err := NewState(questions)
	if err != nil {
		return nil, err
	}
	return &Navigator{state: state, phase: PhaseAnswering}, nil
}

// OnTransition registers fn to be called after every successful transition
func (n *Navigator) OnTransition(fn func(Transition)) {
	n.listeners = append(n.listeners, fn)
}

// State returns the current snapshot
func (n *Navigator) State() State { return n.state }

func (n *Navigator) Phase() Phase { return n.phase }

func (n *Navigator) CurrentID() int { return n.state.CurrentID() }

// Submitting reports whether a ticket is outstanding
func (n *Navigator) Submitting() bool { return n.phase == PhaseSubmitting }

// Answer selects value on question id. It never moves the current question.
func (n *Navigator) Answer(id int, value string) error {
	to, err := target(n.phase, EventAnswer)
	if err != nil {
		return err
	}
	next, err := n.state.Answer(id, value)
	if err != nil {
		return err
	}
	n.apply(EventAnswer, to, next)
	return nil
}

// Next advances past an answered question. On the last question it submits
// instead and returns a Ticket carrying the seed.
func (n *Navigator) Next() (Step, error) {
	event := EventAdvance
	if n.state.IsLast() {
		event = EventSubmit
	}
	to, err := target(n.phase, event)
	if err != nil {
		return Step{}, err
	}
	if !ValidateAnswer(n.state.Current()) {
		return Step{}, validate.UnansweredQuestion()
	}

	if event == EventAdvance {
		t := n.apply(event, to, n.state.Advance())
		return Step{Transition: &t}, nil
	}

	s, err := n.state.Seed()
	if err != nil {
		return Step{}, err
	}
	n.epoch++
	t := n.apply(event, to, n.state)
	return Step{Transition: &t, Ticket: &Ticket{Seed: s, epoch: n.epoch}}, nil
}

// Prev moves back one question. On the first question it does nothing.
func (n *Navigator) Prev() (Step, error) {
	to, err := target(n.phase, EventBack)
	if err != nil {
		return Step{}, err
	}
	if n.state.IsFirst() {
		return Step{}, nil
	}
	t := n.apply(EventBack, to, n.state.Back())
	return Step{Transition: &t}, nil
}

// Reset clears all answers, returns to the first question and makes any
// outstanding ticket stale.
func (n *Navigator) Reset() {
	to, _ := target(n.phase, EventReset)
	n.epoch++
	n.apply(EventReset, to, n.state.Reset())
}

// Succeed resolves t. It returns false, changing nothing, when t is stale.
func (n *Navigator) Succeed(t Ticket) bool {
	return n.resolve(t, EventSucceed)
}

// Fail resolves t as failed; the quiz stays on the last question so it can
// be submitted again. It returns false when t is stale.
func (n *Navigator) Fail(t Ticket) bool {
	return n.resolve(t, EventFail)
}

func (n *Navigator) resolve(t Ticket, event Event) bool {
	if t.epoch != n.epoch {
		return false
	}
	to, err := target(n.phase, event)
	if err != nil {
		return false
	}
	n.apply(event, to, n.state)
	return true
}

func (n *Navigator) apply(event Event, to Phase, next State) Transition {
	t := Transition{
		Event:  event,
		From:   n.phase,
		To:     to,
		FromID: n.state.CurrentID(),
		ToID:   next.CurrentID(),
	}
	n.state = next
	n.phase = to
	for _, fn := range n.listeners {
		fn(t)
	}
	return t
}
