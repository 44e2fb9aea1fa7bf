// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package quiz models the personality quiz and its navigation.

# State

State is an immutable value. Answer, Advance, Back and Reset return a new
State and leave the receiver untouched:

	st, err := quiz.NewState(questions)
	st, err = st.Answer(1, "A")
	st = st.Advance()

NewState orders questions by id and rejects empty banks, duplicate ids,
questions without options and empty or repeated option values.

# Navigation

Navigator owns a State and a Phase and only moves along the transition
table:

	answering  --submit-->  submitting  --succeed-->  succeeded
	                              |
	                            fail
	                              v
	                           failed   --submit-->  submitting

Reset is legal from every phase. Anything not in the table fails with an
error matching ErrIllegalTransition and changes nothing.

Next on the last question submits and returns a Ticket carrying the seed.
The caller generates numbers and resolves the ticket with Succeed or Fail.
Reset makes outstanding tickets stale, so a late result is discarded.

Navigator is not safe for concurrent use; callers serialize access.

# Hooks

OnTransition registers a callback fired after every successful move.
Transition.Animate is true for moves between questions.
*/
package quiz
