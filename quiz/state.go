// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danielhkuo/lotto-gen/seed"
)

var (
	ErrNoQuestions     = errors.New("quiz has no questions")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrUnknownOption   = errors.New("value is not one of the question's options")
)

// Option is one radio button of a question
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Question is a single-choice question. Selected is empty until answered.
type Question struct {
	ID       int      `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Options  []Option `json:"options" yaml:"options"`
	Selected string   `json:"selected,omitempty" yaml:"-"`
}

// Answered reports whether a value has been selected
func (q Question) Answered() bool {
	return q.Selected != ""
}

// HasOption reports whether value is one of the question's option values
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// ValidateAnswer is true iff the question has a selection and the selection
// is one of its options.
func ValidateAnswer(q Question) bool {
	return q.Answered() && q.HasOption(q.Selected)
}

// State is an immutable snapshot of a quiz. Every update returns a new State
// and leaves the receiver untouched, so snapshots handed out earlier never
// observe later answers or resets.
type State struct {
	questions []Question
	current   int // index into questions
}

// NewState checks the question set and returns a State positioned on the
// first question with every selection cleared. Questions are ordered by id.
func NewState(questions []Question) (State, error) {
	if len(questions) == 0 {
		return State{}, ErrNoQuestions
	}

	qs := make([]Question, len(questions))
	ids := make(map[int]bool, len(questions))
	for i, q := range questions {
		if ids[q.ID] {
			return State{}, fmt.Errorf("duplicate question id %d", q.ID)
		}
		ids[q.ID] = true
		if len(q.Options) == 0 {
			return State{}, fmt.Errorf("question %d has no options", q.ID)
		}
		values := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Value == "" {
				return State{}, fmt.Errorf("question %d has an option with an empty value", q.ID)
			}
			if values[o.Value] {
				return State{}, fmt.Errorf("question %d has duplicate option value %q", q.ID, o.Value)
			}
			values[o.Value] = true
		}

		q.Options = append([]Option(nil), q.Options...)
		q.Selected = ""
		qs[i] = q
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })

	return State{questions: qs}, nil
}

// Questions returns a copy of the questions in id order
func (s State) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Len is the number of questions
func (s State) Len() int { return len(s.questions) }

// Current returns the question being displayed
func (s State) Current() Question {
	return s.questions[s.current]
}

// CurrentID returns the id of the question being displayed
func (s State) CurrentID() int {
	return s.questions[s.current].ID
}

// Position returns the 1-based position of the current question
func (s State) Position() int { return s.current + 1 }

func (s State) IsFirst() bool { return s.current == 0 }

func (s State) IsLast() bool { return s.current == len(s.questions)-1 }

// Question looks up a question by id
func (s State) Question(id int) (Question, bool) {
	i := s.index(id)
	if i < 0 {
		return Question{}, false
	}
	return s.questions[i], true
}

// Answer returns a new State with value selected on question id.
// The current question does not change.
func (s State) Answer(id int, value string) (State, error) {
	i := s.index(id)
	if i < 0 {
		return s, fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}
	if !s.questions[i].HasOption(value) {
		return s, fmt.Errorf("%w: question %d, value %q", ErrUnknownOption, id, value)
	}

	next := s.clone()
	next.questions[i].Selected = value
	return next, nil
}

// Advance moves to the following question. It does not check answers;
// that is the navigator's job.
func (s State) Advance() State {
	if s.IsLast() {
		return s
	}
	next := s
	next.current++
	return next
}

// Back moves to the preceding question
func (s State) Back() State {
	if s.IsFirst() {
		return s
	}
	next := s
	next.current--
	return next
}

// Reset clears every selection and returns to the first question
func (s State) Reset() State {
	next := s.clone()
	for i := range next.questions {
		next.questions[i].Selected = ""
	}
	next.current = 0
	return next
}

// Complete reports whether every question has an answer
func (s State) Complete() bool {
	for _, q := range s.questions {
		if !q.Answered() {
			return false
		}
	}
	return true
}

// Seed derives the generation seed from the current answers
func (s State) Seed() (string, error) {
	selections := make([]seed.Selection, len(s.questions))
	for i, q := range s.questions {
		selections[i] = seed.Selection{QuestionID: q.ID, Value: q.Selected}
	}
	return seed.Quiz(selections)
}

func (s State) index(id int) int {
	for i, q := range s.questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// clone copies the question slice. Option slices are shared since nothing
// writes to them after NewState.
func (s State) clone() State {
	qs := make([]Question, len(s.questions))
	copy(qs, s.questions)
	return State{questions: qs, current: s.current}
}
