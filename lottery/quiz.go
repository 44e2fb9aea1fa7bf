// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lottery

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/lotto-gen/generator"
	"github.com/danielhkuo/lotto-gen/models"
	"github.com/danielhkuo/lotto-gen/quiz"
)

// QuizSnapshot is a consistent copy of a quiz session. Transition is the
// move made by the call that produced the snapshot, if any.
type QuizSnapshot struct {
	ID         string
	Phase      quiz.Phase
	Status     string
	State      quiz.State
	Transition *quiz.Transition
	Result     *models.LottoResult
	Failure    string
}

// QuizSession is the psychological quiz of one user
type QuizSession struct {
	id  string
	gen generator.Generator
	now func() time.Time
	log *slog.Logger

	mu       sync.Mutex
	nav      *quiz.Navigator
	result   *models.LottoResult
	failure  string
	lastSeen time.Time
}

func newQuizSession(id string, questions []quiz.Question, gen generator.Generator, now func() time.Time, log *slog.Logger) (*QuizSession, error) {
	nav, err := quiz.NewNavigator(questions)
	if err != nil {
		return nil, err
	}
	s := &QuizSession{
		id:       id,
		gen:      gen,
		now:      now,
		log:      log,
		nav:      nav,
		lastSeen: now(),
	}
	nav.OnTransition(func(t quiz.Transition) {
		s.log.Debug("quiz transition",
			"session_id", s.id,
			"event", t.Event,
			"from", t.From,
			"to", t.To,
			"from_id", t.FromID,
			"to_id", t.ToID,
		)
	})
	return s, nil
}

func (s *QuizSession) ID() string { return s.id }

// Answer selects value on question id. A failed submission is cleared by
// the edit.
func (s *QuizSession) Answer(id int, value string) (QuizSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()

	if err := s.nav.Answer(id, value); err != nil {
		return s.snapshot(nil), err
	}
	s.failure = ""
	return s.snapshot(nil), nil
}

// Next advances to the next question, or on the last question submits the
// quiz and waits for the generator.
func (s *QuizSession) Next(ctx context.Context) (QuizSnapshot, error) {
	s.mu.Lock()
	s.lastSeen = s.now()

	step, err := s.nav.Next()
	if err != nil || step.Ticket == nil {
		snap := s.snapshot(step.Transition)
		s.mu.Unlock()
		return snap, err
	}
	s.failure = ""
	ticket := *step.Ticket
	s.mu.Unlock()

	numbers, genErr := s.gen.Generate(ctx, ticket.Seed)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()

	if genErr != nil {
		if !s.nav.Fail(ticket) {
			s.log.Debug("discarding late quiz failure", "session_id", s.id)
			return s.snapshot(nil), ErrStaleResult
		}
		s.failure = failureMessage(genErr)
		return s.snapshot(step.Transition), genErr
	}
	if !s.nav.Succeed(ticket) {
		s.log.Debug("discarding late quiz result", "session_id", s.id)
		return s.snapshot(nil), ErrStaleResult
	}
	result := models.NewPsyResult(numbers)
	s.result = &result
	s.log.Info("quiz numbers generated", "session_id", s.id)
	return s.snapshot(step.Transition), nil
}

// Prev moves back one question. On the first question nothing changes.
func (s *QuizSession) Prev() (QuizSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()

	step, err := s.nav.Prev()
	if err == nil && step.Transition != nil {
		s.failure = ""
	}
	return s.snapshot(step.Transition), err
}

// Reset clears every answer and returns to the first question. A generation
// still in flight will be discarded.
func (s *QuizSession) Reset() QuizSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()

	s.nav.Reset()
	s.result = nil
	s.failure = ""
	return s.snapshot(nil)
}

func (s *QuizSession) Snapshot() QuizSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(nil)
}

func (s *QuizSession) snapshot(t *quiz.Transition) QuizSnapshot {
	snap := QuizSnapshot{
		ID:      s.id,
		Phase:   s.nav.Phase(),
		Status:  statusOf(s.nav.Phase()),
		State:   s.nav.State(),
		Failure: s.failure,
	}
	if t != nil {
		tc := *t
		snap.Transition = &tc
	}
	if s.result != nil {
		r := *s.result
		r.Numbers = append([]int(nil), s.result.Numbers...)
		snap.Result = &r
	}
	return snap
}

func (s *QuizSession) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen, !s.nav.Submitting()
}

func statusOf(p quiz.Phase) string {
	switch p {
	case quiz.PhaseSubmitting:
		return models.StatusLoading
	case quiz.PhaseSucceeded:
		return models.StatusSuccess
	case quiz.PhaseFailed:
		return models.StatusFailed
	}
	return models.StatusIdle
}
