// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lottery

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/lotto-gen/generator"
	"github.com/danielhkuo/lotto-gen/quiz"
)

// DefaultTTL is how long an untouched session is kept
const DefaultTTL = 30 * time.Minute

// Options configures a Store
type Options struct {
	Generator generator.Generator
	Questions []quiz.Question
	TTL       time.Duration
	Now       func() time.Time
	Logger    *slog.Logger
}

// Store holds the live sessions in memory. Nothing outlives the process.
type Store struct {
	gen       generator.Generator
	questions []quiz.Question
	ttl       time.Duration
	now       func() time.Time
	log       *slog.Logger

	mu      sync.RWMutex
	births  map[string]*BirthSession
	quizzes map[string]*QuizSession
}

// NewStore checks the question bank once so every quiz session can be
// created from it.
func NewStore(opts Options) (*Store, error) {
	if opts.Generator == nil {
		return nil, errors.New("lottery: generator is required")
	}
	if _, err := quiz.NewState(opts.Questions); err != nil {
		return nil, err
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	qs := make([]quiz.Question, len(opts.Questions))
	copy(qs, opts.Questions)

	return &Store{
		gen:       opts.Generator,
		questions: qs,
		ttl:       opts.TTL,
		now:       opts.Now,
		log:       opts.Logger,
		births:    make(map[string]*BirthSession),
		quizzes:   make(map[string]*QuizSession),
	}, nil
}

// Questions returns the question bank quiz sessions are created from
func (s *Store) Questions() []quiz.Question {
	st, _ := quiz.NewState(s.questions)
	return st.Questions()
}

// NewBirth opens a birth session with p already applied
func (s *Store) NewBirth(p BirthPatch) (*BirthSession, BirthSnapshot) {
	id := uuid.NewString()
	b := newBirthSession(id, s.gen, s.now, s.log)
	snap, _ := b.Update(p)

	s.mu.Lock()
	s.births[id] = b
	s.mu.Unlock()

	s.log.Debug("birth session opened", "session_id", id)
	return b, snap
}

// NewQuiz opens a quiz session positioned on the first question
func (s *Store) NewQuiz() (*QuizSession, error) {
	id := uuid.NewString()
	q, err := newQuizSession(id, s.questions, s.gen, s.now, s.log)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.quizzes[id] = q
	s.mu.Unlock()

	s.log.Debug("quiz session opened", "session_id", id)
	return q, nil
}

func (s *Store) Birth(id string) (*BirthSession, error) {
	key, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.births[key]
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *Store) Quiz(id string) (*QuizSession, error) {
	key, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quizzes[key]
	if !ok {
		return nil, ErrNotFound
	}
	return q, nil
}

// Delete drops a session of either kind. A generation in flight for it
// finishes but its result is not observable anymore.
func (s *Store) Delete(id string) error {
	key, err := normalizeID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.births[key]; ok {
		b.Reset()
		delete(s.births, key)
		return nil
	}
	if q, ok := s.quizzes[key]; ok {
		q.Reset()
		delete(s.quizzes, key)
		return nil
	}
	return ErrNotFound
}

// Len reports the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.births) + len(s.quizzes)
}

// Sweep drops sessions untouched for longer than the TTL. Sessions with a
// generation in flight are kept. It returns the number removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, b := range s.births {
		if seen, idle := b.idleSince(); idle && seen.Before(cutoff) {
			delete(s.births, id)
			removed++
		}
	}
	for id, q := range s.quizzes {
		if seen, idle := q.idleSince(); idle && seen.Before(cutoff) {
			delete(s.quizzes, id)
			removed++
		}
	}
	if removed > 0 {
		s.log.Info("expired sessions removed", "count", removed)
	}
	return removed
}

// Run sweeps every interval until ctx is done
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func normalizeID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", ErrNotFound
	}
	return u.String(), nil
}
