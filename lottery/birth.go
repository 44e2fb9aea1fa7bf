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
	"github.com/danielhkuo/lotto-gen/seed"
	"github.com/danielhkuo/lotto-gen/validate"
)

// BirthPatch edits some of the birth form fields; nil fields are left alone
type BirthPatch struct {
	Name  *string
	Year  *int
	Month *int
	Day   *int
}

func (p BirthPatch) empty() bool {
	return p.Name == nil && p.Year == nil && p.Month == nil && p.Day == nil
}

// BirthSnapshot is a consistent copy of a birth session
type BirthSnapshot struct {
	ID      string
	Input   validate.BirthInput
	Status  string
	Result  *models.LottoResult
	Failure string
}

// BirthSession is the name/birth ritual of one user
type BirthSession struct {
	id  string
	gen generator.Generator
	now func() time.Time
	log *slog.Logger

	mu       sync.Mutex
	input    validate.BirthInput
	status   string
	result   *models.LottoResult
	failure  string
	epoch    uint64
	lastSeen time.Time
}

func newBirthSession(id string, gen generator.Generator, now func() time.Time, log *slog.Logger) *BirthSession {
	return &BirthSession{
		id:       id,
		gen:      gen,
		now:      now,
		log:      log,
		status:   models.StatusIdle,
		lastSeen: now(),
	}
}

func (s *BirthSession) ID() string { return s.id }

// Update applies p. Editing invalidates a previous result or failure.
// Edits are refused while a generation is in flight.
func (s *BirthSession) Update(p BirthPatch) (BirthSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()

	if s.status == models.StatusLoading {
		return s.snapshot(), ErrSubmissionInFlight
	}
	if p.empty() {
		return s.snapshot(), nil
	}

	if p.Name != nil {
		s.input.Name = *p.Name
	}
	if p.Year != nil {
		s.input.Year = *p.Year
	}
	if p.Month != nil {
		s.input.Month = *p.Month
	}
	if p.Day != nil {
		s.input.Day = *p.Day
	}
	s.invalidate()
	return s.snapshot(), nil
}

// Reset clears the form. A generation still in flight will be discarded.
func (s *BirthSession) Reset() BirthSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()

	s.input = validate.BirthInput{}
	s.invalidate()
	s.epoch++
	return s.snapshot()
}

// Generate validates the form, derives the seed and asks the generator.
// Validation failures never reach the generator and leave the status alone.
func (s *BirthSession) Generate(ctx context.Context) (BirthSnapshot, error) {
	s.mu.Lock()
	s.lastSeen = s.now()

	switch s.status {
	case models.StatusLoading:
		snap := s.snapshot()
		s.mu.Unlock()
		return snap, ErrSubmissionInFlight
	case models.StatusSuccess:
		snap := s.snapshot()
		s.mu.Unlock()
		return snap, ErrFinished
	}

	input := s.input
	if err := validate.ValidateBirthInput(input, s.now()); err != nil {
		snap := s.snapshot()
		s.mu.Unlock()
		return snap, err
	}

	s.epoch++
	epoch := s.epoch
	s.status = models.StatusLoading
	s.failure = ""
	s.mu.Unlock()

	numbers, genErr := s.gen.Generate(ctx, seed.Birth(input.Name, input.Year, input.Month, input.Day))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()

	if s.epoch != epoch {
		s.log.Debug("discarding late birth result", "session_id", s.id)
		return s.snapshot(), ErrStaleResult
	}
	if genErr != nil {
		s.status = models.StatusFailed
		s.failure = failureMessage(genErr)
		return s.snapshot(), genErr
	}

	result := models.NewBirthResult(numbers, input.Name, seed.BirthDate(input.Year, input.Month, input.Day))
	s.status = models.StatusSuccess
	s.result = &result
	s.log.Info("birth numbers generated", "session_id", s.id)
	return s.snapshot(), nil
}

func (s *BirthSession) Snapshot() BirthSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *BirthSession) invalidate() {
	s.status = models.StatusIdle
	s.result = nil
	s.failure = ""
}

func (s *BirthSession) snapshot() BirthSnapshot {
	snap := BirthSnapshot{
		ID:      s.id,
		Input:   s.input,
		Status:  s.status,
		Failure: s.failure,
	}
	if s.result != nil {
		r := *s.result
		r.Numbers = append([]int(nil), s.result.Numbers...)
		snap.Result = &r
	}
	return snap
}

func (s *BirthSession) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen, s.status != models.StatusLoading
}
