// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lottery

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/lotto-gen/generator"
	"github.com/danielhkuo/lotto-gen/testutil"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

// recorder is a scripted generator. Calls block on gate when it is set.
type recorder struct {
	mu      sync.Mutex
	seeds   []string
	err     error
	gate    chan struct{}
	started chan struct{}
}

func newRecorder() *recorder {
	return &recorder{started: make(chan struct{}, 16)}
}

func (r *recorder) Generate(ctx context.Context, seed string) ([]int, error) {
	r.mu.Lock()
	r.seeds = append(r.seeds, seed)
	err, gate := r.err, r.gate
	r.mu.Unlock()

	r.started <- struct{}{}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return testutil.NumbersFor(seed), nil
}

func (r *recorder) failWith(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

// block makes subsequent calls wait until the returned func is called
func (r *recorder) block() (release func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	gate := make(chan struct{})
	r.gate = gate
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

func (r *recorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.seeds...)
}

func (r *recorder) waitStarted(t *testing.T) {
	t.Helper()
	select {
	case <-r.started:
	case <-time.After(2 * time.Second):
		t.Fatal("generator was never called")
	}
}

func newTestStore(t *testing.T, gen generator.Generator) *Store {
	t.Helper()
	store, err := NewStore(Options{
		Generator: gen,
		Questions: testutil.SampleQuestions(),
		Now:       testutil.FixedClock(testNow),
	})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

func ptr[T any](v T) *T { return &v }

func validPatch() BirthPatch {
	return BirthPatch{
		Name:  ptr("홍길동"),
		Year:  ptr(1999),
		Month: ptr(12),
		Day:   ptr(31),
	}
}

// serverFailure builds the error the real client returns for a 500
func serverFailure() error {
	return &generator.Error{Kind: generator.KindServer, Err: errors.New("unexpected status 500")}
}
