// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"hash/fnv"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/lotto-gen/auth"
	"github.com/danielhkuo/lotto-gen/cliparse"
	"github.com/danielhkuo/lotto-gen/quiz"
)

// TestSecret is the shared secret the fake generation service expects
const TestSecret = "test-passwd"

// FakeGenerator is an in-process stand-in for the remote generation service.
// It serves GET /main?string=... and checks the passwd header.
type FakeGenerator struct {
	Server *httptest.Server

	mu     sync.Mutex
	seeds  []string
	status int
	body   string
	hold   chan struct{}
}

// NewFakeGenerator starts a fake generation service that is closed with the test
func NewFakeGenerator(t *testing.T) *FakeGenerator {
	t.Helper()

	f := &FakeGenerator{}
	secret := auth.NewSecret(TestSecret)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /main", func(w http.ResponseWriter, r *http.Request) {
		if err := auth.ValidateSecret(r.Header.Get(auth.HeaderName), secret); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		seed := r.URL.Query().Get("string")
		f.mu.Lock()
		f.seeds = append(f.seeds, seed)
		status, body, hold := f.status, f.body, f.hold
		f.mu.Unlock()

		if hold != nil {
			select {
			case <-hold:
			case <-r.Context().Done():
				return
			}
		}

		if status != 0 {
			w.WriteHeader(status)
			w.Write([]byte(body))
			return
		}
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string][]int{"res": NumbersFor(seed)})
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(func() {
		f.Release()
		f.Server.Close()
	})
	return f
}

// URL is the base URL to configure the generator client with
func (f *FakeGenerator) URL() string { return f.Server.URL }

// FailWith makes every following call answer with status and body
func (f *FakeGenerator) FailWith(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body = status, body
}

// RespondWith makes every following call answer 200 with a raw body
func (f *FakeGenerator) RespondWith(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body = 0, body
}

// Hold blocks following calls until Release is called
func (f *FakeGenerator) Hold() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hold = make(chan struct{})
}

// Release unblocks held calls
func (f *FakeGenerator) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hold != nil {
		close(f.hold)
		f.hold = nil
	}
}

// Seeds returns every seed received so far
func (f *FakeGenerator) Seeds() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.seeds...)
}

// Calls is the number of authorized requests received
func (f *FakeGenerator) Calls() int {
	return len(f.Seeds())
}

// WaitForCalls polls until n requests arrived or the timeout expires
func (f *FakeGenerator) WaitForCalls(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for f.Calls() < n {
		if time.Now().After(deadline) {
			t.Fatalf("Expected %d generator calls, got %d", n, f.Calls())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// NumbersFor is the fake's deterministic seed to numbers mapping:
// six distinct numbers in [1,45].
func NumbersFor(seed string) []int {
	h := fnv.New64a()
	h.Write([]byte(seed))
	x := h.Sum64()
	if x == 0 {
		x = 1
	}

	seen := make(map[int]bool, 6)
	out := make([]int, 0, 6)
	for len(out) < 6 {
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
		n := int(x%45) + 1
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// GetTestConfig returns a standard test configuration pointing at gen
func GetTestConfig(gen *FakeGenerator) cliparse.Config {
	cfg := cliparse.Config{
		Port:             3318,
		GeneratorSecret:  auth.NewSecret(TestSecret),
		GeneratorTimeout: 2 * time.Second,
		SessionTTL:       30 * time.Minute,
	}
	if gen != nil {
		cfg.GeneratorURL = gen.URL()
	}
	return cfg
}

// SampleQuestions is a three question quiz with values A/B/C and X/Y/Z
func SampleQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: 1, Title: "Q1", Options: []quiz.Option{{Label: "a", Value: "A"}, {Label: "x", Value: "X"}}},
		{ID: 2, Title: "Q2", Options: []quiz.Option{{Label: "b", Value: "B"}, {Label: "y", Value: "Y"}}},
		{ID: 3, Title: "Q3", Options: []quiz.Option{{Label: "c", Value: "C"}, {Label: "z", Value: "Z"}}},
	}
}

// FixedClock returns a clock frozen at t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
