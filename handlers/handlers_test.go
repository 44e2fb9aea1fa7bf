// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/lotto-gen/auth"
	"github.com/danielhkuo/lotto-gen/generator"
	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/testutil"
)

var testNow = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// setupStore wires a store to the real generator client and a fake
// generation service
func setupStore(t *testing.T) (*lottery.Store, *testutil.FakeGenerator) {
	t.Helper()
	gen := testutil.NewFakeGenerator(t)
	client, err := generator.NewClient(generator.Config{
		BaseURL: gen.URL(),
		Secret:  auth.NewSecret(testutil.TestSecret),
		Timeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create generator client: %v", err)
	}
	store, err := lottery.NewStore(lottery.Options{
		Generator: client,
		Questions: testutil.SampleQuestions(),
		Now:       testutil.FixedClock(testNow),
	})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store, gen
}

// serve runs h against req with path values set the way the router would
func serve(h http.HandlerFunc, req *http.Request, pathValues map[string]string) *httptest.ResponseRecorder {
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

// newRawRequest builds a request with a body that is not valid JSON
func newRawRequest(method, path, body string) *http.Request {
	return httptest.NewRequest(method, path, strings.NewReader(body))
}

func ptr[T any](v T) *T { return &v }
