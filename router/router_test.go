// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/lotto-gen/generator"
	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/models"
	"github.com/danielhkuo/lotto-gen/testutil"
)

func setupMux(t *testing.T) (*http.ServeMux, *testutil.FakeGenerator) {
	t.Helper()
	gen := testutil.NewFakeGenerator(t)
	cfg := testutil.GetTestConfig(gen)

	client, err := generator.NewClient(generator.Config{
		BaseURL: cfg.GeneratorURL,
		Secret:  cfg.GeneratorSecret,
		Timeout: cfg.GeneratorTimeout,
	})
	if err != nil {
		t.Fatalf("Failed to create generator client: %v", err)
	}
	store, err := lottery.NewStore(lottery.Options{
		Generator: client,
		Questions: testutil.SampleQuestions(),
		TTL:       cfg.SessionTTL,
	})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return NewRouter(store), gen
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := setupMux(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := setupMux(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	expected := "lotto-gen API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := setupMux(t)

	// 400, 404 and 422 are all valid handler responses here
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/questions"},

		{"POST", "/birth"},
		{"GET", "/birth/test-id"},
		{"PATCH", "/birth/test-id"},
		{"DELETE", "/birth/test-id"},
		{"POST", "/birth/test-id/generate"},
		{"POST", "/birth/test-id/reset"},

		{"POST", "/quiz"},
		{"GET", "/quiz/test-id"},
		{"DELETE", "/quiz/test-id"},
		{"PUT", "/quiz/test-id/answers/1"},
		{"POST", "/quiz/test-id/next"},
		{"POST", "/quiz/test-id/prev"},
		{"POST", "/quiz/test-id/reset"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	mux, _ := setupMux(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"GET to generate endpoint", "GET", "/birth/test-id/generate", http.StatusMethodNotAllowed},
		{"POST to answers endpoint", "POST", "/quiz/test-id/answers/1", http.StatusMethodNotAllowed},
		{"PUT to questions endpoint", "PUT", "/questions", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestQuizThroughRouter(t *testing.T) {
	mux, gen := setupMux(t)

	serve := func(method, path string, body interface{}, want int) *httptest.ResponseRecorder {
		t.Helper()
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
		testutil.AssertStatus(t, w, want)
		return w
	}

	var created models.QuizSessionResponse
	testutil.AssertJSON(t, serve("POST", "/quiz", nil, http.StatusCreated), &created)
	base := "/quiz/" + created.ID

	for i, v := range []string{"X", "Y", "Z"} {
		serve("PUT", base+"/answers/"+strconv.Itoa(i+1), models.AnswerRequest{Value: v}, http.StatusOK)
		serve("POST", base+"/next", nil, http.StatusOK)
	}

	var resp models.QuizSessionResponse
	testutil.AssertJSON(t, serve("GET", base, nil, http.StatusOK), &resp)
	if resp.Status != models.StatusSuccess || resp.Result == nil || resp.Result.Type != models.ResultPsy {
		t.Fatalf("Expected a PSY result, got %+v", resp)
	}
	if seeds := gen.Seeds(); len(seeds) != 1 || seeds[0] != "XYZ" {
		t.Errorf("Expected seed XYZ, got %v", seeds)
	}
}

func TestBirthThroughRouter(t *testing.T) {
	mux, gen := setupMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/birth", models.BirthFieldsRequest{
		Name: ptr("김민수"), Year: ptr(2000), Month: ptr(3), Day: ptr(7),
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.BirthSessionResponse
	testutil.AssertJSON(t, w, &created)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/birth/"+created.ID+"/generate", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if seeds := gen.Seeds(); len(seeds) != 1 || seeds[0] != "김민수2000-03-07" {
		t.Errorf("Expected seed 김민수2000-03-07, got %v", seeds)
	}
}

func ptr[T any](v T) *T { return &v }
