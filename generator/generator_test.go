// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generator

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/lotto-gen/auth"
	"github.com/danielhkuo/lotto-gen/testutil"
)

func newTestClient(t *testing.T, baseURL string, logs *bytes.Buffer) *Client {
	t.Helper()
	cfg := Config{
		BaseURL: baseURL,
		Secret:  auth.NewSecret(testutil.TestSecret),
		Timeout: time.Second,
	}
	if logs != nil {
		cfg.Logger = slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	c, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestGenerateSuccess(t *testing.T) {
	gen := testutil.NewFakeGenerator(t)
	c := newTestClient(t, gen.URL(), nil)

	numbers, err := c.Generate(context.Background(), "홍길동1999-12-31")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if diff := cmp.Diff(testutil.NumbersFor("홍길동1999-12-31"), numbers); diff != "" {
		t.Errorf("numbers mismatch (-want +got):\n%s", diff)
	}

	// the seed arrives decoded, byte for byte
	if diff := cmp.Diff([]string{"홍길동1999-12-31"}, gen.Seeds()); diff != "" {
		t.Errorf("seeds mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateEscapesSeed(t *testing.T) {
	gen := testutil.NewFakeGenerator(t)
	c := newTestClient(t, gen.URL(), nil)

	seed := "a&b=c d+e?2000-01-01"
	if _, err := c.Generate(context.Background(), seed); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := gen.Seeds(); len(got) != 1 || got[0] != seed {
		t.Errorf("expected seed %q, got %v", seed, got)
	}
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(gen *testutil.FakeGenerator)
		wantKind Kind
	}{
		{
			name:     "internal server error",
			setup:    func(gen *testutil.FakeGenerator) { gen.FailWith(http.StatusInternalServerError, "boom") },
			wantKind: KindServer,
		},
		{
			name:     "not found",
			setup:    func(gen *testutil.FakeGenerator) { gen.FailWith(http.StatusNotFound, "") },
			wantKind: KindServer,
		},
		{
			name:     "malformed JSON",
			setup:    func(gen *testutil.FakeGenerator) { gen.RespondWith("{not json") },
			wantKind: KindServer,
		},
		{
			name:     "missing res",
			setup:    func(gen *testutil.FakeGenerator) { gen.RespondWith(`{"numbers":[1,2,3]}`) },
			wantKind: KindServer,
		},
		{
			name:     "non integer res",
			setup:    func(gen *testutil.FakeGenerator) { gen.RespondWith(`{"res":["a","b"]}`) },
			wantKind: KindServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := testutil.NewFakeGenerator(t)
			tt.setup(gen)
			c := newTestClient(t, gen.URL(), nil)

			numbers, err := c.Generate(context.Background(), "seed")
			if numbers != nil {
				t.Errorf("expected no numbers, got %v", numbers)
			}
			if KindOf(err) != tt.wantKind {
				t.Fatalf("expected kind %s, got %v", tt.wantKind, err)
			}
			if err.Error() != Message {
				t.Errorf("expected generic message, got %q", err.Error())
			}
		})
	}
}

func TestGenerateWrongSecretIsServerFailure(t *testing.T) {
	gen := testutil.NewFakeGenerator(t)
	c, err := NewClient(Config{BaseURL: gen.URL(), Secret: auth.NewSecret("wrong")})
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Generate(context.Background(), "seed")
	if !errors.Is(err, ErrServerFailure) {
		t.Errorf("expected server failure, got %v", err)
	}
	if gen.Calls() != 0 {
		t.Errorf("expected request to be rejected, got %d calls", gen.Calls())
	}
}

func TestGenerateNetworkFailure(t *testing.T) {
	gen := testutil.NewFakeGenerator(t)
	url := gen.URL()
	gen.Server.Close()

	c := newTestClient(t, url, nil)
	_, err := c.Generate(context.Background(), "seed")
	if !errors.Is(err, ErrNetworkFailure) {
		t.Fatalf("expected network failure, got %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Error("expected the cause to be kept for diagnostics")
	}
}

func TestGenerateContextCanceled(t *testing.T) {
	gen := testutil.NewFakeGenerator(t)
	gen.Hold()
	c := newTestClient(t, gen.URL(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for gen.Calls() == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		cancel()
	}()

	_, err := c.Generate(ctx, "seed")
	if KindOf(err) != KindNetwork {
		t.Errorf("expected network failure, got %v", err)
	}
}

func TestGenerateLogsWithoutSecretOrSeed(t *testing.T) {
	gen := testutil.NewFakeGenerator(t)
	gen.FailWith(http.StatusInternalServerError, "")

	var logs bytes.Buffer
	c := newTestClient(t, gen.URL(), &logs)
	if _, err := c.Generate(context.Background(), "홍길동1999-12-31"); err == nil {
		t.Fatal("expected an error")
	}

	out := logs.String()
	if !strings.Contains(out, "unexpected status 500") {
		t.Errorf("expected the cause in the log, got %s", out)
	}
	if strings.Contains(out, testutil.TestSecret) {
		t.Errorf("secret leaked into logs: %s", out)
	}
	if strings.Contains(out, "1999-12-31") {
		t.Errorf("seed leaked into logs: %s", out)
	}
}

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing secret", Config{BaseURL: "https://example.com"}},
		{"bad scheme", Config{BaseURL: "ftp://example.com", Secret: auth.NewSecret("s")}},
		{"unparseable", Config{BaseURL: "http://[::1", Secret: auth.NewSecret("s")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewClient(tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient(Config{Secret: auth.NewSecret("s")})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.endpoint.String(); got != DefaultBaseURL+"/main" {
		t.Errorf("expected default endpoint, got %s", got)
	}
	if c.timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %s", c.timeout)
	}
}

func TestGenerateDoesNotFollowRedirects(t *testing.T) {
	var leaked []string
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		leaked = append(leaked, r.Header.Get(auth.HeaderName))
		w.Write([]byte(`{"res":[1,2,3,4,5,6]}`))
	}))
	t.Cleanup(other.Close)

	service := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, other.URL+"/main?"+r.URL.RawQuery, http.StatusFound)
	}))
	t.Cleanup(service.Close)

	c := newTestClient(t, service.URL, nil)
	numbers, err := c.Generate(context.Background(), "홍길동1999-12-31")
	if !errors.Is(err, ErrServerFailure) {
		t.Errorf("expected a server failure, got numbers=%v err=%v", numbers, err)
	}
	if len(leaked) != 0 {
		t.Errorf("redirect target was contacted with passwd %q", leaked)
	}
}

func TestNewClientKeepsCallerClient(t *testing.T) {
	custom := &http.Client{Timeout: 7 * time.Second}
	c, err := NewClient(Config{
		BaseURL:    "http://localhost",
		Secret:     auth.NewSecret(testutil.TestSecret),
		HTTPClient: custom,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if c.http.Timeout != 7*time.Second || c.http.CheckRedirect == nil {
		t.Errorf("expected the caller's settings with redirects disabled, got %+v", c.http)
	}
	if custom.CheckRedirect != nil {
		t.Error("the caller's client must not be modified")
	}
}
