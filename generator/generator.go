// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/lotto-gen/auth"
)

// DefaultBaseURL is the public generation service
const DefaultBaseURL = "https://lotto-api.superposition.link"

// DefaultTimeout bounds a single generation call
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response we are willing to read
const maxBodyBytes = 64 << 10

// fingerprintSalt scopes secret fingerprints to this client
const fingerprintSalt = "lotto-gen/generator"

// Generator maps a seed to lucky numbers
type Generator interface {
	Generate(ctx context.Context, seed string) ([]int, error)
}

// Func adapts a plain function to Generator
type Func func(ctx context.Context, seed string) ([]int, error)

func (f Func) Generate(ctx context.Context, seed string) ([]int, error) {
	return f(ctx, seed)
}

// Config configures a Client
type Config struct {
	BaseURL    string
	Secret     auth.Secret
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client calls the remote generation service. One attempt per call, no retries.
type Client struct {
	endpoint    *url.URL
	secret      auth.Secret
	timeout     time.Duration
	fingerprint string
	http        *http.Client
	log         *slog.Logger
}

// NewClient validates cfg and builds a Client
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid generator URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid generator URL scheme %q", base.Scheme)
	}
	if cfg.Secret.IsZero() {
		return nil, auth.ErrMissingSecret
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		c := *cfg.HTTPClient
		httpClient = &c
	}
	// redirects would carry the passwd header to another host; a 3xx is a server failure
	httpClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	endpoint := *base
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + "/main"

	return &Client{
		endpoint:    &endpoint,
		secret:      cfg.Secret,
		timeout:     cfg.Timeout,
		fingerprint: auth.Fingerprint(cfg.Secret, fingerprintSalt),
		http:        httpClient,
		log:         logger,
	}, nil
}

type response struct {
	Res []int `json:"res"`
}

// Generate asks the service for the numbers belonging to seed.
// Failures are *Error values whose message is safe to show to users.
func (c *Client) Generate(ctx context.Context, seed string) ([]int, error) {
	start := time.Now()

	numbers, err := c.do(ctx, seed)
	if err != nil {
		c.log.Error("number generation failed",
			"kind", KindOf(err).String(),
			"error", errors.Unwrap(err),
			"seed_len", len(seed),
			"secret_fp", c.fingerprint,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	c.log.Debug("numbers generated",
		"count", len(numbers),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return numbers, nil
}

func (c *Client) do(ctx context.Context, seed string) ([]int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := *c.endpoint
	u.RawQuery = "string=" + url.QueryEscape(seed)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, serverFailure(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set(auth.HeaderName, c.secret.Reveal())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error includes the request URL; the seed is user data, so keep only the cause
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, networkFailure(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, serverFailure(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, serverFailure(fmt.Errorf("decode response: %w", err))
	}
	if len(body.Res) == 0 {
		return nil, serverFailure(errors.New("response has no numbers"))
	}

	return body.Res, nil
}
