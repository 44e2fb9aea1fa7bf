// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/lotto-gen/quiz"
)

//go:embed default.yaml
var defaultYAML []byte

// Sources reported by Load
const (
	SourceDatabase = "database"
	SourceFile     = "file"
	SourceDefault  = "default"
)

var ErrEmptyText = errors.New("title or label is empty after sanitizing")

type document struct {
	Questions []quiz.Question `yaml:"questions"`
}

// Default returns the built-in question bank
func Default() ([]quiz.Question, error) {
	qs, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return qs, nil
}

// LoadFile reads a YAML question bank from path
func LoadFile(path string) ([]quiz.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a single YAML document. Unknown keys are rejected, including
// "selected": a bank never ships with answers.
func Parse(data []byte) ([]quiz.Question, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, quiz.ErrNoQuestions
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return Normalize(doc.Questions)
}

// Normalize sanitizes titles and labels to plain text and checks the bank.
// Option values are seed material and are never rewritten.
func Normalize(questions []quiz.Question) ([]quiz.Question, error) {
	out := make([]quiz.Question, len(questions))
	for i, q := range questions {
		title := sanitize(q.Title)
		if title == "" {
			return nil, fmt.Errorf("question %d: %w", q.ID, ErrEmptyText)
		}
		opts := make([]quiz.Option, len(q.Options))
		for j, o := range q.Options {
			label := sanitize(o.Label)
			if label == "" {
				return nil, fmt.Errorf("question %d option %q: %w", q.ID, o.Value, ErrEmptyText)
			}
			opts[j] = quiz.Option{Label: label, Value: o.Value}
		}
		out[i] = quiz.Question{ID: q.ID, Title: title, Options: opts}
	}

	state, err := quiz.NewState(out)
	if err != nil {
		return nil, err
	}
	return state.Questions(), nil
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func sanitize(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	// the policy strips markup and escapes entities; titles are plain text
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(raw)))
}
