// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"errors"
	"testing"

	"github.com/danielhkuo/lotto-gen/validate"
	"github.com/google/go-cmp/cmp"
)

func TestBirth(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		year  int
		month int
		day   int
		want  string
	}{
		{"pads month and day", "민수", 2000, 3, 7, "민수2000-03-07"},
		{"two digit month and day", "홍길동", 1999, 12, 31, "홍길동1999-12-31"},
		{"latin name", "Alice", 1985, 10, 1, "Alice1985-10-01"},
		{"name with spaces kept verbatim", "Kim Min", 1990, 1, 10, "Kim Min1990-01-10"},
		{"impossible calendar date kept verbatim", "Lee", 2001, 2, 31, "Lee2001-02-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Birth(tt.owner, tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBirthDate(t *testing.T) {
	if got := BirthDate(2000, 3, 7); got != "2000-03-07" {
		t.Errorf("expected 2000-03-07, got %q", got)
	}
}

func TestQuiz(t *testing.T) {
	tests := []struct {
		name       string
		selections []Selection
		want       string
		wantErr    error
	}{
		{
			name:       "ascending order",
			selections: []Selection{{1, "A"}, {2, "B"}, {3, "C"}},
			want:       "ABC",
		},
		{
			name:       "input order does not matter",
			selections: []Selection{{3, "C"}, {1, "A"}, {2, "B"}},
			want:       "ABC",
		},
		{
			name:       "numeric values",
			selections: []Selection{{1, "1"}, {2, "10"}, {3, "2"}},
			want:       "1102",
		},
		{
			name:       "first unanswered",
			selections: []Selection{{1, ""}, {2, "B"}, {3, "C"}},
			wantErr:    validate.ErrIncompleteQuiz,
		},
		{
			name:       "middle unanswered",
			selections: []Selection{{1, "A"}, {2, ""}, {3, "C"}},
			wantErr:    validate.ErrIncompleteQuiz,
		},
		{
			name:       "last unanswered",
			selections: []Selection{{1, "A"}, {2, "B"}, {3, ""}},
			wantErr:    validate.ErrIncompleteQuiz,
		},
		{
			name:    "no questions",
			wantErr: validate.ErrIncompleteQuiz,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quiz(tt.selections)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if got != "" {
					t.Errorf("expected empty seed on error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestQuizIsDeterministicAndDoesNotReorderInput(t *testing.T) {
	selections := []Selection{{2, "B"}, {1, "A"}}
	before := append([]Selection(nil), selections...)

	first, err := Quiz(selections)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Quiz(selections)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("expected identical seeds, got %q and %q", first, second)
	}
	if diff := cmp.Diff(before, selections); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}
