// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danielhkuo/lotto-gen/validate"
)

// Selection is one quiz answer as seen by the encoder.
// An empty Value means the question was not answered.
type Selection struct {
	QuestionID int
	Value      string
}

// BirthDate formats a birth date as YYYY-MM-DD with month and day padded to two digits
func BirthDate(year, month, day int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}

// Birth builds the seed for the name/birth ritual: the name immediately
// followed by the birth date, e.g. "민수2000-03-07".
// The format is forwarded to the generation service as-is and must stay stable.
func Birth(name string, year, month, day int) string {
	return name + BirthDate(year, month, day)
}

// Quiz concatenates the selected values in ascending question id order
// with no separator. Any unanswered question fails the whole seed.
func Quiz(selections []Selection) (string, error) {
	if len(selections) == 0 {
		return "", validate.ErrIncompleteQuiz
	}

	ordered := make([]Selection, len(selections))
	copy(ordered, selections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].QuestionID < ordered[j].QuestionID
	})

	var b strings.Builder
	for _, s := range ordered {
		if s.Value == "" {
			return "", validate.ErrIncompleteQuiz
		}
		b.WriteString(s.Value)
	}
	return b.String(), nil
}
