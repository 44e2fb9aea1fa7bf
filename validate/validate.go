// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Error codes reported to clients
const (
	CodeNameTooShort       = "name_too_short"
	CodeMissingField       = "missing_field"
	CodeOutOfRange         = "out_of_range"
	CodeFutureDate         = "future_date"
	CodeUnansweredQuestion = "unanswered_question"
	CodeIncompleteQuiz     = "incomplete_quiz"
)

// Birth input field names
const (
	FieldName  = "name"
	FieldYear  = "year"
	FieldMonth = "month"
	FieldDay   = "day"
)

// MinNameLength is counted in characters, not bytes.
const MinNameLength = 2

// Sentinels for errors.Is. Field-specific errors match the sentinel of their code.
var (
	ErrNameTooShort       = &Error{Code: CodeNameTooShort, Field: FieldName}
	ErrMissingField       = &Error{Code: CodeMissingField}
	ErrOutOfRange         = &Error{Code: CodeOutOfRange}
	ErrFutureDate         = &Error{Code: CodeFutureDate}
	ErrUnansweredQuestion = &Error{Code: CodeUnansweredQuestion}
	ErrIncompleteQuiz     = &Error{Code: CodeIncompleteQuiz}
)

// Error is a recoverable input error. It is always shown to the user as a
// warning and never propagates past the session that produced it.
type Error struct {
	Code  string
	Field string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Code
	}
	return "validation failed: " + e.Code + " (" + e.Field + ")"
}

// Is matches on Code so that MissingField("year") is ErrMissingField.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Message returns the localized warning shown to the user
func (e *Error) Message() string {
	switch e.Code {
	case CodeNameTooShort:
		return "이름은 2글자 이상 입력해주세요."
	case CodeMissingField, CodeOutOfRange:
		switch e.Field {
		case FieldYear:
			return "년도를 선택해주세요."
		case FieldMonth:
			return "월을 선택해주세요."
		case FieldDay:
			return "일을 선택해주세요."
		}
		return "입력값을 확인해주세요."
	case CodeFutureDate:
		return "올바른 생년월일을 입력해주세요"
	case CodeUnansweredQuestion, CodeIncompleteQuiz:
		return "답변을 골라주세요."
	}
	return "입력값을 확인해주세요."
}

// MissingField reports a birth field that was never filled in
func MissingField(field string) *Error {
	return &Error{Code: CodeMissingField, Field: field}
}

// OutOfRange reports a birth field outside what the selectors offer
func OutOfRange(field string) *Error {
	return &Error{Code: CodeOutOfRange, Field: field}
}

// UnansweredQuestion is returned when advancing past a question with no answer
func UnansweredQuestion() *Error {
	return &Error{Code: CodeUnansweredQuestion}
}

// BirthInput is what the user typed into the name/birth form.
// Zero means "not selected yet" for Year, Month and Day.
type BirthInput struct {
	Name  string `json:"name"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
}

// ValidateBirthInput checks the form in display order and returns the first
// failure, or nil. Day is only checked against [1,31], so dates such as
// February 31 pass and are forwarded as typed.
func ValidateBirthInput(in BirthInput, now time.Time) error {
	if utf8.RuneCountInString(in.Name) < MinNameLength {
		return &Error{Code: CodeNameTooShort, Field: FieldName}
	}

	if in.Year == 0 {
		return MissingField(FieldYear)
	}
	if in.Month == 0 {
		return MissingField(FieldMonth)
	}
	if in.Day == 0 {
		return MissingField(FieldDay)
	}

	if in.Year < 0 {
		return OutOfRange(FieldYear)
	}
	if in.Month < 1 || in.Month > 12 {
		return OutOfRange(FieldMonth)
	}
	if in.Day < 1 || in.Day > 31 {
		return OutOfRange(FieldDay)
	}

	// compared as calendar fields; time.Date would wrap huge years
	y, m, d := now.Date()
	switch {
	case in.Year != y:
		if in.Year > y {
			return ErrFutureDate
		}
	case in.Month != int(m):
		if in.Month > int(m) {
			return ErrFutureDate
		}
	case in.Day > d:
		return ErrFutureDate
	}

	return nil
}

// AsError extracts a validation error from err, if there is one.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
