// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generator

import "errors"

// Kind classifies a failed generation
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network_failure"
	case KindServer:
		return "server_failure"
	}
	return "unknown"
}

// Message is what users see for every generation failure
const Message = "번호 생성 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

var (
	ErrNetworkFailure = &Error{Kind: KindNetwork}
	ErrServerFailure  = &Error{Kind: KindServer}
)

// Error is a failed generation. Error() is the generic user-facing message;
// the underlying cause is only reachable through Unwrap.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return Message }

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func networkFailure(err error) *Error { return &Error{Kind: KindNetwork, Err: err} }

func serverFailure(err error) *Error { return &Error{Kind: KindServer, Err: err} }

// KindOf returns the failure kind of err, or 0 when err is not a generation error
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return 0
}
