// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lotto-gen/generator"
	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/middleware"
	"github.com/danielhkuo/lotto-gen/quiz"
	"github.com/danielhkuo/lotto-gen/validate"
)

// writeError maps session errors to responses. Generation failures only
// ever show the generic message; the cause was logged by the client.
func writeError(w http.ResponseWriter, err error) {
	if verr, ok := validate.AsError(err); ok {
		middleware.ValidationErrorResponse(w, verr)
		return
	}

	var gerr *generator.Error
	switch {
	case errors.As(err, &gerr):
		middleware.ErrorResponse(w, http.StatusBadGateway, gerr.Error())
	case errors.Is(err, lottery.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, lottery.ErrSubmissionInFlight):
		middleware.ErrorResponse(w, http.StatusConflict, "Numbers are being generated")
	case errors.Is(err, lottery.ErrStaleResult):
		middleware.ErrorResponse(w, http.StatusConflict, "Session was reset while generating")
	case errors.Is(err, lottery.ErrFinished), errors.Is(err, quiz.ErrQuizFinished):
		middleware.ErrorResponse(w, http.StatusConflict, "Numbers already generated; reset to start over")
	case errors.Is(err, quiz.ErrIllegalTransition):
		middleware.ErrorResponse(w, http.StatusConflict, "Not allowed right now")
	case errors.Is(err, quiz.ErrUnknownQuestion):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
	case errors.Is(err, quiz.ErrUnknownOption):
		middleware.ErrorResponse(w, http.StatusBadRequest, "value is not one of the question's options")
	default:
		slog.Error("unexpected session error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
