// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/middleware"
	"github.com/danielhkuo/lotto-gen/models"
	"github.com/danielhkuo/lotto-gen/quiz"
)

type QuizHandler struct {
	store *lottery.Store
}

func NewQuizHandler(store *lottery.Store) *QuizHandler {
	return &QuizHandler{store: store}
}

// CreateSession handles POST /quiz
func (h *QuizHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.NewQuiz()
	if err != nil {
		slog.Error("failed to create quiz session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create quiz")
		return
	}
	slog.Info("quiz session created", "session_id", session.ID())

	middleware.JSONResponse(w, http.StatusCreated, quizResponse(session.Snapshot()))
}

// GetSession handles GET /quiz/{id}
func (h *QuizHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Quiz(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, quizResponse(session.Snapshot()))
}

// Answer handles PUT /quiz/{id}/answers/{question}
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Quiz(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	questionID, err := strconv.Atoi(r.PathValue("question"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question must be a number")
		return
	}

	var req models.AnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Value == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "value is required")
		return
	}

	snap, err := session.Answer(questionID, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, quizResponse(snap))
}

// Next handles POST /quiz/{id}/next. On the last question it submits the
// quiz and answers once the numbers are in.
func (h *QuizHandler) Next(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Quiz(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	snap, err := session.Next(context.WithoutCancel(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, quizResponse(snap))
}

// Prev handles POST /quiz/{id}/prev
func (h *QuizHandler) Prev(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Quiz(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	snap, err := session.Prev()
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, quizResponse(snap))
}

// Reset handles POST /quiz/{id}/reset
func (h *QuizHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Quiz(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, quizResponse(session.Reset()))
}

// DeleteSession handles DELETE /quiz/{id}
func (h *QuizHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.store.Quiz(id); err != nil {
		writeError(w, err)
		return
	}
	if err := h.store.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func quizResponse(snap lottery.QuizSnapshot) models.QuizSessionResponse {
	st := snap.State
	resp := models.QuizSessionResponse{
		ID:        snap.ID,
		Phase:     snap.Phase,
		Status:    snap.Status,
		CurrentID: st.CurrentID(),
		Position:  st.Position(),
		Total:     st.Len(),
		IsFirst:   st.IsFirst(),
		IsLast:    st.IsLast(),
		Question:  st.Current(),
		Questions: st.Questions(),
		Result:    snap.Result,
		Failure:   snap.Failure,
	}
	if t := snap.Transition; t != nil {
		resp.Transition = transitionInfo(*t)
	}
	return resp
}

func transitionInfo(t quiz.Transition) *models.TransitionInfo {
	return &models.TransitionInfo{
		Event:   t.Event,
		FromID:  t.FromID,
		ToID:    t.ToID,
		Animate: t.Animate(),
	}
}
