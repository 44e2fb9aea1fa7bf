// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/middleware"
	"github.com/danielhkuo/lotto-gen/models"
)

type BirthHandler struct {
	store *lottery.Store
}

func NewBirthHandler(store *lottery.Store) *BirthHandler {
	return &BirthHandler{store: store}
}

// CreateSession handles POST /birth. The body is optional.
func (h *BirthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.BirthFieldsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, middleware.ErrEmptyBody) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	session, snap := h.store.NewBirth(patchFrom(req))
	slog.Info("birth session created", "session_id", session.ID())

	middleware.JSONResponse(w, http.StatusCreated, birthResponse(snap))
}

// GetSession handles GET /birth/{id}
func (h *BirthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Birth(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, birthResponse(session.Snapshot()))
}

// UpdateFields handles PATCH /birth/{id}
func (h *BirthHandler) UpdateFields(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Birth(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req models.BirthFieldsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	snap, err := session.Update(patchFrom(req))
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, birthResponse(snap))
}

// Generate handles POST /birth/{id}/generate
func (h *BirthHandler) Generate(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Birth(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	// a client that hangs up does not cancel the generation; the outcome
	// still lands on the session
	snap, err := session.Generate(context.WithoutCancel(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, birthResponse(snap))
}

// Reset handles POST /birth/{id}/reset
func (h *BirthHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Birth(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, birthResponse(session.Reset()))
}

// DeleteSession handles DELETE /birth/{id}
func (h *BirthHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.store.Birth(id); err != nil {
		writeError(w, err)
		return
	}
	if err := h.store.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func patchFrom(req models.BirthFieldsRequest) lottery.BirthPatch {
	return lottery.BirthPatch{
		Name:  req.Name,
		Year:  req.Year,
		Month: req.Month,
		Day:   req.Day,
	}
}

func birthResponse(snap lottery.BirthSnapshot) models.BirthSessionResponse {
	return models.BirthSessionResponse{
		ID:      snap.ID,
		Input:   snap.Input,
		Status:  snap.Status,
		Result:  snap.Result,
		Failure: snap.Failure,
	}
}
