// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/middleware"
	"github.com/danielhkuo/lotto-gen/models"
)

type CatalogHandler struct {
	store *lottery.Store
}

func NewCatalogHandler(store *lottery.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// GetQuestions handles GET /questions
func (h *CatalogHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Questions: h.store.Questions(),
	})
}
