// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/lotto-gen/handlers"
	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/middleware"
)

func NewRouter(store *lottery.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	birthHandler := handlers.NewBirthHandler(store)
	quizHandler := handlers.NewQuizHandler(store)
	catalogHandler := handlers.NewCatalogHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Question bank
	mux.HandleFunc("GET /questions", middleware.WithLogging(catalogHandler.GetQuestions))

	// Birth date flow
	mux.HandleFunc("POST /birth", middleware.WithLogging(birthHandler.CreateSession))
	mux.HandleFunc("GET /birth/{id}", middleware.WithLogging(birthHandler.GetSession))
	mux.HandleFunc("PATCH /birth/{id}", middleware.WithLogging(birthHandler.UpdateFields))
	mux.HandleFunc("DELETE /birth/{id}", middleware.WithLogging(birthHandler.DeleteSession))
	mux.HandleFunc("POST /birth/{id}/generate", middleware.WithLogging(birthHandler.Generate))
	mux.HandleFunc("POST /birth/{id}/reset", middleware.WithLogging(birthHandler.Reset))

	// Quiz flow
	mux.HandleFunc("POST /quiz", middleware.WithLogging(quizHandler.CreateSession))
	mux.HandleFunc("GET /quiz/{id}", middleware.WithLogging(quizHandler.GetSession))
	mux.HandleFunc("DELETE /quiz/{id}", middleware.WithLogging(quizHandler.DeleteSession))
	mux.HandleFunc("PUT /quiz/{id}/answers/{question}", middleware.WithLogging(quizHandler.Answer))
	mux.HandleFunc("POST /quiz/{id}/next", middleware.WithLogging(quizHandler.Next))
	mux.HandleFunc("POST /quiz/{id}/prev", middleware.WithLogging(quizHandler.Prev))
	mux.HandleFunc("POST /quiz/{id}/reset", middleware.WithLogging(quizHandler.Reset))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lotto-gen API v1"))
	})

	return mux
}
