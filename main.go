package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/lotto-gen/catalog"
	"github.com/danielhkuo/lotto-gen/cliparse"
	"github.com/danielhkuo/lotto-gen/db"
	"github.com/danielhkuo/lotto-gen/generator"
	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/middleware"
	"github.com/danielhkuo/lotto-gen/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Question bank database is optional
	var dbConn *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err = db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()
	}

	questions, source, err := catalog.Load(ctx, catalog.Options{
		DB:     dbConn,
		DBType: cfg.DatabaseType,
		Path:   cfg.CatalogPath,
	})
	if err != nil {
		slog.Error("question bank failed to load", "error", err)
		os.Exit(1)
	}
	slog.Info("Question bank ready", "source", source, "questions", len(questions))

	client, err := generator.NewClient(generator.Config{
		BaseURL: cfg.GeneratorURL,
		Secret:  cfg.GeneratorSecret,
		Timeout: cfg.GeneratorTimeout,
	})
	if err != nil {
		slog.Error("generator client setup failed", "error", err)
		os.Exit(1)
	}

	store, err := lottery.NewStore(lottery.Options{
		Generator: client,
		Questions: questions,
		TTL:       cfg.SessionTTL,
	})
	if err != nil {
		slog.Error("session store setup failed", "error", err)
		os.Exit(1)
	}
	go store.Run(ctx, time.Minute)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(router.NewRouter(store)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "generator", cfg.GeneratorURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
