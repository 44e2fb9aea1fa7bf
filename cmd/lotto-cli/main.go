// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command lotto-cli generates lucky numbers interactively in the terminal.
// It reads the same flags and environment as the API server.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/lotto-gen/catalog"
	"github.com/danielhkuo/lotto-gen/cliparse"
	"github.com/danielhkuo/lotto-gen/console"
	"github.com/danielhkuo/lotto-gen/db"
	"github.com/danielhkuo/lotto-gen/generator"
	"github.com/danielhkuo/lotto-gen/lottery"
)

func main() {
	// keep the prompts readable; only problems reach stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lotto-cli:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var dbConn *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err = db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer dbConn.Close()
	}

	questions, _, err := catalog.Load(ctx, catalog.Options{
		DB:     dbConn,
		DBType: cfg.DatabaseType,
		Path:   cfg.CatalogPath,
	})
	if err != nil {
		return err
	}

	client, err := generator.NewClient(generator.Config{
		BaseURL: cfg.GeneratorURL,
		Secret:  cfg.GeneratorSecret,
		Timeout: cfg.GeneratorTimeout,
	})
	if err != nil {
		return err
	}

	store, err := lottery.NewStore(lottery.Options{
		Generator: client,
		Questions: questions,
		TTL:       cfg.SessionTTL,
	})
	if err != nil {
		return err
	}

	app := &console.App{
		Store:    store,
		Prompter: console.NewSurveyPrompter(),
		Out:      os.Stdout,
		NoColor:  os.Getenv("NO_COLOR") != "",
	}
	return app.Run(ctx)
}
