// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the question bank and verifies the connection
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if dbType == TypeSQLite {
		// one writer; also keeps :memory: databases on a single connection
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return conn, nil
}

// Placeholder returns the n-th (1-based) bind parameter for dbType
func Placeholder(dbType string, n int) string {
	if dbType == TypePostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// CreateSchema creates the question bank tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Questions, shown in ascending id order
CREATE TABLE IF NOT EXISTS quiz_question (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL
);

-- Options, shown in ascending position order
CREATE TABLE IF NOT EXISTS quiz_option (
    question_id INTEGER NOT NULL REFERENCES quiz_question(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    label TEXT NOT NULL,
    value TEXT NOT NULL CHECK (value <> ''),
    PRIMARY KEY (question_id, position),
    UNIQUE (question_id, value)
);

CREATE INDEX IF NOT EXISTS idx_quiz_option_question_id ON quiz_option(question_id);
`
