// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/lotto-gen/db"
	"github.com/danielhkuo/lotto-gen/quiz"
)

// LoadSQL reads the question bank from the quiz_question and quiz_option tables
func LoadSQL(ctx context.Context, conn *sql.DB) ([]quiz.Question, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT q.id, q.title, o.label, o.value
		FROM quiz_question q
		LEFT JOIN quiz_option o ON o.question_id = q.id
		ORDER BY q.id, o.position
	`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []quiz.Question
	for rows.Next() {
		var (
			id           int
			title        string
			label, value sql.NullString
		)
		if err := rows.Scan(&id, &title, &label, &value); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if n := len(questions); n == 0 || questions[n-1].ID != id {
			questions = append(questions, quiz.Question{ID: id, Title: title})
		}
		// a question without options keeps an empty list so Normalize rejects it
		if value.Valid {
			last := &questions[len(questions)-1]
			last.Options = append(last.Options, quiz.Option{Label: label.String, Value: value.String})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	return Normalize(questions)
}

// SeedSQL writes questions into an empty bank. It reports whether anything
// was written; a bank that already has questions is left alone.
func SeedSQL(ctx context.Context, conn *sql.DB, dbType string, questions []quiz.Question) (bool, error) {
	var count int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM quiz_question`).Scan(&count); err != nil {
		return false, fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	insertQuestion := fmt.Sprintf(`INSERT INTO quiz_question (id, title) VALUES (%s, %s)`,
		db.Placeholder(dbType, 1), db.Placeholder(dbType, 2))
	insertOption := fmt.Sprintf(`INSERT INTO quiz_option (question_id, position, label, value) VALUES (%s, %s, %s, %s)`,
		db.Placeholder(dbType, 1), db.Placeholder(dbType, 2), db.Placeholder(dbType, 3), db.Placeholder(dbType, 4))

	for _, q := range questions {
		if _, err := tx.ExecContext(ctx, insertQuestion, q.ID, q.Title); err != nil {
			return false, fmt.Errorf("insert question %d: %w", q.ID, err)
		}
		for pos, o := range q.Options {
			if _, err := tx.ExecContext(ctx, insertOption, q.ID, pos, o.Label, o.Value); err != nil {
				return false, fmt.Errorf("insert option %q of question %d: %w", o.Value, q.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	return true, nil
}

// Options selects where Load reads the bank from
type Options struct {
	DB     *sql.DB
	DBType string
	Path   string
	Logger *slog.Logger
}

// Load picks the question bank: the database when one is configured, else
// the YAML file at Path, else the built-in default. An empty database is
// first seeded from the file or the default.
func Load(ctx context.Context, opts Options) ([]quiz.Question, string, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	fallback := func() ([]quiz.Question, string, error) {
		if opts.Path != "" {
			qs, err := LoadFile(opts.Path)
			return qs, SourceFile, err
		}
		qs, err := Default()
		return qs, SourceDefault, err
	}

	if opts.DB == nil {
		return fallback()
	}

	if err := db.CreateSchema(ctx, opts.DB); err != nil {
		return nil, "", err
	}
	seed, from, err := fallback()
	if err != nil {
		return nil, "", err
	}
	seeded, err := SeedSQL(ctx, opts.DB, opts.DBType, seed)
	if err != nil {
		return nil, "", err
	}
	if seeded {
		log.Info("question bank seeded", "from", from, "questions", len(seed))
	}

	qs, err := LoadSQL(ctx, opts.DB)
	return qs, SourceDatabase, err
}
