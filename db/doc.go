// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the question bank database and creates its schema.

# Connecting

Open registers both drivers and pings before returning:

	conn, err := db.Open(ctx, db.TypePostgres, os.Getenv("DATABASE_URL"))
	conn, err := db.Open(ctx, db.TypeSQLite, "file:bank.db")

SQLite connections are limited to one open connection.

# Schema Creation

CreateSchema initializes the two tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - quiz_question: id and title
  - quiz_option: label and value per question, ordered by position

	quiz_question 1──* quiz_option

Option values must be non-empty and unique within a question.

# Placeholders

Placeholder hides the bind parameter difference between the drivers:

	db.Placeholder(db.TypePostgres, 2) // "$2"
	db.Placeholder(db.TypeSQLite, 2)   // "?"

Nothing in this package stores user input. The tables hold reference data
that is read once at startup.
*/
package db
