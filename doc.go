// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the lotto-gen API server.

lotto-gen hands out "lucky" lottery numbers. A user either enters a name
and birth date, or walks through a short personality quiz. Either way the
input is reduced to a seed string and sent to a remote generation service
that answers with six numbers.

# Starting the Server

The generation service secret must come from the environment or a .env
file:

	GENERATOR_SECRET=... go run .

Or with flags:

	go run . -p 3318 -g https://lotto-api.superposition.link -catalog questions.yaml

# Configuration

Required settings:

  - GENERATOR_SECRET (-secret): Shared credential sent in the passwd header

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - GENERATOR_URL (-g): Generation service base URL
  - GENERATOR_TIMEOUT (-timeout): Per-request timeout (default: 10s)
  - DATABASE_URL (-d), DATABASE_TYPE (-t): Question bank in sqlite or postgres
  - CATALOG_PATH (-catalog): Question bank YAML file
  - SESSION_TTL (-ttl): Idle session lifetime (default: 30m)

Without a database or file the built-in question bank is used.

# Architecture

  - handlers: HTTP request handlers (birth, quiz, catalog)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - lottery: In-memory sessions tying input, navigation and generation together
  - quiz: Question state and the navigation state machine
  - validate: Birth form validation
  - seed: Seed derivation
  - generator: Client for the remote generation service
  - catalog: Question bank loading from YAML or SQL
  - auth: Shared credential handling
  - db: Connection and schema for the question bank
  - cliparse: Configuration parsing
  - console: Terminal client (see cmd/lotto-cli)

See package documentation for each component.
*/
package main
