// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - GeneratorURL: Generation service base URL (default: https://lotto-api.superposition.link)
  - GeneratorSecret: Shared secret sent as the passwd header (required)
  - GeneratorTimeout: Per request timeout (default: 10s)
  - DatabaseURL: Question bank database (optional)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - CatalogPath: Question bank YAML file (optional)
  - SessionTTL: Idle session lifetime (default: 30m)
  - EnvFile: Env file to load (default: .env)

GeneratorSecret is an auth.Secret, so printing or logging a Config never
shows it.

# CLI Flags

	-p        Server port
	-g        Generation service base URL
	-timeout  Generation request timeout
	-d        Database URL
	-t        Database type
	-catalog  Question bank YAML file
	-ttl      Idle session lifetime
	-env      Env file to load
	-secret   Generation service secret

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	GENERATOR_URL     → -g
	GENERATOR_TIMEOUT → -timeout
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	CATALOG_PATH      → -catalog
	SESSION_TTL       → -ttl
	ENV_FILE          → -env
	GENERATOR_SECRET  → -secret

CLI flags take precedence over environment variables. The env file is loaded
with godotenv before the fallback and never overrides variables that are
already set. A missing .env is ignored; a missing file named by -env or
ENV_FILE is an error.

# Validation

ParseFlags returns an error if:

  - GENERATOR_SECRET is not provided
  - PORT, GENERATOR_TIMEOUT or SESSION_TTL do not parse
  - DATABASE_TYPE is neither sqlite nor postgres
*/
package cliparse
