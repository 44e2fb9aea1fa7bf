package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/lotto-gen/auth"
)

// Defaults
const (
	DefaultPort             = 3318
	DefaultGeneratorURL     = "https://lotto-api.superposition.link"
	DefaultGeneratorTimeout = 10 * time.Second
	DefaultSessionTTL       = 30 * time.Minute
	DefaultEnvFile          = ".env"
)

type Config struct {
	Port             int
	GeneratorURL     string
	GeneratorSecret  auth.Secret
	GeneratorTimeout time.Duration
	DatabaseURL      string
	DatabaseType     string
	CatalogPath      string
	SessionTTL       time.Duration
	EnvFile          string
}

// ParseFlags validates flags and fills the rest from the environment.
// Variables from the env file never override ones already set.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var secret string

	fs := flag.NewFlagSet("lotto-gen", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.GeneratorURL, "g", "", "Generation service base URL")
	fs.DurationVar(&cfg.GeneratorTimeout, "timeout", 0, "Generation request timeout")

	// Question bank
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Question bank database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CatalogPath, "catalog", "", "Question bank YAML file")

	fs.DurationVar(&cfg.SessionTTL, "ttl", 0, "Idle session lifetime")
	fs.StringVar(&cfg.EnvFile, "env", "", "Env file to load")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&secret, "secret", "", "Generation service secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(&cfg); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.GeneratorURL == "" {
		cfg.GeneratorURL = os.Getenv("GENERATOR_URL")
		if cfg.GeneratorURL == "" {
			cfg.GeneratorURL = DefaultGeneratorURL
		}
	}

	if cfg.GeneratorTimeout == 0 {
		d, err := durationEnv("GENERATOR_TIMEOUT", DefaultGeneratorTimeout)
		if err != nil {
			return Config{}, err
		}
		cfg.GeneratorTimeout = d
	}
	if cfg.GeneratorTimeout < 0 {
		return Config{}, errors.New("generator timeout must be positive")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}

	if cfg.SessionTTL == 0 {
		d, err := durationEnv("SESSION_TTL", DefaultSessionTTL)
		if err != nil {
			return Config{}, err
		}
		cfg.SessionTTL = d
	}
	if cfg.SessionTTL < 0 {
		return Config{}, errors.New("session TTL must be positive")
	}

	// Secrets - MUST be provided
	if secret == "" {
		secret = os.Getenv("GENERATOR_SECRET")
	}
	if secret == "" {
		return Config{}, errors.New("GENERATOR_SECRET required")
	}
	cfg.GeneratorSecret = auth.NewSecret(secret)

	return cfg, nil
}

// loadEnvFile loads the env file named by -env or ENV_FILE. The default
// .env may be missing; a file that was asked for by name may not.
func loadEnvFile(cfg *Config) error {
	explicit := true
	if cfg.EnvFile == "" {
		cfg.EnvFile = os.Getenv("ENV_FILE")
	}
	if cfg.EnvFile == "" {
		cfg.EnvFile = DefaultEnvFile
		explicit = false
	}

	err := godotenv.Load(cfg.EnvFile)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", cfg.EnvFile, err)
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}
