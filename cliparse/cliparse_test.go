// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks every variable ParseFlags reads and points the env file
// somewhere empty so a developer's .env cannot leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GENERATOR_URL", "GENERATOR_SECRET", "GENERATOR_TIMEOUT",
		"DATABASE_URL", "DATABASE_TYPE", "CATALOG_PATH", "SESSION_TTL", "ENV_FILE",
	} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GENERATOR_SECRET", "s3cret")
	t.Setenv("GENERATOR_TIMEOUT", "3s")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("CATALOG_PATH", "bank.yaml")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.GeneratorSecret.Reveal() != "s3cret" {
		t.Error("expected the secret from GENERATOR_SECRET")
	}
	if cfg.GeneratorTimeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", cfg.GeneratorTimeout)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected TTL 1h, got %s", cfg.SessionTTL)
	}
	if cfg.CatalogPath != "bank.yaml" {
		t.Errorf("expected catalog path from env, got %q", cfg.CatalogPath)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENERATOR_SECRET", "s3cret")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
	if cfg.GeneratorURL != DefaultGeneratorURL {
		t.Errorf("expected default generator URL, got %s", cfg.GeneratorURL)
	}
	if cfg.GeneratorTimeout != DefaultGeneratorTimeout {
		t.Errorf("expected default timeout, got %s", cfg.GeneratorTimeout)
	}
	if cfg.SessionTTL != DefaultSessionTTL {
		t.Errorf("expected default TTL, got %s", cfg.SessionTTL)
	}
	if cfg.DatabaseType != "sqlite" || cfg.DatabaseURL != "" {
		t.Errorf("expected no database, got %s %q", cfg.DatabaseType, cfg.DatabaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GENERATOR_URL", "http://env.example")

	cfg, err := ParseFlags([]string{"-p", "8080", "-g", "http://cli.example", "-d", "file:test.db", "-secret", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.GeneratorURL != "http://cli.example" {
		t.Errorf("CLI should override env: got %s", cfg.GeneratorURL)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing secret", nil, nil},
		{"bad port", map[string]string{"GENERATOR_SECRET": "s", "PORT": "abc"}, nil},
		{"bad timeout", map[string]string{"GENERATOR_SECRET": "s", "GENERATOR_TIMEOUT": "soon"}, nil},
		{"negative ttl", map[string]string{"GENERATOR_SECRET": "s"}, []string{"-ttl", "-1m"}},
		{"bad database type", map[string]string{"GENERATOR_SECRET": "s", "DATABASE_TYPE": "mysql"}, nil},
		{"missing explicit env file", map[string]string{"GENERATOR_SECRET": "s"}, []string{"-env", "nope.env"}},
		{"unknown flag", map[string]string{"GENERATOR_SECRET": "s"}, []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)
	// blank counts as set for godotenv, so the secret must be truly unset
	os.Unsetenv("GENERATOR_SECRET")
	// the process environment always wins over the file
	t.Setenv("PORT", "9001")

	if err := os.WriteFile(filepath.Join(".", ".env"), []byte("GENERATOR_SECRET=from-file\nPORT=7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GeneratorSecret.Reveal() != "from-file" {
		t.Error("expected the secret from .env")
	}
	if cfg.Port != 9001 {
		t.Errorf("expected the real env to win, got port %d", cfg.Port)
	}
}
