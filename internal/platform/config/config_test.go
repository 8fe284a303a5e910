package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_PATH", "PORT", "LISTEN_ADDR", "DB_DRIVER", "DB_DSN", "SQLITE_PATH",
		"LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "AUTH_MODE", "JWT_SECRET", "JWT_ISSUER",
		"ODIN_BASE_URL", "ODIN_API_KEY", "NOTIFY_MODE", "REDIS_ADDR", "REDIS_CHANNEL", "NOTIFY_WEBHOOK_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.HTTP.Addr)
	}
	if cfg.Database.Driver != "memory" || cfg.Auth.Mode != "dev" || cfg.Notify.Mode != "log" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "welfare.toml")
	content := `
[http]
addr = ":9000"
read_timeout = "2s"

[database]
driver = "sqlite"
sqlite_path = "/tmp/welfare-test.db"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTP.Addr != ":9000" {
		t.Fatalf("expected file addr, got %s", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ReadTimeout.Duration != 2*time.Second {
		t.Fatalf("expected 2s read timeout, got %s", cfg.HTTP.ReadTimeout)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("env must override file, got %s", cfg.Log.Level)
	}
	// no tocado por archivo ni env => default
	if cfg.HTTP.WriteTimeout.Duration != 10*time.Second {
		t.Fatalf("expected default write timeout, got %s", cfg.HTTP.WriteTimeout)
	}
}

func TestLoad_DSNImpliesPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/welfare?sslmode=disable")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("expected postgres, got %s", cfg.Database.Driver)
	}
}

func TestValidate_RejectsIncompleteModes(t *testing.T) {
	cfg := Default()
	cfg.Auth.Mode = "jwt"
	cfg.Notify.Mode = "redis"
	cfg.Database.Driver = "postgres"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"jwt_secret", "redis_addr", "dsn"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in error, got %v", want, err)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load("/nonexistent/welfare.toml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
