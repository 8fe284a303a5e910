package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config agrupa todo lo que el binario necesita para levantar.
// Orden de precedencia: defaults < archivo TOML < variables de entorno.
type Config struct {
	HTTP     HTTPConfig     `toml:"http"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
	Auth     AuthConfig     `toml:"auth"`
	Notify   NotifyConfig   `toml:"notify"`
}

type HTTPConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// DatabaseConfig usa el patrón tagged union: Driver decide qué campos aplican.
type DatabaseConfig struct {
	Driver     string `toml:"driver"`      // "memory", "postgres" o "sqlite"
	DSN        string `toml:"dsn"`         // solo postgres
	SQLitePath string `toml:"sqlite_path"` // solo sqlite
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	App    string `toml:"app"`
}

type AuthConfig struct {
	Mode        string `toml:"mode"` // "dev", "jwt" u "odin"
	JWTSecret   string `toml:"jwt_secret"`
	JWTIssuer   string `toml:"jwt_issuer"`
	OdinBaseURL string `toml:"odin_base_url"`
	OdinAPIKey  string `toml:"odin_api_key"`
}

type NotifyConfig struct {
	Mode         string   `toml:"mode"` // "log", "redis" o "webhook"
	RedisAddr    string   `toml:"redis_addr"`
	RedisChannel string   `toml:"redis_channel"`
	WebhookURL   string   `toml:"webhook_url"`
	Timeout      Duration `toml:"timeout"`
}

// Duration permite escribir "5s" en el TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration{5 * time.Second},
			WriteTimeout:    Duration{10 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Database: DatabaseConfig{
			Driver:     "memory",
			SQLitePath: "welfare.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "pet-adoption-welfare",
		},
		Auth: AuthConfig{
			Mode: "dev",
		},
		Notify: NotifyConfig{
			Mode:         "log",
			RedisChannel: "welfare.notifications",
			Timeout:      Duration{3 * time.Second},
		},
	}
}

// Load arma la config final. path vacío => sin archivo (solo defaults + env).
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := env("PORT"); v != "" {
		cfg.HTTP.Addr = ":" + v
	}
	if v := env("LISTEN_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.DSN, "DB_DSN")
	setString(&cfg.Database.SQLitePath, "SQLITE_PATH")
	// Compat: si viene DB_DSN sin driver explícito asumimos postgres.
	if env("DB_DSN") != "" && env("DB_DRIVER") == "" {
		cfg.Database.Driver = "postgres"
	}

	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Log.App, "APP_NAME")

	setString(&cfg.Auth.Mode, "AUTH_MODE")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Auth.JWTIssuer, "JWT_ISSUER")
	setString(&cfg.Auth.OdinBaseURL, "ODIN_BASE_URL")
	setString(&cfg.Auth.OdinAPIKey, "ODIN_API_KEY")

	setString(&cfg.Notify.Mode, "NOTIFY_MODE")
	setString(&cfg.Notify.RedisAddr, "REDIS_ADDR")
	setString(&cfg.Notify.RedisChannel, "REDIS_CHANNEL")
	setString(&cfg.Notify.WebhookURL, "NOTIFY_WEBHOOK_URL")
}

func (c Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Database.Driver) {
	case "memory":
	case "postgres":
		if strings.TrimSpace(c.Database.DSN) == "" {
			errs = append(errs, errors.New("database.dsn is required for postgres"))
		}
	case "sqlite":
		if strings.TrimSpace(c.Database.SQLitePath) == "" {
			errs = append(errs, errors.New("database.sqlite_path is required for sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown database.driver %q", c.Database.Driver))
	}

	switch strings.ToLower(c.Auth.Mode) {
	case "dev":
	case "jwt":
		if strings.TrimSpace(c.Auth.JWTSecret) == "" {
			errs = append(errs, errors.New("auth.jwt_secret is required for jwt mode"))
		}
	case "odin":
		if strings.TrimSpace(c.Auth.OdinBaseURL) == "" || strings.TrimSpace(c.Auth.OdinAPIKey) == "" {
			errs = append(errs, errors.New("auth.odin_base_url and auth.odin_api_key are required for odin mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown auth.mode %q", c.Auth.Mode))
	}

	switch strings.ToLower(c.Notify.Mode) {
	case "log":
	case "redis":
		if strings.TrimSpace(c.Notify.RedisAddr) == "" {
			errs = append(errs, errors.New("notify.redis_addr is required for redis mode"))
		}
	case "webhook":
		if strings.TrimSpace(c.Notify.WebhookURL) == "" {
			errs = append(errs, errors.New("notify.webhook_url is required for webhook mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown notify.mode %q", c.Notify.Mode))
	}

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}

	return errors.Join(errs...)
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func setString(dst *string, key string) {
	if v := env(key); v != "" {
		*dst = v
	}
}
