package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"pet-adoption-welfare/internal/adapters/auth/jwtauth"
	"pet-adoption-welfare/internal/adapters/auth/odin"
	"pet-adoption-welfare/internal/adapters/notify/logsink"
	"pet-adoption-welfare/internal/adapters/notify/redispub"
	"pet-adoption-welfare/internal/adapters/notify/webhook"
	"pet-adoption-welfare/internal/adapters/storage/memory"
	pg "pet-adoption-welfare/internal/adapters/storage/postgres"
	"pet-adoption-welfare/internal/adapters/storage/sqlite"
	"pet-adoption-welfare/internal/domain/escalation"
	"pet-adoption-welfare/internal/platform/config"
	"pet-adoption-welfare/internal/platform/logger"
	"pet-adoption-welfare/internal/platform/metrics"
	"pet-adoption-welfare/internal/ports/auth"
	"pet-adoption-welfare/internal/ports/notify"
	"pet-adoption-welfare/internal/router"
)

type deps struct {
	Backend           router.Backend
	Verifier          auth.AuthVerifier
	Notifier          notify.Notifier
	Metrics           *metrics.Recorder
	EscalationOptions []escalation.Option

	closers []func() error
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
}

func newLogger(cfg config.Config) (logger.Logger, error) {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
}

func buildDeps(ctx context.Context, cfg config.Config, log logger.Logger) (*deps, error) {
	d := &deps{}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	d.Metrics = metrics.New(reg)
	d.EscalationOptions = []escalation.Option{escalation.WithTimeout(cfg.Notify.Timeout.Duration)}

	var err error
	if d.Backend, err = buildBackend(cfg, log, d); err != nil {
		d.Close()
		return nil, err
	}
	if d.Verifier, err = buildVerifier(cfg); err != nil {
		d.Close()
		return nil, err
	}
	if d.Notifier, err = buildNotifier(ctx, cfg, log, d); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func buildBackend(cfg config.Config, log logger.Logger, d *deps) (router.Backend, error) {
	switch strings.ToLower(cfg.Database.Driver) {
	case "postgres":
		db, err := pg.Open(cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		d.closers = append(d.closers, db.Close)

		// El server no migra solo; solo avisa si el esquema quedó atrás.
		if v, dirty, err := pg.MigrationVersion(db); err != nil || dirty || v == 0 {
			log.Warn("database schema not ready, run `api migrate`", map[string]any{"version": v, "dirty": dirty, "error": err})
		}
		return pg.NewStore(db), nil

	case "sqlite":
		db, err := sqlite.Open(cfg.Database.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		d.closers = append(d.closers, closeGorm(db))
		return sqlite.NewStore(db), nil

	default:
		log.Warn("using in-memory storage, data is lost on restart", nil)
		return memory.NewStore(), nil
	}
}

func buildVerifier(cfg config.Config) (auth.AuthVerifier, error) {
	switch strings.ToLower(cfg.Auth.Mode) {
	case "jwt":
		return jwtauth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	case "odin":
		c, err := odin.NewClient(odin.Config{BaseURL: cfg.Auth.OdinBaseURL, APIKey: cfg.Auth.OdinAPIKey})
		if err != nil {
			return nil, err
		}
		return odin.NewVerifier(c), nil
	default:
		// modo dev: X-Debug-User-ID / X-Debug-Role
		return nil, nil
	}
}

func buildNotifier(ctx context.Context, cfg config.Config, log logger.Logger, d *deps) (notify.Notifier, error) {
	switch strings.ToLower(cfg.Notify.Mode) {
	case "redis":
		p, err := redispub.New(cfg.Notify.RedisAddr, cfg.Notify.RedisChannel)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, p.Close)
		if err := p.Ping(ctx); err != nil {
			log.Warn("redis not reachable, notifications will fail until it is", map[string]any{"addr": cfg.Notify.RedisAddr, "error": err})
		}
		return p, nil
	case "webhook":
		return webhook.New(cfg.Notify.WebhookURL, cfg.Notify.Timeout.Duration)
	default:
		return logsink.New(log), nil
	}
}

func runMigrations(cfg config.Config, log logger.Logger) error {
	switch strings.ToLower(cfg.Database.Driver) {
	case "postgres":
		db, err := pg.Open(cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		if err := pg.MigrateUp(db); err != nil {
			return err
		}
		v, _, _ := pg.MigrationVersion(db)
		log.Info("migrations applied", map[string]any{"version": v})
		return nil
	case "sqlite":
		// Open ya aplica el esquema.
		db, err := sqlite.Open(cfg.Database.SQLitePath)
		if err != nil {
			return err
		}
		log.Info("sqlite schema up to date", map[string]any{"path": cfg.Database.SQLitePath})
		return closeGorm(db)()
	default:
		return errors.New("nothing to migrate for the memory driver")
	}
}

func closeGorm(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
}
