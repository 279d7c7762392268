package common

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/smartjects/importer/gen/ent"
	"github.com/smartjects/importer/internal/repository"
)

// DBResult bundles the opened client with its cleanup.
type DBResult struct {
	Client  *ent.Client
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or, when inmem
// is set, a throwaway in-memory SQLite database with the schema migrated.
// The SQLite mode backs local dry runs and tests; nothing survives Cleanup.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		return initSQLite(ctx, logger)
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client:  client,
		Cleanup: func() { repository.Close(client, pool, logger) },
	}, nil
}

func initSQLite(ctx context.Context, logger *slog.Logger) (*DBResult, error) {
	db, err := sql.Open("sqlite", "file:importer?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, WrapError(err, "open sqlite")
	}
	// cache=shared keeps the database alive across pooled connections.
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, WrapError(err, "migrate sqlite schema")
	}

	logger.Info("using in-memory sqlite database")
	return &DBResult{
		Client: client,
		Cleanup: func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		},
	}, nil
}
