package common

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homecrew/homecrew-backend/gen/ent"
	repo "github.com/homecrew/homecrew-backend/internal/repository"
)

// DBResult bundles an open database with its teardown.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or, when inmem
// is set, a shared in-memory SQLite database with the schema migrated. The
// in-memory path lets batch runs work with no database server at all.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		client, err := repo.OpenSQLite("file:homecrew?mode=memory&cache=shared&_pragma=foreign_keys(1)", logger)
		if err != nil {
			return nil, WrapError(err, "open in-memory database")
		}
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, WrapError(err, "migrate in-memory schema")
		}
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if cerr := client.Close(); cerr != nil {
					logger.Error("failed to close ent client", "error", cerr)
				}
			},
		}, nil
	}

	client, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, WrapError(err, "open database")
	}
	return &DBResult{
		Client:  client,
		Pool:    pool,
		Cleanup: func() { repo.Close(client, pool, logger) },
	}, nil
}
