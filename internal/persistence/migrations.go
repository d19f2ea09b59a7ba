package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var postgresMigrations = []struct {
	name string
	sql  string
}{
	{
		name: "001_create_kv",
		sql: `CREATE TABLE IF NOT EXISTS helpdesk_kv (
    key   TEXT PRIMARY KEY,
    value JSONB NOT NULL
);`,
	},
}

// RunMigrations applies the kv schema migrations in order.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	for _, m := range postgresMigrations {
		logger.Info("applying migration", zap.String("name", m.name))
		if _, err := pool.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.name, err)
		}
	}

	logger.Info("migrations applied", zap.Int("count", len(postgresMigrations)))
	return nil
}
