package bootstrap

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"

	"github.com/guillotegh/sistema-reservas/internal/infra/db"
	"github.com/guillotegh/sistema-reservas/internal/pkg/config"
	"github.com/guillotegh/sistema-reservas/internal/pkg/errs"
	"github.com/guillotegh/sistema-reservas/migrations"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(pool); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// runMigrations applies pending schema migrations. Goose needs a plain
// *sql.DB, so the pool is bridged through the pgx stdlib adapter.
func runMigrations(pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return errs.Wrap(err, "failed to create migration provider")
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return errs.Wrap(err, "failed to run migrations")
	}
	return nil
}
