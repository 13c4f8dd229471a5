package components

import (
	repo_impl "github.com/guillotegh/sistema-reservas/internal/infra/repository"
	"github.com/guillotegh/sistema-reservas/internal/infra/xlsx"
	"github.com/guillotegh/sistema-reservas/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewRepositoryDB,
		repo_impl.NewReservaRepository,
		fx.Annotate(
			xlsx.NewWriter,
			fx.As(new(usecase.PlanillaWriter)),
		),
	),
)

func NewRepositoryDB(pool *pgxpool.Pool) repo_impl.DB {
	return pool
}
