package components

import (
	"github.com/guillotegh/sistema-reservas/internal/pkg/clock"
	"github.com/guillotegh/sistema-reservas/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewReservaUseCase,
		usecase.NewExportUseCase,
	),
)
