package components

import (
	"github.com/guillotegh/sistema-reservas/internal/handler"
	"github.com/guillotegh/sistema-reservas/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservaHandler,
		api.NewExportHandler,
	),
	fx.Invoke(handler.NewRouter),
)
