package components

import (
	"appointment-system/internal/handler"
	"appointment-system/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
