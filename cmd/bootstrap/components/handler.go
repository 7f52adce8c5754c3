package components

import (
	"canteen-core/internal/handler"
	"canteen-core/internal/handler/api"
	"canteen-core/internal/handler/middleware"
	"canteen-core/internal/notify"
	"canteen-core/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		func(hub *notify.Hub, cfg config.Config) *api.StreamHandler {
			return api.NewStreamHandler(hub, cfg.Stream)
		},
		api.NewReportHandler,
		api.NewActivityHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
