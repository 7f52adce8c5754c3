package bootstrap

import (
	"canteen-core/internal/notify"
	"canteen-core/internal/pkg/config"
	"canteen-core/internal/usecase/commands"
	"canteen-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		func(cfg config.Config) *notify.Hub {
			return notify.NewHub(cfg.Stream.SubscriberBuffer)
		},
		func() *notify.Inbox {
			return notify.NewInbox(notify.DefaultInboxCapacity)
		},
		fx.Annotate(
			func(hub *notify.Hub) *notify.Hub { return hub },
			fx.As(new(commands.EventPublisher)),
		),
		fx.Annotate(
			func(inbox *notify.Inbox) *notify.Inbox { return inbox },
			fx.As(new(commands.UserNotifier)),
		),
		fx.Annotate(
			func(inbox *notify.Inbox) *notify.Inbox { return inbox },
			fx.As(new(queries.InboxReader)),
		),
	),
)
