package components

import (
	"canteen-core/internal/pkg/clock"
	"canteen-core/internal/usecase/commands"
	"canteen-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewActivityQueries,
		queries.NewNotificationQueries,
	),
)
